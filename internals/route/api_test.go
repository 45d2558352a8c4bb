package routes_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"desa_digital_backend/internals/configs"
	uploadService "desa_digital_backend/internals/features/utils/uploads/service"
	"desa_digital_backend/internals/middlewares"
	routes "desa_digital_backend/internals/route"
	"desa_digital_backend/internals/testutil"
)

type envelope struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	ErrorCode  string          `json:"error_code"`
	Data       json.RawMessage `json:"data"`
	Total      int64           `json:"total"`
	TotalPages int             `json:"totalPages"`
}

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	testutil.UseTestConfig(t)
	db := testutil.NewDB(t)

	app := routes.NewApp()
	middlewares.SetupMiddlewares(app)
	store := uploadService.NewLocalStorage(t.TempDir(), configs.UploadPublicBase)
	routes.SetupRoutes(app, db, uploadService.NewUploadService(store, configs.UploadMaxBytes))
	return app, db
}

func call(t *testing.T, app *fiber.App, method, path string, body any, token string) (int, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	var env envelope
	if resp.Header.Get("Content-Type") != "" && bytes.HasPrefix([]byte(resp.Header.Get("Content-Type")), []byte("application/json")) {
		if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
			t.Fatalf("%s %s: decode: %v", method, path, err)
		}
	}
	return resp.StatusCode, env
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("decode data: %v (%s)", err, raw)
	}
	return out
}

// loginAdmin: register bootstrap lalu login, mengembalikan token.
func loginAdmin(t *testing.T, app *fiber.App) string {
	t.Helper()
	status, env := call(t, app, http.MethodPost, "/api/auth/register", map[string]string{
		"nama": "Operator Desa", "email": "operator@desa.id", "password": "rahasia123",
	}, "")
	if status != fiber.StatusCreated {
		t.Fatalf("register: status %d (%s)", status, env.Message)
	}
	status, env = call(t, app, http.MethodPost, "/api/auth/login", map[string]string{
		"email": "operator@desa.id", "password": "rahasia123",
	}, "")
	if status != fiber.StatusOK {
		t.Fatalf("login: status %d (%s)", status, env.Message)
	}
	res := decode[struct {
		Token string `json:"token"`
	}](t, env.Data)
	if res.Token == "" {
		t.Fatal("empty token")
	}
	return res.Token
}

func TestHealth(t *testing.T) {
	app, _ := newTestApp(t)
	status, _ := call(t, app, http.MethodGet, "/health", nil, "")
	if status != fiber.StatusOK {
		t.Fatalf("status = %d", status)
	}
}

func TestAdminRoutesRequireToken(t *testing.T) {
	app, _ := newTestApp(t)

	tests := []struct {
		method, path, token string
	}{
		{http.MethodPost, "/api/news", ""},
		{http.MethodDelete, "/api/news/1", ""},
		{http.MethodPut, "/api/settings", ""},
		{http.MethodGet, "/api/statistics", ""},
		{http.MethodGet, "/api/service-submissions", ""},
		{http.MethodPut, "/api/service-submissions/1/status", ""},
		{http.MethodPost, "/api/organization/swap", ""},
		{http.MethodPost, "/api/documents", ""},
		{http.MethodDelete, "/api/documents/1", ""},
		{http.MethodPost, "/api/uploads", ""},
		{http.MethodGet, "/api/auth/me", ""},
		{http.MethodGet, "/api/auth/me", "bukan.jwt.valid"},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			status, env := call(t, app, tt.method, tt.path, map[string]string{}, tt.token)
			if status != fiber.StatusUnauthorized {
				t.Fatalf("status = %d, want 401", status)
			}
			if env.Success || env.ErrorCode != "UNAUTHORIZED" {
				t.Fatalf("unexpected envelope %+v", env)
			}
		})
	}
}

func TestLoginWrongPassword(t *testing.T) {
	app, _ := newTestApp(t)
	_ = loginAdmin(t, app)

	status, env := call(t, app, http.MethodPost, "/api/auth/login", map[string]string{
		"email": "operator@desa.id", "password": "salah-password",
	}, "")
	if status != fiber.StatusUnauthorized || env.Success {
		t.Fatalf("status = %d, envelope %+v", status, env)
	}
}

func TestRegisterClosedAfterBootstrap(t *testing.T) {
	app, _ := newTestApp(t)
	token := loginAdmin(t, app)

	body := map[string]string{"nama": "Staf", "email": "staf@desa.id", "password": "rahasia123"}
	if status, _ := call(t, app, http.MethodPost, "/api/auth/register", body, ""); status != fiber.StatusUnauthorized {
		t.Fatalf("anonymous register: status = %d, want 401", status)
	}
	if status, _ := call(t, app, http.MethodPost, "/api/auth/register", body, token); status != fiber.StatusCreated {
		t.Fatalf("register by admin: status = %d, want 201", status)
	}
}

func TestLogoutRevokesSession(t *testing.T) {
	app, _ := newTestApp(t)
	token := loginAdmin(t, app)

	status, env := call(t, app, http.MethodGet, "/api/auth/me", nil, token)
	if status != fiber.StatusOK {
		t.Fatalf("me: status = %d", status)
	}
	me := decode[struct {
		Email string `json:"email"`
	}](t, env.Data)
	if me.Email != "operator@desa.id" {
		t.Fatalf("me = %+v", me)
	}

	if status, _ := call(t, app, http.MethodPost, "/api/auth/logout", nil, token); status != fiber.StatusOK {
		t.Fatalf("logout: status = %d", status)
	}
	if status, _ := call(t, app, http.MethodGet, "/api/auth/me", nil, token); status != fiber.StatusUnauthorized {
		t.Fatalf("me after logout: status = %d, want 401", status)
	}
}

type newsData struct {
	ID      uint   `json:"id"`
	Slug    string `json:"slug"`
	Status  string `json:"status"`
	Penulis string `json:"penulis"`
}

func TestNewsLifecycle(t *testing.T) {
	app, _ := newTestApp(t)
	token := loginAdmin(t, app)

	status, env := call(t, app, http.MethodPost, "/api/news", map[string]any{
		"judul": "Jalan Desa Selesai!", "konten": "<p>Pengaspalan rampung.</p>",
		"tanggal": "2024-08-17", "status": "published",
	}, token)
	if status != fiber.StatusCreated {
		t.Fatalf("create: status = %d (%s)", status, env.Message)
	}
	pub := decode[newsData](t, env.Data)
	if pub.Slug != "jalan-desa-selesai" || pub.Status != "published" || pub.Penulis != "Operator Desa" {
		t.Fatalf("unexpected %+v", pub)
	}

	status, env = call(t, app, http.MethodPost, "/api/news", map[string]any{
		"judul": "Rencana Pembangunan", "konten": "draf",
	}, token)
	if status != fiber.StatusCreated {
		t.Fatalf("create draft: status = %d (%s)", status, env.Message)
	}
	draft := decode[newsData](t, env.Data)
	if draft.Status != "draft" {
		t.Fatalf("default status = %q", draft.Status)
	}

	if status, _ := call(t, app, http.MethodPost, "/api/news", map[string]any{
		"judul": "Jalan desa selesai", "konten": "duplikat",
	}, token); status != fiber.StatusConflict {
		t.Fatalf("duplicate slug: status = %d, want 409", status)
	}
	if status, _ := call(t, app, http.MethodPost, "/api/news", map[string]any{"konten": "tanpa judul"}, token); status != fiber.StatusUnprocessableEntity {
		t.Fatalf("missing judul: status = %d, want 422", status)
	}

	_, env = call(t, app, http.MethodGet, "/api/news", nil, "")
	if env.Total != 1 {
		t.Fatalf("public list total = %d, want 1", env.Total)
	}
	_, env = call(t, app, http.MethodGet, "/api/news?status=all", nil, token)
	if env.Total != 2 {
		t.Fatalf("admin list total = %d, want 2", env.Total)
	}

	if status, _ := call(t, app, http.MethodGet, "/api/news/"+draft.Slug, nil, ""); status != fiber.StatusNotFound {
		t.Fatalf("public draft: status = %d, want 404", status)
	}
	if status, _ := call(t, app, http.MethodGet, "/api/news/"+draft.Slug, nil, token); status != fiber.StatusOK {
		t.Fatalf("admin draft: status = %d, want 200", status)
	}

	status, env = call(t, app, http.MethodPut, "/api/news/"+itoa(draft.ID), map[string]any{"status": "published"}, token)
	if status != fiber.StatusOK {
		t.Fatalf("update: status = %d (%s)", status, env.Message)
	}
	if status, _ := call(t, app, http.MethodGet, "/api/news/"+draft.Slug, nil, ""); status != fiber.StatusOK {
		t.Fatalf("published draft: status = %d, want 200", status)
	}

	if status, _ := call(t, app, http.MethodDelete, "/api/news/"+itoa(pub.ID), nil, token); status != fiber.StatusOK {
		t.Fatalf("delete: status = %d", status)
	}
	if status, _ := call(t, app, http.MethodDelete, "/api/news/"+itoa(pub.ID), nil, token); status != fiber.StatusNotFound {
		t.Fatalf("delete again: status = %d, want 404", status)
	}
}

var nomorPattern = regexp.MustCompile(`^\d{6}-[A-Z0-9]{6}$`)

func TestSubmissionLifecycle(t *testing.T) {
	app, _ := newTestApp(t)
	token := loginAdmin(t, app)

	status, env := call(t, app, http.MethodPost, "/api/services", map[string]any{
		"nama": "Surat Keterangan Domisili", "persyaratan": "KTP\nKK",
	}, token)
	if status != fiber.StatusCreated {
		t.Fatalf("create service: status = %d (%s)", status, env.Message)
	}
	svc := decode[struct {
		ID uint `json:"id"`
	}](t, env.Data)

	if status, _ := call(t, app, http.MethodPost, "/api/service-submissions", map[string]any{
		"layanan_id": svc.ID, "nama": "Budi", "nik": "12345",
	}, ""); status != fiber.StatusUnprocessableEntity {
		t.Fatalf("bad nik: status = %d, want 422", status)
	}
	if status, _ := call(t, app, http.MethodPost, "/api/service-submissions", map[string]any{
		"layanan_id": 999, "nama": "Budi", "nik": "3201012345678901",
	}, ""); status != fiber.StatusNotFound {
		t.Fatalf("unknown layanan: status = %d, want 404", status)
	}

	status, env = call(t, app, http.MethodPost, "/api/service-submissions", map[string]any{
		"layanan_id": svc.ID, "nama": "Budi", "nik": "3201012345678901",
	}, "")
	if status != fiber.StatusCreated {
		t.Fatalf("submit: status = %d (%s)", status, env.Message)
	}
	sub := decode[struct {
		ID             uint   `json:"id"`
		NomorPengajuan string `json:"nomor_pengajuan"`
		Status         string `json:"status"`
	}](t, env.Data)
	if !nomorPattern.MatchString(sub.NomorPengajuan) || sub.Status != "pending" {
		t.Fatalf("unexpected submission %+v", sub)
	}

	type tracking struct {
		NIK         string `json:"nik"`
		Status      string `json:"status"`
		LayananNama string `json:"layanan_nama"`
	}
	status, env = call(t, app, http.MethodGet, "/api/service-submissions/track/"+sub.NomorPengajuan, nil, "")
	if status != fiber.StatusOK {
		t.Fatalf("track: status = %d", status)
	}
	tr := decode[tracking](t, env.Data)
	if tr.NIK != "3201********8901" || tr.Status != "pending" || tr.LayananNama != "Surat Keterangan Domisili" {
		t.Fatalf("unexpected tracking %+v", tr)
	}

	status, env = call(t, app, http.MethodPut, "/api/service-submissions/"+itoa(sub.ID)+"/status", map[string]any{
		"status": "done", "catatan": "Silakan ambil di kantor desa",
	}, token)
	if status != fiber.StatusOK {
		t.Fatalf("update status: %d (%s)", status, env.Message)
	}
	_, env = call(t, app, http.MethodGet, "/api/service-submissions/track/"+sub.NomorPengajuan, nil, "")
	if tr := decode[tracking](t, env.Data); tr.Status != "selesai" {
		t.Fatalf("status after update = %q", tr.Status)
	}

	_, env = call(t, app, http.MethodGet, "/api/service-submissions?status=selesai", nil, token)
	if env.Total != 1 {
		t.Fatalf("admin list total = %d", env.Total)
	}

	// hapus layanan → pengajuan ikut terhapus
	if status, _ := call(t, app, http.MethodDelete, "/api/services/"+itoa(svc.ID), nil, token); status != fiber.StatusOK {
		t.Fatalf("delete service: %d", status)
	}
	if status, _ := call(t, app, http.MethodGet, "/api/service-submissions/track/"+sub.NomorPengajuan, nil, ""); status != fiber.StatusNotFound {
		t.Fatalf("track after cascade: status = %d, want 404", status)
	}
}

func TestSettingsPartialUpdate(t *testing.T) {
	app, _ := newTestApp(t)
	token := loginAdmin(t, app)

	type settings struct {
		NamaDesa     string `json:"nama_desa"`
		Slogan       string `json:"slogan"`
		PrimaryColor string `json:"primary_color"`
	}

	status, env := call(t, app, http.MethodPut, "/api/settings", map[string]any{"nama_desa": "Desa Sukamaju", "primary_color": "#ff0000"}, token)
	if status != fiber.StatusOK {
		t.Fatalf("update: %d (%s)", status, env.Message)
	}
	status, env = call(t, app, http.MethodPut, "/api/settings", map[string]any{"slogan": "Guyub Rukun"}, token)
	if status != fiber.StatusOK {
		t.Fatalf("update slogan: %d (%s)", status, env.Message)
	}

	_, env = call(t, app, http.MethodGet, "/api/settings", nil, "")
	got := decode[settings](t, env.Data)
	if got.NamaDesa != "Desa Sukamaju" || got.Slogan != "Guyub Rukun" || got.PrimaryColor != "#FF0000" {
		t.Fatalf("unexpected settings %+v", got)
	}

	if status, _ := call(t, app, http.MethodPut, "/api/settings", map[string]any{"primary_color": "merah"}, token); status != fiber.StatusUnprocessableEntity {
		t.Fatalf("bad color: status = %d, want 422", status)
	}
}

func TestStatistics(t *testing.T) {
	app, _ := newTestApp(t)
	token := loginAdmin(t, app)

	for _, judul := range []string{"Satu", "Dua"} {
		if status, _ := call(t, app, http.MethodPost, "/api/news", map[string]any{"judul": judul, "konten": "x"}, token); status != fiber.StatusCreated {
			t.Fatalf("create news: %d", status)
		}
	}
	status, env := call(t, app, http.MethodGet, "/api/statistics", nil, token)
	if status != fiber.StatusOK {
		t.Fatalf("statistics: %d", status)
	}
	s := decode[map[string]int64](t, env.Data)
	if s["news"] != 2 || s["gallery"] != 0 || s["submissions"] != 0 {
		t.Fatalf("unexpected statistics %v", s)
	}
}

func TestOrganizationOrdering(t *testing.T) {
	app, _ := newTestApp(t)
	token := loginAdmin(t, app)

	ids := make([]uint, 0, 3)
	for _, n := range []string{"Kepala Desa", "Sekretaris", "Bendahara"} {
		status, env := call(t, app, http.MethodPost, "/api/organization", map[string]any{"nama": n, "jabatan": n}, token)
		if status != fiber.StatusCreated {
			t.Fatalf("create member: %d (%s)", status, env.Message)
		}
		ids = append(ids, decode[struct {
			ID uint `json:"id"`
		}](t, env.Data).ID)
	}

	if status, env := call(t, app, http.MethodPut, "/api/organization/"+itoa(ids[2])+"/move", map[string]string{"direction": "up"}, token); status != fiber.StatusOK {
		t.Fatalf("move: %d (%s)", status, env.Message)
	}
	if status, _ := call(t, app, http.MethodPut, "/api/organization/"+itoa(ids[0])+"/move", map[string]string{"direction": "up"}, token); status == fiber.StatusOK {
		t.Fatal("moving the first member up must fail")
	}
	if status, env := call(t, app, http.MethodPost, "/api/organization/swap", map[string]uint{"first_id": ids[0], "second_id": ids[1]}, token); status != fiber.StatusOK {
		t.Fatalf("swap: %d (%s)", status, env.Message)
	}

	_, env := call(t, app, http.MethodGet, "/api/organization", nil, "")
	rows := decode[[]struct {
		Nama string `json:"nama"`
	}](t, env.Data)
	want := []string{"Sekretaris", "Bendahara", "Kepala Desa"}
	for i, r := range rows {
		if r.Nama != want[i] {
			t.Fatalf("order = %+v, want %v", rows, want)
		}
	}
}

func itoa(n uint) string { return strconv.FormatUint(uint64(n), 10) }

func TestUploadDocument(t *testing.T) {
	app, _ := newTestApp(t)
	token := loginAdmin(t, app)

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	fw, err := w.CreateFormFile("file", "perdes.pdf")
	if err != nil {
		t.Fatalf("form file: %v", err)
	}
	if _, err := fw.Write([]byte("%PDF-1.4\n%%EOF\n")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/uploads?folder=documents", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	res := decode[struct {
		URL         string `json:"url"`
		ContentType string `json:"content_type"`
	}](t, env.Data)
	if res.ContentType != "application/pdf" || res.URL == "" {
		t.Fatalf("unexpected %+v", res)
	}
}
