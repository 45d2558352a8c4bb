package middlewares

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	helper "desa_digital_backend/internals/helpers"
)

func newApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New(fiber.Config{ErrorHandler: helper.ErrorHandler})
	SetupMiddlewares(app)
	app.Get("/boom", func(c *fiber.Ctx) error { panic("meledak") })
	app.Get("/berita", func(c *fiber.Ctx) error {
		return c.SendString(strings.Repeat("kabar desa ", 100))
	})
	return app
}

func TestSetupMiddlewaresRecoversPanicWithGzip(t *testing.T) {
	app := newApp(t)

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", resp.StatusCode)
	}
	if resp.Header.Get(HeaderRequestID) == "" {
		t.Fatal("missing request id header")
	}
	var env helper.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if env.Success || env.ErrorCode == "" {
		t.Fatalf("unexpected envelope %+v", env)
	}
}

func TestSetupMiddlewaresCompressAndETag(t *testing.T) {
	app := newApp(t)

	req := httptest.NewRequest(http.MethodGet, "/berita", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if got := resp.Header.Get("Content-Encoding"); got != "gzip" {
		t.Fatalf("Content-Encoding = %q, want gzip", got)
	}
	tag := resp.Header.Get("ETag")
	if tag == "" {
		t.Fatal("missing ETag")
	}

	req = httptest.NewRequest(http.MethodGet, "/berita", nil)
	req.Header.Set("If-None-Match", tag)
	resp, err = app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != fiber.StatusNotModified {
		t.Fatalf("status = %d, want 304", resp.StatusCode)
	}
}
