package controller

import (
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"desa_digital_backend/internals/features/layanan/submissions/dto"
	"desa_digital_backend/internals/features/layanan/submissions/repository"
	helper "desa_digital_backend/internals/helpers"
	"desa_digital_backend/internals/middlewares/metrics"
)

type PengajuanController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Now       func() time.Time
}

func NewPengajuanController(db *gorm.DB) *PengajuanController {
	return &PengajuanController{DB: db, Validator: validator.New(), Now: time.Now}
}

// POST /api/service-submissions (publik)
func (ctl *PengajuanController) Create(c *fiber.Ctx) error {
	var req dto.CreatePengajuanRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := req.Validate(ctl.Validator); err != nil {
		return helper.JsonValidationError(c, err)
	}

	p := req.ToModel()
	if err := repository.CreateSubmission(c.UserContext(), ctl.DB, p, ctl.Now()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Layanan tidak ditemukan")
		}
		log.Printf("[ERROR] create pengajuan: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengirim pengajuan")
	}
	metrics.IncSubmissionsCreated()
	log.Printf("[INFO] 📨 pengajuan baru %s (layanan %d)", p.NomorPengajuan, p.LayananID)
	return helper.JsonCreated(c, "Pengajuan terkirim, simpan nomor pengajuan Anda", p)
}

// GET /api/service-submissions/track/:nomor (publik, NIK disamarkan)
func (ctl *PengajuanController) Track(c *fiber.Ctx) error {
	nomor := strings.TrimSpace(c.Params("nomor"))
	if nomor == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nomor pengajuan wajib diisi")
	}
	p, err := repository.GetSubmissionByNumber(c.UserContext(), ctl.DB, nomor)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pengajuan tidak ditemukan")
		}
		log.Printf("[ERROR] track pengajuan %s: %v", nomor, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pengajuan")
	}
	return helper.JsonOK(c, "ok", dto.NewTrackingResponse(*p))
}

// GET /api/service-submissions?status=&layanan_id=&q=&page=&limit= (admin)
func (ctl *PengajuanController) List(c *fiber.Ctx) error {
	f := repository.SubmissionFilter{
		Status: strings.TrimSpace(c.Query("status")),
		Q:      c.Query("q"),
	}
	if raw := strings.TrimSpace(c.Query("layanan_id")); raw != "" {
		n, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "layanan_id tidak valid")
		}
		f.LayananID = uint(n)
	}

	rows, pg, err := repository.ListSubmissions(c.UserContext(), ctl.DB, f, helper.ResolvePaging(c))
	if err != nil {
		if errors.Is(err, repository.ErrInvalidStatus) {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		log.Printf("[ERROR] list pengajuan: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pengajuan")
	}
	return helper.JsonList(c, "ok", rows, pg)
}

// PUT /api/service-submissions/:id/status {status, catatan} (admin)
func (ctl *PengajuanController) UpdateStatus(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	p, err := repository.UpdateSubmissionStatus(c.UserContext(), ctl.DB, id, req.Status, req.Catatan)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrInvalidStatus):
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		case errors.Is(err, gorm.ErrRecordNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Pengajuan tidak ditemukan")
		}
		log.Printf("[ERROR] update status pengajuan %d: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui status")
	}
	return helper.JsonUpdated(c, "Status pengajuan diperbarui", p)
}
