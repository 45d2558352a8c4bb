package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"desa_digital_backend/internals/features/layanan/services/dto"
	"desa_digital_backend/internals/features/layanan/services/repository"
	helper "desa_digital_backend/internals/helpers"
)

type LayananController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewLayananController(db *gorm.DB) *LayananController {
	return &LayananController{DB: db, Validator: validator.New()}
}

// GET /api/services?q=
func (ctl *LayananController) List(c *fiber.Ctx) error {
	rows, err := repository.ListServices(c.UserContext(), ctl.DB, c.Query("q"))
	if err != nil {
		log.Printf("[ERROR] list layanan: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil layanan")
	}
	return helper.JsonOK(c, "ok", rows)
}

// GET /api/services/:id
func (ctl *LayananController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	l, err := repository.GetService(c.UserContext(), ctl.DB, id)
	if err != nil {
		return ctl.writeError(c, "get layanan", err)
	}
	return helper.JsonOK(c, "ok", l)
}

// POST /api/services
func (ctl *LayananController) Create(c *fiber.Ctx) error {
	var req dto.CreateLayananRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := req.Validate(ctl.Validator); err != nil {
		return helper.JsonValidationError(c, err)
	}
	l := req.ToModel()
	if err := repository.CreateService(c.UserContext(), ctl.DB, l); err != nil {
		return ctl.writeError(c, "create layanan", err)
	}
	return helper.JsonCreated(c, "Layanan dibuat", l)
}

// PUT /api/services/:id
func (ctl *LayananController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req dto.UpdateLayananRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := req.Validate(ctl.Validator); err != nil {
		return helper.JsonValidationError(c, err)
	}
	l, err := repository.UpdateService(c.UserContext(), ctl.DB, id, req.ToUpdates())
	if err != nil {
		return ctl.writeError(c, "update layanan", err)
	}
	return helper.JsonUpdated(c, "Layanan diperbarui", l)
}

// DELETE /api/services/:id, pengajuan terkait ikut terhapus.
func (ctl *LayananController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := repository.DeleteService(c.UserContext(), ctl.DB, id); err != nil {
		return ctl.writeError(c, "delete layanan", err)
	}
	return helper.JsonDeleted(c, "Layanan dihapus", fiber.Map{"id": id})
}

func (ctl *LayananController) writeError(c *fiber.Ctx, op string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Layanan tidak ditemukan")
	}
	log.Printf("[ERROR] %s: %v", op, err)
	return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses layanan")
}
