package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"desa_digital_backend/internals/features/desa/settings/dto"
	"desa_digital_backend/internals/features/desa/settings/repository"
	helper "desa_digital_backend/internals/helpers"
)

type DesaSettingsController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewDesaSettingsController(db *gorm.DB) *DesaSettingsController {
	return &DesaSettingsController{DB: db, Validator: validator.New()}
}

// GET /api/settings
func (ctl *DesaSettingsController) Get(c *fiber.Ctx) error {
	s, err := repository.GetSettings(c.UserContext(), ctl.DB)
	if err != nil {
		log.Printf("[ERROR] get settings: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pengaturan desa")
	}
	return helper.JsonOK(c, "ok", s)
}

// PUT /api/settings (partial); field yang tidak dikirim tetap.
func (ctl *DesaSettingsController) Update(c *fiber.Ctx) error {
	var req dto.UpdateDesaSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := req.Validate(ctl.Validator); err != nil {
		return helper.JsonValidationError(c, err)
	}

	s, err := repository.UpdateSettings(c.UserContext(), ctl.DB, req.ToUpdates())
	if err != nil {
		log.Printf("[ERROR] update settings: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui pengaturan desa")
	}
	return helper.JsonUpdated(c, "Pengaturan desa diperbarui", s)
}
