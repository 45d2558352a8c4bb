package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"desa_digital_backend/internals/features/lembaga/organisasi/dto"
	"desa_digital_backend/internals/features/lembaga/organisasi/repository"
	helper "desa_digital_backend/internals/helpers"
)

type OrganisasiController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewOrganisasiController(db *gorm.DB) *OrganisasiController {
	return &OrganisasiController{DB: db, Validator: validator.New()}
}

// GET /api/organization
func (ctl *OrganisasiController) List(c *fiber.Ctx) error {
	rows, err := repository.ListMembers(c.UserContext(), ctl.DB)
	if err != nil {
		log.Printf("[ERROR] list organisasi: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil struktur organisasi")
	}
	return helper.JsonOK(c, "ok", rows)
}

// POST /api/organization
func (ctl *OrganisasiController) Create(c *fiber.Ctx) error {
	var req dto.CreateOrganisasiRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := req.Validate(ctl.Validator); err != nil {
		return helper.JsonValidationError(c, err)
	}
	m := req.ToModel()
	if err := repository.CreateMember(c.UserContext(), ctl.DB, m, req.Urutan == nil); err != nil {
		log.Printf("[ERROR] create organisasi: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menambah anggota")
	}
	return helper.JsonCreated(c, "Anggota ditambahkan", m)
}

// PUT /api/organization/:id
func (ctl *OrganisasiController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req dto.UpdateOrganisasiRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := req.Validate(ctl.Validator); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m, err := repository.UpdateMember(c.UserContext(), ctl.DB, id, req.ToUpdates())
	if err != nil {
		return ctl.writeError(c, "update organisasi", err)
	}
	return helper.JsonUpdated(c, "Anggota diperbarui", m)
}

// DELETE /api/organization/:id
func (ctl *OrganisasiController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := repository.DeleteMember(c.UserContext(), ctl.DB, id); err != nil {
		return ctl.writeError(c, "delete organisasi", err)
	}
	return helper.JsonDeleted(c, "Anggota dihapus", fiber.Map{"id": id})
}

// POST /api/organization/swap {first_id, second_id}
func (ctl *OrganisasiController) Swap(c *fiber.Ctx) error {
	var req dto.SwapOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if err := repository.SwapOrder(c.UserContext(), ctl.DB, req.FirstID, req.SecondID); err != nil {
		return ctl.writeError(c, "swap organisasi", err)
	}
	rows, err := repository.ListMembers(c.UserContext(), ctl.DB)
	if err != nil {
		return ctl.writeError(c, "list organisasi", err)
	}
	return helper.JsonUpdated(c, "Urutan ditukar", rows)
}

// PUT /api/organization/:id/move {direction: up|down}
func (ctl *OrganisasiController) Move(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req dto.MoveMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	rows, err := repository.MoveMember(c.UserContext(), ctl.DB, id, req.Direction)
	if err != nil {
		return ctl.writeError(c, "move organisasi", err)
	}
	return helper.JsonUpdated(c, "Urutan diperbarui", rows)
}

func (ctl *OrganisasiController) writeError(c *fiber.Ctx, op string, err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Anggota tidak ditemukan")
	case errors.Is(err, repository.ErrNoNeighbour), errors.Is(err, repository.ErrInvalidDirection):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	log.Printf("[ERROR] %s: %v", op, err)
	return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses struktur organisasi")
}
