package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"desa_digital_backend/internals/features/publikasi/documents/dto"
	"desa_digital_backend/internals/features/publikasi/documents/repository"
	helper "desa_digital_backend/internals/helpers"
)

type DokumenController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewDokumenController(db *gorm.DB) *DokumenController {
	return &DokumenController{DB: db, Validator: validator.New()}
}

// GET /api/documents?kategori=&page=&limit=
func (ctl *DokumenController) List(c *fiber.Ctx) error {
	rows, pg, err := repository.ListDocuments(c.UserContext(), ctl.DB, c.Query("kategori"), helper.ResolvePaging(c))
	if err != nil {
		log.Printf("[ERROR] list documents: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil dokumen")
	}
	return helper.JsonList(c, "ok", rows, pg)
}

// POST /api/documents
func (ctl *DokumenController) Create(c *fiber.Ctx) error {
	var req dto.CreateDokumenRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := req.Validate(ctl.Validator); err != nil {
		return helper.JsonValidationError(c, err)
	}
	d := req.ToModel()
	if err := repository.CreateDocument(c.UserContext(), ctl.DB, d); err != nil {
		log.Printf("[ERROR] create document: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan dokumen")
	}
	return helper.JsonCreated(c, "Dokumen ditambahkan", d)
}

// PUT /api/documents/:id
func (ctl *DokumenController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req dto.UpdateDokumenRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := req.Validate(ctl.Validator); err != nil {
		return helper.JsonValidationError(c, err)
	}

	d, err := repository.UpdateDocument(c.UserContext(), ctl.DB, id, req.ToUpdates())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Dokumen tidak ditemukan")
		}
		log.Printf("[ERROR] update document %d: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui dokumen")
	}
	return helper.JsonUpdated(c, "Dokumen diperbarui", d)
}

// DELETE /api/documents/:id
func (ctl *DokumenController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := repository.DeleteDocument(c.UserContext(), ctl.DB, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Dokumen tidak ditemukan")
		}
		log.Printf("[ERROR] delete document %d: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus dokumen")
	}
	return helper.JsonDeleted(c, "Dokumen dihapus", fiber.Map{"id": id})
}
