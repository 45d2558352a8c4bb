package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"desa_digital_backend/internals/features/publikasi/galleries/dto"
	"desa_digital_backend/internals/features/publikasi/galleries/repository"
	helper "desa_digital_backend/internals/helpers"
)

type GalleryController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewGalleryController(db *gorm.DB) *GalleryController {
	return &GalleryController{DB: db, Validator: validator.New()}
}

// GET /api/galleries?kategori=&page=&limit=
func (ctl *GalleryController) List(c *fiber.Ctx) error {
	rows, pg, err := repository.ListGalleries(c.UserContext(), ctl.DB, c.Query("kategori"), helper.ResolvePaging(c))
	if err != nil {
		log.Printf("[ERROR] list galleries: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil galeri")
	}
	return helper.JsonList(c, "ok", rows, pg)
}

// GET /api/galleries/categories
func (ctl *GalleryController) Categories(c *fiber.Ctx) error {
	cats, err := repository.ListGalleryCategories(c.UserContext(), ctl.DB)
	if err != nil {
		log.Printf("[ERROR] list gallery categories: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kategori galeri")
	}
	return helper.JsonOK(c, "ok", cats)
}

// POST /api/galleries
func (ctl *GalleryController) Create(c *fiber.Ctx) error {
	var req dto.CreateGalleryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := req.Validate(ctl.Validator); err != nil {
		return helper.JsonValidationError(c, err)
	}
	g, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := repository.CreateGallery(c.UserContext(), ctl.DB, g); err != nil {
		log.Printf("[ERROR] create gallery: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan galeri")
	}
	return helper.JsonCreated(c, "Foto galeri ditambahkan", g)
}

// PUT /api/galleries/:id
func (ctl *GalleryController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req dto.UpdateGalleryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := req.Validate(ctl.Validator); err != nil {
		return helper.JsonValidationError(c, err)
	}
	updates, err := req.ToUpdates()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	g, err := repository.UpdateGallery(c.UserContext(), ctl.DB, id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Galeri tidak ditemukan")
		}
		log.Printf("[ERROR] update gallery %d: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui galeri")
	}
	return helper.JsonUpdated(c, "Galeri diperbarui", g)
}

// DELETE /api/galleries/:id
func (ctl *GalleryController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := repository.DeleteGallery(c.UserContext(), ctl.DB, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Galeri tidak ditemukan")
		}
		log.Printf("[ERROR] delete gallery %d: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus galeri")
	}
	return helper.JsonDeleted(c, "Galeri dihapus", fiber.Map{"id": id})
}
