package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"desa_digital_backend/internals/features/publikasi/news/dto"
	"desa_digital_backend/internals/features/publikasi/news/model"
	"desa_digital_backend/internals/features/publikasi/news/repository"
	helper "desa_digital_backend/internals/helpers"
)

type NewsController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewNewsController(db *gorm.DB) *NewsController {
	return &NewsController{DB: db, Validator: validator.New()}
}

// GET /api/news?page=&limit=&status=&q=
// Publik selalu published; admin boleh status=draft|published|all.
func (ctl *NewsController) List(c *fiber.Ctx) error {
	filter := repository.NewsFilter{
		Status: model.NewsStatusPublished,
		Q:      c.Query("q"),
	}
	if helper.IsAdmin(c) {
		switch s := strings.ToLower(strings.TrimSpace(c.Query("status"))); s {
		case "", "all":
			filter.Status = ""
		default:
			if !model.IsValidNewsStatus(s) {
				return helper.JsonError(c, fiber.StatusBadRequest, "status harus published, draft, atau all")
			}
			filter.Status = s
		}
	}

	rows, pg, err := repository.ListNews(c.UserContext(), ctl.DB, filter, helper.ResolvePaging(c))
	if err != nil {
		log.Printf("[ERROR] list news: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil berita")
	}
	return helper.JsonList(c, "ok", rows, pg)
}

// GET /api/news/:slug
func (ctl *NewsController) GetBySlug(c *fiber.Ctx) error {
	slug := strings.TrimSpace(c.Params("slug"))
	n, err := repository.GetNewsBySlug(c.UserContext(), ctl.DB, slug, helper.IsAdmin(c))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Berita tidak ditemukan")
		}
		log.Printf("[ERROR] get news %q: %v", slug, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil berita")
	}
	return helper.JsonOK(c, "ok", n)
}

// POST /api/news
func (ctl *NewsController) Create(c *fiber.Ctx) error {
	var req dto.CreateNewsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := req.Validate(ctl.Validator); err != nil {
		return helper.JsonValidationError(c, err)
	}

	penulis, _ := c.Locals(helper.LocAdminName).(string)
	n, err := req.ToModel(penulis)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := repository.CreateNews(c.UserContext(), ctl.DB, n); err != nil {
		return ctl.writeError(c, "create news", err)
	}
	return helper.JsonCreated(c, "Berita dibuat", n)
}

// PUT /api/news/:id
func (ctl *NewsController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req dto.UpdateNewsRequest
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

	n, err := repository.UpdateNews(c.UserContext(), ctl.DB, id, updates)
	if err != nil {
		return ctl.writeError(c, "update news", err)
	}
	return helper.JsonUpdated(c, "Berita diperbarui", n)
}

// DELETE /api/news/:id
func (ctl *NewsController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := repository.DeleteNews(c.UserContext(), ctl.DB, id); err != nil {
		return ctl.writeError(c, "delete news", err)
	}
	return helper.JsonDeleted(c, "Berita dihapus", fiber.Map{"id": id})
}

func (ctl *NewsController) writeError(c *fiber.Ctx, op string, err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Berita tidak ditemukan")
	case errors.Is(err, repository.ErrSlugTaken):
		return helper.JsonError(c, fiber.StatusConflict, "Judul berita sudah dipakai (slug bentrok)")
	case errors.Is(err, repository.ErrEmptySlug):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	log.Printf("[ERROR] %s: %v", op, err)
	return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses berita")
}
