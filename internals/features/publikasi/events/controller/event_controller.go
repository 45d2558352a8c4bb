package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"desa_digital_backend/internals/features/publikasi/events/dto"
	"desa_digital_backend/internals/features/publikasi/events/repository"
	helper "desa_digital_backend/internals/helpers"
)

type EventController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Now       func() time.Time
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{DB: db, Validator: validator.New(), Now: time.Now}
}

// GET /api/events?when=upcoming|past
func (ctl *EventController) List(c *fiber.Ctx) error {
	now := ctl.Now()
	when := strings.ToLower(strings.TrimSpace(c.Query("when")))
	rows, err := repository.ListEvents(c.UserContext(), ctl.DB, when, now)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidWhen) {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		log.Printf("[ERROR] list events: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil agenda")
	}
	return helper.JsonOK(c, "ok", dto.NewEventResponses(rows, now))
}

// POST /api/events
func (ctl *EventController) Create(c *fiber.Ctx) error {
	var req dto.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := req.Validate(ctl.Validator); err != nil {
		return helper.JsonValidationError(c, err)
	}
	e, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := repository.CreateEvent(c.UserContext(), ctl.DB, e); err != nil {
		log.Printf("[ERROR] create event: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan agenda")
	}
	return helper.JsonCreated(c, "Agenda dibuat", dto.NewEventResponse(*e, ctl.Now()))
}

// PUT /api/events/:id
func (ctl *EventController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req dto.UpdateEventRequest
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

	e, err := repository.UpdateEvent(c.UserContext(), ctl.DB, id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Agenda tidak ditemukan")
		}
		log.Printf("[ERROR] update event %d: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui agenda")
	}
	return helper.JsonUpdated(c, "Agenda diperbarui", dto.NewEventResponse(*e, ctl.Now()))
}

// DELETE /api/events/:id
func (ctl *EventController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := repository.DeleteEvent(c.UserContext(), ctl.DB, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Agenda tidak ditemukan")
		}
		log.Printf("[ERROR] delete event %d: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus agenda")
	}
	return helper.JsonDeleted(c, "Agenda dihapus", fiber.Map{"id": id})
}
