package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"desa_digital_backend/internals/features/publikasi/events/controller"
)

func EventPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewEventController(db)
	r.Get("/events", ctl.List)
}

func EventAdminRoutes(r fiber.Router, db *gorm.DB, auth fiber.Handler) {
	ctl := controller.NewEventController(db)
	r.Post("/events", auth, ctl.Create)
	r.Put("/events/:id", auth, ctl.Update)
	r.Delete("/events/:id", auth, ctl.Delete)
}
