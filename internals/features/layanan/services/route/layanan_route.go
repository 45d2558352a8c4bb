package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"desa_digital_backend/internals/features/layanan/services/controller"
)

func LayananPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewLayananController(db)
	r.Get("/services", ctl.List)
	r.Get("/services/:id", ctl.Get)
}

func LayananAdminRoutes(r fiber.Router, db *gorm.DB, auth fiber.Handler) {
	ctl := controller.NewLayananController(db)
	r.Post("/services", auth, ctl.Create)
	r.Put("/services/:id", auth, ctl.Update)
	r.Delete("/services/:id", auth, ctl.Delete)
}
