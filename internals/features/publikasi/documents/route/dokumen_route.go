package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"desa_digital_backend/internals/features/publikasi/documents/controller"
)

func DokumenPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewDokumenController(db)
	r.Get("/documents", ctl.List)
}

func DokumenAdminRoutes(r fiber.Router, db *gorm.DB, auth fiber.Handler) {
	ctl := controller.NewDokumenController(db)
	r.Post("/documents", auth, ctl.Create)
	r.Put("/documents/:id", auth, ctl.Update)
	r.Delete("/documents/:id", auth, ctl.Delete)
}
