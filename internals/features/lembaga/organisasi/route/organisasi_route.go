package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"desa_digital_backend/internals/features/lembaga/organisasi/controller"
)

func OrganisasiPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewOrganisasiController(db)
	r.Get("/organization", ctl.List)
}

func OrganisasiAdminRoutes(r fiber.Router, db *gorm.DB, auth fiber.Handler) {
	ctl := controller.NewOrganisasiController(db)
	r.Post("/organization", auth, ctl.Create)
	// swap sebelum /:id agar tidak tertangkap param
	r.Post("/organization/swap", auth, ctl.Swap)
	r.Put("/organization/:id/move", auth, ctl.Move)
	r.Put("/organization/:id", auth, ctl.Update)
	r.Delete("/organization/:id", auth, ctl.Delete)
}
