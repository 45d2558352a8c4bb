package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"desa_digital_backend/internals/features/desa/settings/controller"
)

func SettingsPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewDesaSettingsController(db)
	r.Get("/settings", ctl.Get)
}

// SettingsAdminRoutes: auth dipasang per-route karena prefix /api dipakai bersama.
func SettingsAdminRoutes(r fiber.Router, db *gorm.DB, auth fiber.Handler) {
	ctl := controller.NewDesaSettingsController(db)
	r.Put("/settings", auth, ctl.Update)
}
