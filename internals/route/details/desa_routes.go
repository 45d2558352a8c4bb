package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	settingsRoute "desa_digital_backend/internals/features/desa/settings/route"
)

func DesaPublicRoutes(api fiber.Router, db *gorm.DB) {
	settingsRoute.SettingsPublicRoutes(api, db)
}

func DesaAdminRoutes(api fiber.Router, db *gorm.DB, auth fiber.Handler) {
	settingsRoute.SettingsAdminRoutes(api, db, auth)
}
