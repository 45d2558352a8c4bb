package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	organisasiRoute "desa_digital_backend/internals/features/lembaga/organisasi/route"
)

func LembagaPublicRoutes(api fiber.Router, db *gorm.DB) {
	organisasiRoute.OrganisasiPublicRoutes(api, db)
}

func LembagaAdminRoutes(api fiber.Router, db *gorm.DB, auth fiber.Handler) {
	organisasiRoute.OrganisasiAdminRoutes(api, db, auth)
}
