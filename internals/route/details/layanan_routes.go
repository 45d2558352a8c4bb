package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	servicesRoute "desa_digital_backend/internals/features/layanan/services/route"
	submissionsRoute "desa_digital_backend/internals/features/layanan/submissions/route"
	rateLimiter "desa_digital_backend/internals/middlewares"
)

func LayananPublicRoutes(api fiber.Router, db *gorm.DB) {
	servicesRoute.LayananPublicRoutes(api, db)
	submissionsRoute.PengajuanPublicRoutes(api, db, rateLimiter.SubmissionRateLimiter())
}

func LayananAdminRoutes(api fiber.Router, db *gorm.DB, auth fiber.Handler) {
	servicesRoute.LayananAdminRoutes(api, db, auth)
	submissionsRoute.PengajuanAdminRoutes(api, db, auth)
}
