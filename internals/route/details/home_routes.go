package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	statisticsRoute "desa_digital_backend/internals/features/home/statistics/route"
)

func HomeAdminRoutes(api fiber.Router, db *gorm.DB, auth fiber.Handler) {
	statisticsRoute.StatisticsAdminRoutes(api, db, auth)
}
