package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"desa_digital_backend/internals/features/home/statistics/controller"
)

func StatisticsAdminRoutes(r fiber.Router, db *gorm.DB, auth fiber.Handler) {
	ctl := controller.NewStatisticsController(db)
	r.Get("/statistics", auth, ctl.Get)
}
