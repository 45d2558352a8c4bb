package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"desa_digital_backend/internals/features/home/statistics/repository"
	helper "desa_digital_backend/internals/helpers"
)

type StatisticsController struct {
	DB *gorm.DB
}

func NewStatisticsController(db *gorm.DB) *StatisticsController {
	return &StatisticsController{DB: db}
}

// GET /api/statistics
func (sc *StatisticsController) Get(c *fiber.Ctx) error {
	s, err := repository.GetStatistics(c.UserContext(), sc.DB)
	if err != nil {
		log.Printf("[ERROR] statistics: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil statistik")
	}
	return helper.JsonOK(c, "ok", s)
}
