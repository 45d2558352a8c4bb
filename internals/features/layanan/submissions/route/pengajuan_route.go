package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"desa_digital_backend/internals/features/layanan/submissions/controller"
)

// PengajuanPublicRoutes: limiter dipasang hanya pada POST (form publik).
func PengajuanPublicRoutes(r fiber.Router, db *gorm.DB, limiter fiber.Handler) {
	ctl := controller.NewPengajuanController(db)
	r.Post("/service-submissions", limiter, ctl.Create)
	r.Get("/service-submissions/track/:nomor", ctl.Track)
}

func PengajuanAdminRoutes(r fiber.Router, db *gorm.DB, auth fiber.Handler) {
	ctl := controller.NewPengajuanController(db)
	r.Get("/service-submissions", auth, ctl.List)
	r.Put("/service-submissions/:id/status", auth, ctl.UpdateStatus)
}
