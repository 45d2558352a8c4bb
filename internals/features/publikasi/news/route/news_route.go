package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"desa_digital_backend/internals/features/publikasi/news/controller"
)

// NewsPublicRoutes: optional mengisi Locals admin bila token ada (draft terlihat admin).
func NewsPublicRoutes(r fiber.Router, db *gorm.DB, optional fiber.Handler) {
	ctl := controller.NewNewsController(db)
	r.Get("/news", optional, ctl.List)
	r.Get("/news/:slug", optional, ctl.GetBySlug)
}

func NewsAdminRoutes(r fiber.Router, db *gorm.DB, auth fiber.Handler) {
	ctl := controller.NewNewsController(db)
	r.Post("/news", auth, ctl.Create)
	r.Put("/news/:id", auth, ctl.Update)
	r.Delete("/news/:id", auth, ctl.Delete)
}
