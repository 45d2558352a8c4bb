package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"desa_digital_backend/internals/features/publikasi/galleries/controller"
)

func GalleryPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewGalleryController(db)
	r.Get("/galleries", ctl.List)
	r.Get("/galleries/categories", ctl.Categories)
}

func GalleryAdminRoutes(r fiber.Router, db *gorm.DB, auth fiber.Handler) {
	ctl := controller.NewGalleryController(db)
	r.Post("/galleries", auth, ctl.Create)
	r.Put("/galleries/:id", auth, ctl.Update)
	r.Delete("/galleries/:id", auth, ctl.Delete)
}
