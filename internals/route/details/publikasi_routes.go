package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	documentsRoute "desa_digital_backend/internals/features/publikasi/documents/route"
	eventsRoute "desa_digital_backend/internals/features/publikasi/events/route"
	galleriesRoute "desa_digital_backend/internals/features/publikasi/galleries/route"
	newsRoute "desa_digital_backend/internals/features/publikasi/news/route"
)

func PublikasiPublicRoutes(api fiber.Router, db *gorm.DB, optional fiber.Handler) {
	newsRoute.NewsPublicRoutes(api, db, optional)
	galleriesRoute.GalleryPublicRoutes(api, db)
	eventsRoute.EventPublicRoutes(api, db)
	documentsRoute.DokumenPublicRoutes(api, db)
}

func PublikasiAdminRoutes(api fiber.Router, db *gorm.DB, auth fiber.Handler) {
	newsRoute.NewsAdminRoutes(api, db, auth)
	galleriesRoute.GalleryAdminRoutes(api, db, auth)
	eventsRoute.EventAdminRoutes(api, db, auth)
	documentsRoute.DokumenAdminRoutes(api, db, auth)
}
