package details

import (
	"github.com/gofiber/fiber/v2"

	"desa_digital_backend/internals/configs"
	uploadRoute "desa_digital_backend/internals/features/utils/uploads/route"
	uploadService "desa_digital_backend/internals/features/utils/uploads/service"
)

// UtilsRoutes: upload admin + file statis hasil upload lokal.
func UtilsRoutes(app *fiber.App, api fiber.Router, uploads *uploadService.UploadService, auth fiber.Handler) {
	if uploads == nil {
		return
	}
	uploadRoute.UploadAdminRoutes(api, uploads, auth)

	if _, ok := uploads.Storage.(*uploadService.LocalStorage); ok {
		app.Static(configs.UploadPublicBase, configs.UploadDir, fiber.Static{
			Compress: true,
			MaxAge:   86400,
		})
	}
}
