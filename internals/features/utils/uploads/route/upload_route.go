package route

import (
	"github.com/gofiber/fiber/v2"

	"desa_digital_backend/internals/features/utils/uploads/controller"
	"desa_digital_backend/internals/features/utils/uploads/service"
)

func UploadAdminRoutes(r fiber.Router, svc *service.UploadService, auth fiber.Handler) {
	ctl := controller.NewUploadController(svc)
	r.Post("/uploads", auth, ctl.Upload)
}
