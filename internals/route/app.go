package routes

import (
	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"

	"desa_digital_backend/internals/configs"
	helper "desa_digital_backend/internals/helpers"
)

// NewApp: konfigurasi fiber yang sama untuk server & test.
func NewApp() *fiber.App {
	return fiber.New(fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ErrorHandler:          helper.ErrorHandler,
		// multipart butuh ruang di atas batas file
		BodyLimit: int(configs.UploadMaxBytes) + 1024*1024,
	})
}
