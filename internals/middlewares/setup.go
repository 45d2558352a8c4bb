package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"

	"desa_digital_backend/internals/configs"
	"desa_digital_backend/internals/middlewares/logger"
	"desa_digital_backend/internals/middlewares/metrics"
)

// SetupMiddlewares: urutan penting, recovery paling luar.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault})) // gzip
	app.Use(etag.New())                                                  // 304 caching
	app.Use(RequestID())
	app.Use(logger.LoggerMiddleware())
	app.Use(CorsMiddleware())
	app.Use(metrics.Middleware())
	app.Use(GlobalRateLimiter())
	app.Use(RequestTimeout(configs.RequestTimeout))
}
