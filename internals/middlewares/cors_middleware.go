// middlewares/cors.go

package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"desa_digital_backend/internals/configs"
)

var defaultOrigins = []string{
	"http://localhost:5173",
	"http://localhost:3000",
	"http://127.0.0.1:5500",
}

// CorsMiddleware: CORS_ALLOW_ORIGINS (dipisah koma) menimpa daftar default.
func CorsMiddleware() fiber.Handler {
	origins := defaultOrigins
	if raw := strings.TrimSpace(configs.GetEnv("CORS_ALLOW_ORIGINS")); raw != "" {
		origins = nil
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}
	return cors.New(cors.Config{
		AllowOrigins:     strings.Join(origins, ", "),
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Request-ID",
		ExposeHeaders:    "X-Request-ID",
		AllowCredentials: !containsWildcard(origins),
	})
}

// fiber menolak AllowCredentials bersama origin "*"
func containsWildcard(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
