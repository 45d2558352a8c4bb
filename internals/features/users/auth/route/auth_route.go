// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"desa_digital_backend/internals/features/users/auth/controller"
	rateLimiter "desa_digital_backend/internals/middlewares"
)

// AuthRoutes: base /api/auth.
// register memakai optional auth: admin pertama boleh tanpa token, setelahnya wajib admin.
func AuthRoutes(r fiber.Router, db *gorm.DB, auth, optional fiber.Handler) {
	authController := controller.NewAuthController(db)
	baseAuth := r.Group("/auth")

	// 🔓 Public
	baseAuth.Post("/login", rateLimiter.LoginRateLimiter(), authController.Login)
	baseAuth.Post("/register", rateLimiter.RegisterRateLimiter(), optional, authController.Register)

	// 🔒 Admin
	baseAuth.Post("/logout", auth, authController.Logout)
	baseAuth.Get("/me", auth, authController.Me)
}
