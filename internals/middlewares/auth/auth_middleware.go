// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"desa_digital_backend/internals/configs"
	authService "desa_digital_backend/internals/features/users/auth/service"
	helper "desa_digital_backend/internals/helpers"
)

// AuthJWT menolak request tanpa token valid: tanda tangan, umur sesi,
// blacklist (logout), dan admin yang masih ada.
func AuthJWT(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
		}
		if configs.JWTSecret == "" {
			log.Println("[ERROR] JWT_SECRET kosong")
			return helper.JsonError(c, fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		admin, _, err := authService.Authenticate(c.UserContext(), db, configs.JWTSecret, tokenString, time.Now())
		if err != nil {
			if authService.IsUnauthorized(err) {
				return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - "+err.Error())
			}
			log.Printf("[ERROR] AuthJWT: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
		}

		helper.SetRawAccessToken(c, tokenString)
		c.Locals(helper.LocAdminID, admin.ID)
		c.Locals(helper.LocAdminEmail, admin.Email)
		c.Locals(helper.LocAdminName, admin.Nama)
		return c.Next()
	}
}

// OptionalAuth: token valid → Locals admin terisi; tanpa token / token rusak → lanjut sebagai publik.
func OptionalAuth(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil || configs.JWTSecret == "" {
			return c.Next()
		}
		admin, _, err := authService.Authenticate(c.UserContext(), db, configs.JWTSecret, tokenString, time.Now())
		if err != nil {
			if !authService.IsUnauthorized(err) {
				log.Printf("[WARN] OptionalAuth: %v", err)
			}
			return c.Next()
		}
		helper.SetRawAccessToken(c, tokenString)
		c.Locals(helper.LocAdminID, admin.ID)
		c.Locals(helper.LocAdminEmail, admin.Email)
		c.Locals(helper.LocAdminName, admin.Nama)
		return c.Next()
	}
}
