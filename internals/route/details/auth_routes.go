package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRoute "desa_digital_backend/internals/features/users/auth/route"
)

func AuthRoutes(api fiber.Router, db *gorm.DB, auth, optional fiber.Handler) {
	authRoute.AuthRoutes(api, db, auth, optional)
}
