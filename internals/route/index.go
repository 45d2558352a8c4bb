// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	uploadService "desa_digital_backend/internals/features/utils/uploads/service"
	authMiddleware "desa_digital_backend/internals/middlewares/auth"
	routeDetails "desa_digital_backend/internals/route/details"
)

var startTime = time.Now()

// SetupRoutes: semua endpoint di bawah /api. Prefix dipakai bersama publik & admin,
// jadi AuthJWT dipasang per-route, bukan di Group.
func SetupRoutes(app *fiber.App, db *gorm.DB, uploads *uploadService.UploadService) {
	startTime = time.Now()

	BaseRoutes(app, db)

	api := app.Group("/api")
	auth := authMiddleware.AuthJWT(db)
	optional := authMiddleware.OptionalAuth(db)

	log.Println("[INFO] Mounting Auth routes...")
	routeDetails.AuthRoutes(api, db, auth, optional)

	log.Println("[INFO] Mounting Desa routes...")
	routeDetails.DesaPublicRoutes(api, db)
	routeDetails.DesaAdminRoutes(api, db, auth)

	log.Println("[INFO] Mounting Publikasi routes...")
	routeDetails.PublikasiPublicRoutes(api, db, optional)
	routeDetails.PublikasiAdminRoutes(api, db, auth)

	log.Println("[INFO] Mounting Lembaga routes...")
	routeDetails.LembagaPublicRoutes(api, db)
	routeDetails.LembagaAdminRoutes(api, db, auth)

	log.Println("[INFO] Mounting Layanan routes...")
	routeDetails.LayananPublicRoutes(api, db)
	routeDetails.LayananAdminRoutes(api, db, auth)

	log.Println("[INFO] Mounting Home routes...")
	routeDetails.HomeAdminRoutes(api, db, auth)

	log.Println("[INFO] Mounting Utils routes...")
	routeDetails.UtilsRoutes(app, api, uploads, auth)
}
