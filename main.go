package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"desa_digital_backend/internals/configs"
	database "desa_digital_backend/internals/databases"
	scheduler "desa_digital_backend/internals/features/users/auth/scheduler"
	uploadService "desa_digital_backend/internals/features/utils/uploads/service"
	middlewares "desa_digital_backend/internals/middlewares"
	routes "desa_digital_backend/internals/route"
	"desa_digital_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()
	if configs.JWTSecret == "" {
		log.Fatal("❌ JWT_SECRET wajib diset, server tidak dijalankan")
	}

	app := routes.NewApp()

	// ⚙️ middleware dasar + performa (gzip, etag)
	middlewares.SetupMiddlewares(app)

	// 🔌 DB connect + pool + migrasi
	database.ConnectDB()
	database.TunePool()
	if err := database.Migrate(database.DB); err != nil {
		log.Fatalf("❌ Migrasi gagal: %v", err)
	}

	if configs.GetEnvBool("RUN_SEEDS") {
		if err := seeds.RunAllSeeds(context.Background(), database.DB, configs.GetEnv("SEED_DIR", seeds.DefaultSeedDir)); err != nil {
			log.Fatalf("❌ Seed gagal: %v", err)
		}
	}

	// ⏱ scheduler setelah DB siap
	cleanup, err := scheduler.StartBlacklistCleanupScheduler(database.DB, configs.GetEnv("TOKEN_BLACKLIST_CLEANUP_CRON"))
	if err != nil {
		log.Fatalf("❌ Scheduler gagal: %v", err)
	}

	// 📦 storage upload (lokal / OSS)
	uploads := uploadService.NewUploadService(uploadService.NewStorageFromEnv(), configs.UploadMaxBytes)

	// ✅ Routes
	routes.SetupRoutes(app, database.DB, uploads)

	// 🔒 Keep-Alive & timeout koneksi server
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := configs.GetEnv("PORT", "3000")

	// Start server non-blocking
	go func() {
		log.Printf("✅ Listening on :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown + tutup pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 Shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	<-cleanup.Stop().Done()
	database.Close()
}
