package seeds

import (
	"context"
	"log"
	"path/filepath"

	"gorm.io/gorm"

	settingsSeed "desa_digital_backend/internals/seeds/desa/settings"
	layananSeed "desa_digital_backend/internals/seeds/layanan/services"
	authSeed "desa_digital_backend/internals/seeds/users/auth"
)

const DefaultSeedDir = "internals/seeds/data"

// RunAllSeeds idempotent; dipanggil saat RUN_SEEDS=true.
func RunAllSeeds(ctx context.Context, db *gorm.DB, dir string) error {
	if dir == "" {
		dir = DefaultSeedDir
	}
	log.Printf("🌱 Menjalankan seed dari %s", dir)

	//* Desa
	if err := settingsSeed.SeedSettings(ctx, db); err != nil {
		return err
	}

	//* Admin
	if err := authSeed.SeedAdminsFromJSON(ctx, db, filepath.Join(dir, "admins.json")); err != nil {
		return err
	}

	//* Layanan
	return layananSeed.SeedLayananFromJSON(ctx, db, filepath.Join(dir, "layanan.json"))
}
