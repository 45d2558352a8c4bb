package settings

import (
	"context"
	"log"

	"gorm.io/gorm"

	"desa_digital_backend/internals/features/desa/settings/repository"
)

// SeedSettings memastikan baris tunggal desa_settings ada.
func SeedSettings(ctx context.Context, db *gorm.DB) error {
	s, err := repository.GetSettings(ctx, db)
	if err != nil {
		return err
	}
	log.Printf("✅ Pengaturan desa siap (%s)", s.NamaDesa)
	return nil
}
