package database

import (
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	settingsModel "desa_digital_backend/internals/features/desa/settings/model"
	layananModel "desa_digital_backend/internals/features/layanan/services/model"
	pengajuanModel "desa_digital_backend/internals/features/layanan/submissions/model"
	organisasiModel "desa_digital_backend/internals/features/lembaga/organisasi/model"
	dokumenModel "desa_digital_backend/internals/features/publikasi/documents/model"
	eventModel "desa_digital_backend/internals/features/publikasi/events/model"
	galleryModel "desa_digital_backend/internals/features/publikasi/galleries/model"
	newsModel "desa_digital_backend/internals/features/publikasi/news/model"
	authModel "desa_digital_backend/internals/features/users/auth/model"
)

// Models: urutan penting untuk foreign key (layanan sebelum pengajuan_layanan).
func Models() []any {
	return []any{
		&settingsModel.DesaSettingsModel{},
		&newsModel.NewsModel{},
		&galleryModel.GalleryModel{},
		&eventModel.EventModel{},
		&organisasiModel.OrganisasiModel{},
		&layananModel.LayananModel{},
		&pengajuanModel.PengajuanLayananModel{},
		&dokumenModel.DokumenModel{},
		&authModel.AdminModel{},
		&authModel.TokenBlacklist{},
	}
}

// Migrate membuat tabel + index bila belum ada (idempotent), lalu memastikan
// baris tunggal desa_settings tersedia.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return err
	}

	def := settingsModel.DefaultSettings()
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&def).Error; err != nil {
		return err
	}
	log.Println("✅ Semua tabel siap")
	return nil
}
