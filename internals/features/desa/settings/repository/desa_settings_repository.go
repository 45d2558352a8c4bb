package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"desa_digital_backend/internals/features/desa/settings/model"
)

// GetSettings mengembalikan baris tunggal; dibuat dengan nilai default bila belum ada.
func GetSettings(ctx context.Context, db *gorm.DB) (*model.DesaSettingsModel, error) {
	s := model.DefaultSettings()
	if err := db.WithContext(ctx).
		Where("id = ?", model.SettingsSingletonID).
		Attrs(s).
		FirstOrCreate(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// UpdateSettings: upsert + merge. Kolom yang tidak ada di updates tidak disentuh.
func UpdateSettings(ctx context.Context, db *gorm.DB, updates map[string]any) (*model.DesaSettingsModel, error) {
	var out model.DesaSettingsModel
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		def := model.DefaultSettings()
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&def).Error; err != nil {
			return err
		}
		if len(updates) > 0 {
			if err := tx.Model(&model.DesaSettingsModel{}).
				Where("id = ?", model.SettingsSingletonID).
				Updates(updates).Error; err != nil {
				return err
			}
		}
		return tx.First(&out, model.SettingsSingletonID).Error
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
