package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"desa_digital_backend/internals/features/layanan/services/model"
)

// ListServices: q dicari di nama & deskripsi (case-insensitive).
func ListServices(ctx context.Context, db *gorm.DB, q string) ([]model.LayananModel, error) {
	tx := db.WithContext(ctx).Model(&model.LayananModel{})
	if s := strings.ToLower(strings.TrimSpace(q)); s != "" {
		like := "%" + s + "%"
		tx = tx.Where("LOWER(nama) LIKE ? OR LOWER(deskripsi) LIKE ?", like, like)
	}
	rows := []model.LayananModel{}
	if err := tx.Order("nama ASC, id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func GetService(ctx context.Context, db *gorm.DB, id uint) (*model.LayananModel, error) {
	var l model.LayananModel
	if err := db.WithContext(ctx).First(&l, id).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func CreateService(ctx context.Context, db *gorm.DB, l *model.LayananModel) error {
	return db.WithContext(ctx).Create(l).Error
}

func UpdateService(ctx context.Context, db *gorm.DB, id uint, updates map[string]any) (*model.LayananModel, error) {
	var out model.LayananModel
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&out, id).Error; err != nil {
			return err
		}
		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&out).Updates(updates).Error; err != nil {
			return err
		}
		return tx.First(&out, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteService: pengajuan terkait ikut terhapus lewat FK ON DELETE CASCADE.
func DeleteService(ctx context.Context, db *gorm.DB, id uint) error {
	res := db.WithContext(ctx).Delete(&model.LayananModel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
