package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"desa_digital_backend/internals/features/publikasi/documents/model"
	helper "desa_digital_backend/internals/helpers"
)

func ListDocuments(ctx context.Context, db *gorm.DB, kategori string, p helper.Paging) ([]model.DokumenModel, helper.Pagination, error) {
	q := db.WithContext(ctx).Model(&model.DokumenModel{})
	if k := strings.TrimSpace(kategori); k != "" {
		q = q.Where("kategori = ?", k)
	}
	return helper.Paginate[model.DokumenModel](q, p, "created_at DESC, id DESC")
}

func CreateDocument(ctx context.Context, db *gorm.DB, d *model.DokumenModel) error {
	return db.WithContext(ctx).Create(d).Error
}

func UpdateDocument(ctx context.Context, db *gorm.DB, id uint, updates map[string]any) (*model.DokumenModel, error) {
	var out model.DokumenModel
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

func DeleteDocument(ctx context.Context, db *gorm.DB, id uint) error {
	res := db.WithContext(ctx).Delete(&model.DokumenModel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
