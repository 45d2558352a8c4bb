package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"desa_digital_backend/internals/features/publikasi/galleries/model"
	helper "desa_digital_backend/internals/helpers"
)

// ListGalleries: kategori kosong = semua kategori.
func ListGalleries(ctx context.Context, db *gorm.DB, kategori string, p helper.Paging) ([]model.GalleryModel, helper.Pagination, error) {
	q := db.WithContext(ctx).Model(&model.GalleryModel{})
	if k := strings.TrimSpace(kategori); k != "" {
		q = q.Where("kategori = ?", k)
	}
	return helper.Paginate[model.GalleryModel](q, p, "tanggal DESC, id DESC")
}

// ListGalleryCategories: kategori distinct yang tidak kosong, urut abjad.
func ListGalleryCategories(ctx context.Context, db *gorm.DB) ([]string, error) {
	out := []string{}
	err := db.WithContext(ctx).
		Model(&model.GalleryModel{}).
		Where("kategori IS NOT NULL AND kategori <> ''").
		Distinct().
		Order("kategori ASC").
		Pluck("kategori", &out).Error
	return out, err
}

func GetGallery(ctx context.Context, db *gorm.DB, id uint) (*model.GalleryModel, error) {
	var g model.GalleryModel
	if err := db.WithContext(ctx).First(&g, id).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func CreateGallery(ctx context.Context, db *gorm.DB, g *model.GalleryModel) error {
	return db.WithContext(ctx).Create(g).Error
}

func UpdateGallery(ctx context.Context, db *gorm.DB, id uint, updates map[string]any) (*model.GalleryModel, error) {
	var out model.GalleryModel
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

func DeleteGallery(ctx context.Context, db *gorm.DB, id uint) error {
	res := db.WithContext(ctx).Delete(&model.GalleryModel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
