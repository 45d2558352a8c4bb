package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"desa_digital_backend/internals/features/publikasi/news/model"
	helper "desa_digital_backend/internals/helpers"
)

var (
	ErrSlugTaken = errors.New("slug berita sudah dipakai")
	ErrEmptySlug = errors.New("judul harus mengandung huruf atau angka")
)

// NewsFilter: Status "" berarti semua status.
type NewsFilter struct {
	Status string
	Q      string
}

func ListNews(ctx context.Context, db *gorm.DB, f NewsFilter, p helper.Paging) ([]model.NewsModel, helper.Pagination, error) {
	q := db.WithContext(ctx).Model(&model.NewsModel{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if s := strings.TrimSpace(f.Q); s != "" {
		q = q.Where("LOWER(judul) LIKE ?", "%"+strings.ToLower(s)+"%")
	}
	return helper.Paginate[model.NewsModel](q, p, "tanggal DESC, id DESC")
}

// GetNewsBySlug: includeDraft=false hanya mengembalikan berita published.
func GetNewsBySlug(ctx context.Context, db *gorm.DB, slug string, includeDraft bool) (*model.NewsModel, error) {
	q := db.WithContext(ctx).Where("slug = ?", slug)
	if !includeDraft {
		q = q.Where("status = ?", model.NewsStatusPublished)
	}
	var n model.NewsModel
	if err := q.First(&n).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

func GetNewsByID(ctx context.Context, db *gorm.DB, id uint) (*model.NewsModel, error) {
	var n model.NewsModel
	if err := db.WithContext(ctx).First(&n, id).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

// CreateNews mengisi slug dari judul. Slug bentrok → ErrSlugTaken (unique index).
func CreateNews(ctx context.Context, db *gorm.DB, n *model.NewsModel) error {
	n.Slug = helper.GenerateSlug(n.Judul)
	if n.Slug == "" {
		return ErrEmptySlug
	}
	if n.Status == "" {
		n.Status = model.NewsStatusDraft
	}
	if err := db.WithContext(ctx).Create(n).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return ErrSlugTaken
		}
		return err
	}
	return nil
}

// UpdateNews: partial. Judul berubah → slug ikut dibuat ulang.
func UpdateNews(ctx context.Context, db *gorm.DB, id uint, updates map[string]any) (*model.NewsModel, error) {
	if judul, ok := updates["judul"].(string); ok {
		slug := helper.GenerateSlug(judul)
		if slug == "" {
			return nil, ErrEmptySlug
		}
		updates["slug"] = slug
	}

	var out model.NewsModel
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&out, id).Error; err != nil {
			return err
		}
		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&out).Updates(updates).Error; err != nil {
			if helper.IsDuplicateKey(err) {
				return ErrSlugTaken
			}
			return err
		}
		return tx.First(&out, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func DeleteNews(ctx context.Context, db *gorm.DB, id uint) error {
	res := db.WithContext(ctx).Delete(&model.NewsModel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
