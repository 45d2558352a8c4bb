package repository

import (
	"context"

	"gorm.io/gorm"

	pengajuanModel "desa_digital_backend/internals/features/layanan/submissions/model"
	dokumenModel "desa_digital_backend/internals/features/publikasi/documents/model"
	eventModel "desa_digital_backend/internals/features/publikasi/events/model"
	galleryModel "desa_digital_backend/internals/features/publikasi/galleries/model"
	newsModel "desa_digital_backend/internals/features/publikasi/news/model"
)

type Statistics struct {
	News        int64 `json:"news"`
	Gallery     int64 `json:"gallery"`
	Events      int64 `json:"events"`
	Submissions int64 `json:"submissions"`
	Documents   int64 `json:"documents"`
}

// GetStatistics: lima COUNT(*) terpisah, tanpa join & tanpa cache.
func GetStatistics(ctx context.Context, db *gorm.DB) (*Statistics, error) {
	var s Statistics
	counts := []struct {
		model any
		dst   *int64
	}{
		{&newsModel.NewsModel{}, &s.News},
		{&galleryModel.GalleryModel{}, &s.Gallery},
		{&eventModel.EventModel{}, &s.Events},
		{&pengajuanModel.PengajuanLayananModel{}, &s.Submissions},
		{&dokumenModel.DokumenModel{}, &s.Documents},
	}
	for _, c := range counts {
		if err := db.WithContext(ctx).Model(c.model).Count(c.dst).Error; err != nil {
			return nil, err
		}
	}
	return &s, nil
}
