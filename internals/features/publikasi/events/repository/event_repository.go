package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"desa_digital_backend/internals/features/publikasi/events/model"
)

const (
	WhenAll      = ""
	WhenUpcoming = "upcoming"
	WhenPast     = "past"
)

var ErrInvalidWhen = errors.New("when harus upcoming atau past")

// ListEvents: upcoming urut naik (terdekat dulu), past & semua urut turun.
func ListEvents(ctx context.Context, db *gorm.DB, when string, now time.Time) ([]model.EventModel, error) {
	q := db.WithContext(ctx).Model(&model.EventModel{})
	switch when {
	case WhenAll:
		q = q.Order("tanggal DESC, id DESC")
	case WhenUpcoming:
		q = q.Where("tanggal >= ?", now.UTC()).Order("tanggal ASC, id ASC")
	case WhenPast:
		q = q.Where("tanggal < ?", now.UTC()).Order("tanggal DESC, id DESC")
	default:
		return nil, ErrInvalidWhen
	}
	rows := []model.EventModel{}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func GetEvent(ctx context.Context, db *gorm.DB, id uint) (*model.EventModel, error) {
	var e model.EventModel
	if err := db.WithContext(ctx).First(&e, id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func CreateEvent(ctx context.Context, db *gorm.DB, e *model.EventModel) error {
	return db.WithContext(ctx).Create(e).Error
}

func UpdateEvent(ctx context.Context, db *gorm.DB, id uint, updates map[string]any) (*model.EventModel, error) {
	var out model.EventModel
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

func DeleteEvent(ctx context.Context, db *gorm.DB, id uint) error {
	res := db.WithContext(ctx).Delete(&model.EventModel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
