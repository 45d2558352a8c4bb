package repository

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	authModel "desa_digital_backend/internals/features/users/auth/model"
)

/* ====================== ADMIN ====================== */

func FindAdminByEmail(ctx context.Context, db *gorm.DB, email string) (*authModel.AdminModel, error) {
	var a authModel.AdminModel
	if err := db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func FindAdminByID(ctx context.Context, db *gorm.DB, id uint) (*authModel.AdminModel, error) {
	var a authModel.AdminModel
	if err := db.WithContext(ctx).First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func CreateAdmin(ctx context.Context, db *gorm.DB, a *authModel.AdminModel) error {
	a.Email = strings.ToLower(strings.TrimSpace(a.Email))
	return db.WithContext(ctx).Create(a).Error
}

func CountAdmins(ctx context.Context, db *gorm.DB) (int64, error) {
	var n int64
	err := db.WithContext(ctx).Model(&authModel.AdminModel{}).Count(&n).Error
	return n, err
}

/* ====================== TOKEN BLACKLIST ====================== */

// BlacklistToken idempotent: token yang sama tidak dobel.
func BlacklistToken(ctx context.Context, db *gorm.DB, token string, expiredAt time.Time) error {
	row := authModel.TokenBlacklist{Token: token, ExpiredAt: expiredAt.UTC()}
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "token"}}, DoNothing: true}).
		Create(&row).Error
}

func IsBlacklisted(ctx context.Context, db *gorm.DB, token string) (bool, error) {
	var n int64
	err := db.WithContext(ctx).
		Model(&authModel.TokenBlacklist{}).
		Where("token = ?", token).
		Limit(1).
		Count(&n).Error
	return n > 0, err
}

// CleanupExpiredBlacklist menghapus entri yang masa berlaku tokennya sudah lewat.
func CleanupExpiredBlacklist(ctx context.Context, db *gorm.DB, now time.Time) (int64, error) {
	res := db.WithContext(ctx).
		Where("expired_at < ?", now.UTC()).
		Delete(&authModel.TokenBlacklist{})
	return res.RowsAffected, res.Error
}
