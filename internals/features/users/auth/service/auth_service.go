package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"

	authModel "desa_digital_backend/internals/features/users/auth/model"
	authRepo "desa_digital_backend/internals/features/users/auth/repository"
	helper "desa_digital_backend/internals/helpers"
)

var (
	ErrInvalidCredentials = errors.New("email atau password salah")
	ErrEmailTaken         = errors.New("email sudah terdaftar")
	ErrRegistrationClosed = errors.New("registrasi hanya untuk admin yang sudah login")
	ErrTokenRevoked       = errors.New("token sudah logout")
	ErrAdminGone          = errors.New("admin tidak ditemukan")
)

type LoginResult struct {
	Admin     authModel.AdminModel
	Token     string
	ExpiresAt time.Time
}

/* ==========================
   LOGIN
========================== */

// Login: email tak terdaftar & password salah menghasilkan error yang sama.
func Login(ctx context.Context, db *gorm.DB, secret, email, password string, now time.Time) (*LoginResult, error) {
	admin, err := authRepo.FindAdminByEmail(ctx, db, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			burnPasswordCheck(password)
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := CheckPasswordHash(admin.Password, password); err != nil {
		if isPasswordMismatch(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	token, err := IssueToken(secret, *admin, now)
	if err != nil {
		return nil, err
	}
	claims, err := ParseToken(secret, token, now)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Admin: *admin, Token: token, ExpiresAt: claims.SessionExpiry()}, nil
}

/* ==========================
   REGISTER
========================== */

// Register: terbuka selama belum ada admin (bootstrap); setelahnya butuh sesi admin.
func Register(ctx context.Context, db *gorm.DB, nama, email, password string, byAdmin bool) (*authModel.AdminModel, error) {
	if !byAdmin {
		n, err := authRepo.CountAdmins(ctx, db)
		if err != nil {
			return nil, err
		}
		if n > 0 {
			return nil, ErrRegistrationClosed
		}
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}
	admin := &authModel.AdminModel{
		Nama:     strings.TrimSpace(nama),
		Email:    email,
		Password: hash,
	}
	if err := authRepo.CreateAdmin(ctx, db, admin); err != nil {
		if helper.IsDuplicateKey(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	log.Printf("[INFO] 👤 admin baru terdaftar: %s", admin.Email)
	return admin, nil
}

/* ==========================
   SESSION
========================== */

// Authenticate dipakai middleware: tanda tangan, umur sesi, blacklist, lalu admin masih ada.
func Authenticate(ctx context.Context, db *gorm.DB, secret, raw string, now time.Time) (*authModel.AdminModel, *SessionClaims, error) {
	claims, err := ParseToken(secret, raw, now)
	if err != nil {
		return nil, nil, err
	}
	revoked, err := authRepo.IsBlacklisted(ctx, db, raw)
	if err != nil {
		return nil, nil, err
	}
	if revoked {
		return nil, nil, ErrTokenRevoked
	}
	admin, err := authRepo.FindAdminByID(ctx, db, claims.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrAdminGone
		}
		return nil, nil, err
	}
	return admin, claims, nil
}

// Logout menyimpan token ke blacklist sampai masa berlakunya habis.
func Logout(ctx context.Context, db *gorm.DB, secret, raw string, now time.Time) error {
	claims, err := ParseToken(secret, raw, now)
	if err != nil {
		// token sudah tidak berlaku: tidak perlu disimpan
		return nil
	}
	return authRepo.BlacklistToken(ctx, db, raw, claims.SessionExpiry())
}

// IsUnauthorized: error yang harus dijawab 401.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrTokenExpired) ||
		errors.Is(err, ErrTokenRevoked) ||
		errors.Is(err, ErrAdminGone)
}
