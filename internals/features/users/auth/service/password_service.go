package service

import (
	"errors"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"desa_digital_backend/internals/configs"
)

// HashPassword memakai cost dari BCRYPT_COST (default 12).
func HashPassword(pw string) (string, error) {
	cost := configs.BcryptCost
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(pw), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckPasswordHash: nil bila cocok.
func CheckPasswordHash(hash, pw string) error {
	if hash == "" {
		return bcrypt.ErrMismatchedHashAndPassword
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw))
}

// hash dummy (cost sama dengan hash asli) agar email tak terdaftar
// tetap memakan waktu bcrypt yang sama
var (
	dummyOnce sync.Once
	dummyHash string
)

func burnPasswordCheck(pw string) {
	dummyOnce.Do(func() {
		dummyHash, _ = HashPassword("desa-digital-dummy-password")
	})
	_ = CheckPasswordHash(dummyHash, pw)
}

func isPasswordMismatch(err error) bool {
	return errors.Is(err, bcrypt.ErrMismatchedHashAndPassword)
}
