package auth

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"

	"gorm.io/gorm"

	authRepo "desa_digital_backend/internals/features/users/auth/repository"
	authService "desa_digital_backend/internals/features/users/auth/service"
	helper "desa_digital_backend/internals/helpers"
)

type AdminSeed struct {
	Nama     string `json:"nama"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SeedAdminsFromJSON: file tidak ada → dilewati; email yang sudah ada → dilewati.
func SeedAdminsFromJSON(ctx context.Context, db *gorm.DB, filePath string) error {
	log.Println("📥 Membaca file admin:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Printf("ℹ️ %s tidak ada, seed admin dilewati.", filePath)
			return nil
		}
		return err
	}

	var inputs []AdminSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		return err
	}

	for _, data := range inputs {
		if _, err := authRepo.FindAdminByEmail(ctx, db, data.Email); err == nil {
			log.Printf("ℹ️ Admin dengan email '%s' sudah ada, dilewati.", data.Email)
			continue
		}
		if len(data.Password) < 8 {
			log.Printf("❌ Password admin '%s' kurang dari 8 karakter, dilewati.", data.Email)
			continue
		}

		// 🔐 Hash password sebelum disimpan
		if _, err := authService.Register(ctx, db, data.Nama, data.Email, data.Password, true); err != nil {
			if helper.IsDuplicateKey(err) || errors.Is(err, authService.ErrEmailTaken) {
				continue
			}
			log.Printf("❌ Gagal insert admin '%s': %v", data.Email, err)
			continue
		}
		log.Printf("✅ Berhasil insert admin '%s'", data.Email)
	}
	return nil
}
