package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"
	"strings"

	"gorm.io/gorm"

	"desa_digital_backend/internals/features/layanan/services/model"
)

type LayananSeed struct {
	Nama        string `json:"nama"`
	Deskripsi   string `json:"deskripsi"`
	Persyaratan string `json:"persyaratan"`
}

// SeedLayananFromJSON: hanya mengisi bila tabel layanan masih kosong.
func SeedLayananFromJSON(ctx context.Context, db *gorm.DB, filePath string) error {
	var n int64
	if err := db.WithContext(ctx).Model(&model.LayananModel{}).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		log.Println("ℹ️ Tabel layanan sudah berisi, seed dilewati.")
		return nil
	}

	file, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Printf("ℹ️ %s tidak ada, seed layanan dilewati.", filePath)
			return nil
		}
		return err
	}
	var inputs []LayananSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		return err
	}

	rows := make([]model.LayananModel, 0, len(inputs))
	for _, in := range inputs {
		if strings.TrimSpace(in.Nama) == "" {
			continue
		}
		rows = append(rows, model.LayananModel{
			Nama:        strings.TrimSpace(in.Nama),
			Deskripsi:   in.Deskripsi,
			Persyaratan: in.Persyaratan,
		})
	}
	if len(rows) == 0 {
		return nil
	}
	if err := db.WithContext(ctx).Create(&rows).Error; err != nil {
		return err
	}
	log.Printf("✅ %d layanan ditambahkan", len(rows))
	return nil
}
