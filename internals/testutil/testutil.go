// Package testutil menyiapkan database SQLite in-memory dengan skema produksi.
package testutil

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"desa_digital_backend/internals/configs"
	database "desa_digital_backend/internals/databases"
)

const JWTSecret = "desa-digital-test-secret"

var dbSeq atomic.Int64

// NewDB: database terisolasi per test (nama unik, foreign key aktif).
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared&_pragma=foreign_keys(1)", name, dbSeq.Add(1))

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	// satu koneksi: database in-memory hidup selama koneksi ini
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// UseTestConfig memasang secret & cost bcrypt murah, dikembalikan saat test selesai.
func UseTestConfig(t testing.TB) {
	t.Helper()
	prevSecret, prevCost := configs.JWTSecret, configs.BcryptCost
	configs.JWTSecret = JWTSecret
	configs.BcryptCost = bcrypt.MinCost
	t.Cleanup(func() {
		configs.JWTSecret = prevSecret
		configs.BcryptCost = prevCost
	})
}

// MustCreate menyimpan fixture atau menggagalkan test.
func MustCreate(t testing.TB, db *gorm.DB, v any) {
	t.Helper()
	if err := db.Create(v).Error; err != nil {
		t.Fatalf("create fixture %T: %v", v, err)
	}
}
