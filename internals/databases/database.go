package database

import (
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"desa_digital_backend/internals/configs"
)

var DB *gorm.DB

// Dialector memilih driver dari DB_DRIVER (postgres default, mysql seperti skema asli).
func Dialector() (gorm.Dialector, error) {
	driver := strings.ToLower(configs.GetEnv("DB_DRIVER", "postgres"))
	user := configs.GetEnv("DB_USER", "postgres")
	pass := configs.GetEnv("DB_PASSWORD")
	host := configs.GetEnv("DB_HOST", "localhost")
	name := configs.GetEnv("DB_NAME", "desa_digital")

	switch driver {
	case "postgres", "postgresql", "pg":
		port := configs.GetEnv("DB_PORT", "5432")
		dsn := fmt.Sprintf(
			"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=desa_digital",
			url.QueryEscape(user), url.QueryEscape(pass), host, port, name,
			configs.GetEnv("DB_SSLMODE", "disable"),
		)
		return postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true, // 👍 cocok untuk PgBouncer (transaction pooling)
		}), nil
	case "mysql", "mariadb":
		port := configs.GetEnv("DB_PORT", "3306")
		dsn := fmt.Sprintf(
			"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
			user, pass, host, port, name,
		)
		return mysql.Open(dsn), nil
	default:
		return nil, fmt.Errorf("DB_DRIVER %q tidak didukung (postgres|mysql)", driver)
	}
}

func ConnectDB() {
	log.Println("🔌 Koneksi ke database...")

	dialector, err := Dialector()
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         configs.NewGormLogger(),
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}
	DB = db
	log.Printf("✅ DB connected (%s).", dialector.Name())
}

// TunePool: batas koneksi seperti pool asli (10 koneksi, antrean tak terbatas).
// database/sql memblokir acquire sampai ada koneksi bebas atau context request habis.
func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(configs.GetEnvInt("DB_MAX_OPEN_CONNS", 10))
	sqlDB.SetMaxIdleConns(configs.GetEnvInt("DB_MAX_IDLE_CONNS", 5))
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Ping dipakai health check.
func Ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func Close() {
	if DB == nil {
		return
	}
	if sqlDB, err := DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
