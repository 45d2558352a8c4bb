package helper

import (
	"errors"
	"strings"

	mysqlDriver "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// IsDuplicateKey: pelanggaran unique di Postgres (23505), MySQL (1062),
// atau SQLite (pesan "UNIQUE constraint failed").
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	var myErr *mysqlDriver.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == 1062
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "23505")
}

// IsForeignKeyViolation: referensi ke baris yang tidak ada.
func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	var myErr *mysqlDriver.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == 1452
	}
	return strings.Contains(strings.ToLower(err.Error()), "foreign key constraint")
}
