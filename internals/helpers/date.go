package helper

import (
	"errors"
	"strings"
	"time"

	"gorm.io/datatypes"

	"desa_digital_backend/internals/helpers/dbtime"
)

var ErrInvalidDate = errors.New("tanggal harus berformat YYYY-MM-DD")

// ParseDate untuk kolom DATE: "2006-01-02" atau RFC3339 (dipotong ke awal hari, zona desa).
func ParseDate(s string) (datatypes.Date, error) {
	s = strings.TrimSpace(s)
	if t, err := time.ParseInLocation("2006-01-02", s, dbtime.Location()); err == nil {
		return datatypes.Date(t), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return datatypes.Date{}, ErrInvalidDate
	}
	return datatypes.Date(dbtime.StartOfDay(t)), nil
}

// ParseDateTime untuk kolom timestamp: RFC3339, "2006-01-02T15:04", "2006-01-02 15:04" atau
// tanggal saja. Tanpa offset → dianggap zona desa.
func ParseDateTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	for _, layout := range []string{"2006-01-02T15:04:05", "2006-01-02T15:04", "2006-01-02 15:04:05", "2006-01-02 15:04", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, s, dbtime.Location()); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New("tanggal harus berformat RFC3339 atau YYYY-MM-DD HH:MM")
}

// TodayDate: hari ini (zona desa) sebagai datatypes.Date.
func TodayDate() datatypes.Date {
	return datatypes.Date(dbtime.StartOfDay(dbtime.NowInDesa()))
}
