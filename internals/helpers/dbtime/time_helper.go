// file: internals/helpers/dbtime/time_helper.go
package dbtime

import (
	"sync"
	"time"

	"desa_digital_backend/internals/configs"
)

var (
	locOnce sync.Once
	desaLoc *time.Location
)

// Location mengembalikan zona waktu desa:
// 1) DESA_TIMEZONE dari env
// 2) Fallback: Asia/Jakarta
// 3) Fallback terakhir: WIB tetap (UTC+7)
func Location() *time.Location {
	locOnce.Do(func() {
		name := configs.GetEnv("DESA_TIMEZONE", "Asia/Jakarta")
		if loc, err := time.LoadLocation(name); err == nil {
			desaLoc = loc
			return
		}
		desaLoc = time.FixedZone("WIB", 7*60*60)
	})
	return desaLoc
}

// NowInDesa: "sekarang" di zona waktu desa.
func NowInDesa() time.Time {
	return time.Now().In(Location())
}

// ToDesaTime mengonversi waktu (biasanya dari DB = UTC) ke zona desa.
// Kalau t.IsZero() → dikembalikan apa adanya.
func ToDesaTime(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.In(Location())
}

// StartOfDay memotong jam pada zona desa (untuk kolom DATE).
func StartOfDay(t time.Time) time.Time {
	t = t.In(Location())
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, Location())
}
