package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	authRepo "desa_digital_backend/internals/features/users/auth/repository"
	"desa_digital_backend/internals/middlewares/metrics"
)

// DefaultCleanupSpec: tiap jam di menit ke-15.
const DefaultCleanupSpec = "15 * * * *"

// RunBlacklistCleanup menghapus token blacklist yang sudah kedaluwarsa.
func RunBlacklistCleanup(ctx context.Context, db *gorm.DB, now time.Time) (int64, error) {
	log.Println("[CLEANUP] Menjalankan pembersihan token_blacklist...")
	n, err := authRepo.CleanupExpiredBlacklist(ctx, db, now)
	if err != nil {
		metrics.ObserveBlacklistCleanup("error")
		log.Printf("[CLEANUP ERROR] Gagal hapus token: %v", err)
		return 0, err
	}
	metrics.ObserveBlacklistCleanup("ok")
	if n > 0 {
		log.Printf("[CLEANUP] %d token kadaluarsa dihapus", n)
	}
	return n, nil
}

// StartBlacklistCleanupScheduler menjadwalkan pembersihan dengan cron; pemanggil wajib Stop().
func StartBlacklistCleanupScheduler(db *gorm.DB, spec string) (*cron.Cron, error) {
	if spec == "" {
		spec = DefaultCleanupSpec
	}
	c := cron.New(cron.WithLocation(time.UTC))
	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		_, _ = RunBlacklistCleanup(ctx, db, time.Now())
	})
	if err != nil {
		return nil, err
	}
	c.Start()
	log.Printf("[INFO] ⏰ cleanup token_blacklist terjadwal (%s)", spec)
	return c, nil
}
