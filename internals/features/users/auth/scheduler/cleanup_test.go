package scheduler

import (
	"context"
	"testing"
	"time"

	authModel "desa_digital_backend/internals/features/users/auth/model"
	authRepo "desa_digital_backend/internals/features/users/auth/repository"
	"desa_digital_backend/internals/testutil"
)

func TestRunBlacklistCleanup(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	now := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

	if err := authRepo.BlacklistToken(ctx, db, "expired-token", now.Add(-time.Hour)); err != nil {
		t.Fatalf("BlacklistToken: %v", err)
	}
	if err := authRepo.BlacklistToken(ctx, db, "live-token", now.Add(time.Hour)); err != nil {
		t.Fatalf("BlacklistToken: %v", err)
	}

	n, err := RunBlacklistCleanup(ctx, db, now)
	if err != nil {
		t.Fatalf("RunBlacklistCleanup: %v", err)
	}
	if n != 1 {
		t.Fatalf("removed = %d, want 1", n)
	}

	var left []authModel.TokenBlacklist
	if err := db.Find(&left).Error; err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(left) != 1 || left[0].Token != "live-token" {
		t.Fatalf("remaining = %+v", left)
	}
	if ok, _ := authRepo.IsBlacklisted(ctx, db, "live-token"); !ok {
		t.Fatal("live token must stay blacklisted")
	}
}

func TestStartBlacklistCleanupSchedulerRejectsBadSpec(t *testing.T) {
	db := testutil.NewDB(t)
	if _, err := StartBlacklistCleanupScheduler(db, "bukan cron"); err == nil {
		t.Fatal("expected error for invalid spec")
	}

	c, err := StartBlacklistCleanupScheduler(db, "")
	if err != nil {
		t.Fatalf("default spec: %v", err)
	}
	if len(c.Entries()) != 1 {
		t.Fatalf("entries = %d, want 1", len(c.Entries()))
	}
	<-c.Stop().Done()
}
