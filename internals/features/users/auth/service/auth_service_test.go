package service

import (
	"context"
	"errors"
	"testing"
	"time"

	authRepo "desa_digital_backend/internals/features/users/auth/repository"
	"desa_digital_backend/internals/testutil"
)

func TestLogin(t *testing.T) {
	testutil.UseTestConfig(t)
	db := testutil.NewDB(t)
	ctx := context.Background()

	if _, err := Register(ctx, db, "Admin Desa", "admin@desa.id", "rahasia123", false); err != nil {
		t.Fatalf("Register: %v", err)
	}

	now := time.Now()
	res, err := Login(ctx, db, testutil.JWTSecret, "ADMIN@desa.id", "rahasia123", now)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if res.Token == "" || res.Admin.Email != "admin@desa.id" {
		t.Fatalf("unexpected result %+v", res)
	}
	if res.ExpiresAt.Sub(now) > 24*time.Hour+time.Second {
		t.Fatalf("expiry too far: %s", res.ExpiresAt)
	}

	tests := []struct {
		name, email, password string
	}{
		{"wrong password", "admin@desa.id", "salah12345"},
		{"unknown email", "lain@desa.id", "rahasia123"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Login(ctx, db, testutil.JWTSecret, tt.email, tt.password, now); !errors.Is(err, ErrInvalidCredentials) {
				t.Fatalf("err = %v, want ErrInvalidCredentials", err)
			}
		})
	}
}

func TestRegisterBootstrapOnly(t *testing.T) {
	testutil.UseTestConfig(t)
	db := testutil.NewDB(t)
	ctx := context.Background()

	first, err := Register(ctx, db, "Pertama", "satu@desa.id", "rahasia123", false)
	if err != nil {
		t.Fatalf("bootstrap register: %v", err)
	}
	if first.Password == "rahasia123" {
		t.Fatal("password stored in plain text")
	}

	if _, err := Register(ctx, db, "Kedua", "dua@desa.id", "rahasia123", false); !errors.Is(err, ErrRegistrationClosed) {
		t.Fatalf("anonymous register after bootstrap: err = %v", err)
	}
	if _, err := Register(ctx, db, "Kedua", "dua@desa.id", "rahasia123", true); err != nil {
		t.Fatalf("register by admin: %v", err)
	}
	if _, err := Register(ctx, db, "Duplikat", "dua@desa.id", "rahasia123", true); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("duplicate email: err = %v", err)
	}
}

func TestLogoutRevokesToken(t *testing.T) {
	testutil.UseTestConfig(t)
	db := testutil.NewDB(t)
	ctx := context.Background()

	if _, err := Register(ctx, db, "Admin", "admin@desa.id", "rahasia123", false); err != nil {
		t.Fatalf("Register: %v", err)
	}
	now := time.Now()
	res, err := Login(ctx, db, testutil.JWTSecret, "admin@desa.id", "rahasia123", now)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if _, _, err := Authenticate(ctx, db, testutil.JWTSecret, res.Token, now); err != nil {
		t.Fatalf("Authenticate before logout: %v", err)
	}
	if err := Logout(ctx, db, testutil.JWTSecret, res.Token, now); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	// logout kedua idempotent
	if err := Logout(ctx, db, testutil.JWTSecret, res.Token, now); err != nil {
		t.Fatalf("second Logout: %v", err)
	}
	_, _, err = Authenticate(ctx, db, testutil.JWTSecret, res.Token, now)
	if !errors.Is(err, ErrTokenRevoked) || !IsUnauthorized(err) {
		t.Fatalf("after logout: err = %v", err)
	}

	removed, err := authRepo.CleanupExpiredBlacklist(ctx, db, now.Add(48*time.Hour))
	if err != nil {
		t.Fatalf("CleanupExpiredBlacklist: %v", err)
	}
	if removed != 1 {
		t.Fatalf("removed = %d, want 1", removed)
	}
}
