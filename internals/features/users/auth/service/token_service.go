package service

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"desa_digital_backend/internals/configs"
	authModel "desa_digital_backend/internals/features/users/auth/model"
)

var (
	ErrInvalidToken = errors.New("token tidak valid")
	ErrTokenExpired = errors.New("sesi sudah berakhir, silakan login ulang")
)

// toleransi jam server yang sedikit berbeda
const clockSkew = time.Minute

// SessionClaims: {id, email, nama, iat, exp}.
type SessionClaims struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Nama  string `json:"nama"`
	jwt.RegisteredClaims
}

// IssueToken membuat JWT HS256 dengan exp = iat + SessionTTL.
func IssueToken(secret string, admin authModel.AdminModel, now time.Time) (string, error) {
	if strings.TrimSpace(secret) == "" {
		return "", errors.New("JWT_SECRET belum diset")
	}
	now = now.UTC().Truncate(time.Second)
	claims := SessionClaims{
		ID:    admin.ID,
		Email: admin.Email,
		Nama:  admin.Nama,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(configs.SessionTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseToken memverifikasi tanda tangan (HS256 saja), lalu sah bila now - iat < SessionTTL.
// Waktu dicek manual terhadap `now` agar bisa diuji deterministik.
func ParseToken(secret, raw string, now time.Time) (*SessionClaims, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || secret == "" {
		return nil, ErrInvalidToken
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	var claims SessionClaims
	tok, err := parser.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return nil, ErrInvalidToken
	}
	if claims.ID == 0 || claims.IssuedAt == nil {
		return nil, ErrInvalidToken
	}

	iat := claims.IssuedAt.Time
	if iat.After(now.Add(clockSkew)) {
		return nil, ErrInvalidToken
	}
	if now.Sub(iat) >= configs.SessionTTL {
		return nil, ErrTokenExpired
	}
	return &claims, nil
}

// SessionExpiry: batas blacklist untuk token ini (iat + SessionTTL).
func (c *SessionClaims) SessionExpiry() time.Time {
	if c == nil || c.IssuedAt == nil {
		return time.Now().Add(configs.SessionTTL)
	}
	return c.IssuedAt.Time.Add(configs.SessionTTL)
}
