package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	helper "desa_digital_backend/internals/helpers"
)

func newIPLimiter(max int, window time.Duration, message string) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return helper.JsonError(c, fiber.StatusTooManyRequests, message)
		},
	})
}

// Global limiter: untuk semua endpoint biasa
func GlobalRateLimiter() fiber.Handler {
	return newIPLimiter(100, time.Minute, "❌ Terlalu banyak permintaan. Silakan coba lagi nanti.")
}

// Rate limiter untuk login route (lebih ketat)
func LoginRateLimiter() fiber.Handler {
	return newIPLimiter(5, time.Minute, "❌ Terlalu banyak percobaan login. Coba beberapa saat lagi.")
}

// Rate limiter untuk register route
func RegisterRateLimiter() fiber.Handler {
	return newIPLimiter(3, 5*time.Minute, "❌ Terlalu banyak percobaan pendaftaran. Tunggu beberapa menit ya.")
}

// Rate limiter untuk form pengajuan layanan publik
func SubmissionRateLimiter() fiber.Handler {
	return newIPLimiter(10, 10*time.Minute, "❌ Terlalu banyak pengajuan dari alamat ini. Coba lagi nanti.")
}
