// helpers/token.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Locals yang diisi middleware AuthJWT
const (
	LocRawToken   = "raw_token"
	LocAdminID    = "admin_id"
	LocAdminEmail = "admin_email"
	LocAdminName  = "admin_nama"
)

// GetRawAccessToken mengembalikan access token dari:
// 1) Locals("raw_token") yang diset middleware
// 2) Authorization header "Bearer <token>" (case-insensitive, toleran spasi ganda)
func GetRawAccessToken(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocRawToken).(string); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	fields := strings.Fields(c.Get(fiber.HeaderAuthorization))
	if len(fields) < 2 || !strings.EqualFold(fields[0], "Bearer") {
		return ""
	}
	return strings.Trim(strings.TrimSpace(fields[1]), "\"'")
}

func SetRawAccessToken(c *fiber.Ctx, raw string) {
	if strings.TrimSpace(raw) != "" {
		c.Locals(LocRawToken, strings.TrimSpace(raw))
	}
}

// GetAdminIDFromToken: 401 kalau request belum melewati AuthJWT.
func GetAdminIDFromToken(c *fiber.Ctx) (uint, error) {
	id, ok := c.Locals(LocAdminID).(uint)
	if !ok || id == 0 {
		return 0, fiber.NewError(fiber.StatusUnauthorized, "Admin belum login")
	}
	return id, nil
}

// IsAdmin: true bila token valid sudah dipasang oleh AuthJWT / OptionalAuth.
func IsAdmin(c *fiber.Ctx) bool {
	_, err := GetAdminIDFromToken(c)
	return err == nil
}
