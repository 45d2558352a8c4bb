package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ParseIDParam membaca path param numerik (default "id").
func ParseIDParam(c *fiber.Ctx, name ...string) (uint, error) {
	key := "id"
	if len(name) > 0 && name[0] != "" {
		key = name[0]
	}
	raw := strings.TrimSpace(c.Params(key))
	if raw == "" {
		return 0, fiber.NewError(fiber.StatusBadRequest, key+" wajib diisi")
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, key+" tidak valid")
	}
	return uint(n), nil
}

// TrimPtr: nil kalau kosong setelah trim.
func TrimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// TrimPatch: trim tapi tetap simpan string kosong (untuk mengosongkan kolom).
func TrimPatch(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
