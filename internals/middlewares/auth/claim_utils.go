// internals/middlewares/auth/claim_utils.go
package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
)

var (
	errNoToken     = errors.New("unauthorized - No token provided")
	errTokenFormat = errors.New("unauthorized - Invalid token format")
	errEmptyToken  = errors.New("unauthorized - Empty token")
)

// extractBearerToken: toleransi spasi ganda, "bearer" case-insensitive, kutip dibuang.
func extractBearerToken(c *fiber.Ctx) (string, error) {
	auth := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if auth == "" {
		return "", errNoToken
	}

	fields := strings.Fields(auth)
	if len(fields) < 2 || !strings.EqualFold(fields[0], "Bearer") {
		return "", errTokenFormat
	}
	tok := strings.Trim(strings.TrimSpace(fields[1]), "\"'")
	if tok == "" {
		return "", errEmptyToken
	}
	return tok, nil
}
