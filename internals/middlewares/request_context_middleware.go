package middlewares

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const HeaderRequestID = "X-Request-ID"

// RequestID memakai X-Request-ID dari klien bila ada, selain itu uuid baru.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderRequestID)
		if rid == "" || len(rid) > 64 {
			rid = uuid.NewString()
		}
		c.Locals("requestid", rid)
		c.Set(HeaderRequestID, rid)
		return c.Next()
	}
}

// RequestTimeout: context request dibatasi timeout (membatasi antre pool & query).
func RequestTimeout(d time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if d <= 0 {
			return c.Next()
		}
		ctx, cancel := context.WithTimeout(c.UserContext(), d)
		defer cancel()
		c.SetUserContext(ctx)

		return c.Next()
	}
}
