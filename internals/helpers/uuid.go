// file: internals/helpers/uuid.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetUserUUID membaca user_id yang diset AuthMiddleware; uuid.Nil kalau tidak ada
func GetUserUUID(c *fiber.Ctx) uuid.UUID {
	if userIDRaw := c.Locals("user_id"); userIDRaw != nil {
		if userIDStr, ok := userIDRaw.(string); ok {
			if parsed, err := uuid.Parse(userIDStr); err == nil {
				return parsed
			}
		}
	}
	return uuid.Nil
}

func ParseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(c.Params(name)))
}
