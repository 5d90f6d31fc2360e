// helpers/token.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Keys untuk c.Locals yang diisi middleware auth
const (
	LocRawToken  = "raw_token"
	LocUserID    = "user_id"
	LocUserName  = "user_name"
	LocUserLevel = "user_level"
)

const AccessTokenCookie = "access_token"

// GetRawAccessToken mengembalikan access token dari:
// 1) Authorization header "Bearer <token>"
// 2) cookie "access_token"
func GetRawAccessToken(c *fiber.Ctx) string {
	auth := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if auth != "" {
		fields := strings.Fields(auth)
		if len(fields) == 2 && strings.EqualFold(fields[0], "Bearer") {
			return strings.Trim(fields[1], "\"'")
		}
		return ""
	}
	return strings.TrimSpace(c.Cookies(AccessTokenCookie))
}

// GetUserIDFromToken reads the authenticated user id stored by the auth middleware.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	switch t := c.Locals(LocUserID).(type) {
	case uuid.UUID:
		if t != uuid.Nil {
			return t, nil
		}
	case string:
		if id, err := uuid.Parse(strings.TrimSpace(t)); err == nil && id != uuid.Nil {
			return id, nil
		}
	}
	return uuid.Nil, ErrUnauthorized("Unauthorized")
}

// GetUserLevel returns the privilege level carried by the verified token (0 if absent).
func GetUserLevel(c *fiber.Ctx) int {
	if v, ok := c.Locals(LocUserLevel).(int); ok {
		return v
	}
	return 0
}

// ParseUUIDParam parses a route param; a malformed id is a validation error.
func ParseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params(name)))
	if err != nil {
		return uuid.Nil, ErrValidation("Invalid " + name)
	}
	return id, nil
}
