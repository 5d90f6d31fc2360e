package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"surveyku_backend/internals/constants"
	helper "surveyku_backend/internals/helpers"
)

// RequireLevel lets the request through only when the token level is one of allowed.
// Must run after AuthJWT.
func RequireLevel(message string, allowed ...int) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := helper.GetUserIDFromToken(c); err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - Level not found")
		}
		level := helper.GetUserLevel(c)
		for _, a := range allowed {
			if level == a {
				return c.Next()
			}
		}

		log.Warn().Int("level", level).Str("path", c.Path()).Msg("[AUTH] forbidden")
		if message == "" {
			message = "Forbidden: you are not authorized to access this resource"
		}
		return helper.JsonError(c, fiber.StatusForbidden, message)
	}
}

// RequireAdmin: shortcut untuk area /api/admin
func RequireAdmin() fiber.Handler {
	return RequireLevel(constants.RoleErrorAdmin("this resource"), constants.LevelAdmin)
}
