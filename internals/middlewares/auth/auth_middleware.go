// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	authService "surveyku_backend/internals/features/users/auth/service"
	helper "surveyku_backend/internals/helpers"
)

// AuthJWT verifies the access token (Bearer header, cookie fallback) and stores
// user id, user name and level in c.Locals. It does not hit the database.
func AuthJWT(tokens *authService.TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := helper.GetRawAccessToken(c)
		if raw == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - No token provided")
		}

		claims, userID, err := tokens.Parse(raw)
		if err != nil {
			log.Debug().Err(err).Str("path", c.Path()).Msg("[AUTH] token rejected")
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - Invalid or expired token")
		}

		c.Locals(helper.LocRawToken, raw)
		c.Locals(helper.LocUserID, userID)
		c.Locals(helper.LocUserName, claims.UserName)
		c.Locals(helper.LocUserLevel, claims.Level)
		return c.Next()
	}
}
