package details

import (
	"github.com/gofiber/fiber/v2"

	authRoute "surveyku_backend/internals/features/users/auth/route"
	authService "surveyku_backend/internals/features/users/auth/service"
)

func AuthRoutes(api fiber.Router, svc *authService.AuthService) {
	authRoute.AuthRoutes(api, svc)
}
