// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	controller "surveyku_backend/internals/features/users/auth/controller"
	"surveyku_backend/internals/features/users/auth/service"
	rateLimiter "surveyku_backend/internals/middlewares"
	authMiddleware "surveyku_backend/internals/middlewares/auth"
)

// AuthRoutes mounts public auth endpoints and the self-service ones on api (/api).
func AuthRoutes(api fiber.Router, svc *service.AuthService) {
	authController := controller.NewAuthController(svc)

	// 🔓 Public
	api.Post("/login", rateLimiter.LoginRateLimiter(), authController.Login)
	api.Post("/register", rateLimiter.RegisterRateLimiter(), authController.Register)
	api.Post("/check-user", authController.CheckUser)
	api.Post("/forgot-password", rateLimiter.ForgotPasswordRateLimiter(), authController.ForgotPassword)
	api.Post("/reset-password", authController.ResetPassword)
	api.Post("/logout", authController.Logout)

	// 🔐 Login required
	requireAuth := authMiddleware.AuthJWT(svc.Tokens)
	api.Get("/me", requireAuth, authController.Me)
	api.Post("/change-password", requireAuth, authController.ChangePassword)
}
