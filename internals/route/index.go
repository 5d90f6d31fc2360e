// file: internals/route/index.go
package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	authService "surveyku_backend/internals/features/users/auth/service"
	middlewares "surveyku_backend/internals/middlewares"
	authMiddleware "surveyku_backend/internals/middlewares/auth"
	routeDetails "surveyku_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB, authSvc *authService.AuthService) {
	startTime = time.Now()

	BaseRoutes(app, db)

	api := app.Group("/api", middlewares.GlobalRateLimiter())

	// ===================== AUTH (public + /me) =====================
	log.Info().Msg("[ROUTE] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(api, authSvc)

	// ===================== USER (login biasa) =====================
	log.Info().Msg("[ROUTE] Setting up USER group /api/u ...")
	user := api.Group("/u", authMiddleware.AuthJWT(authSvc.Tokens))

	// ===================== ADMIN (level 1001) =====================
	log.Info().Msg("[ROUTE] Setting up ADMIN group /api/admin ...")
	admin := api.Group("/admin",
		authMiddleware.AuthJWT(authSvc.Tokens),
		authMiddleware.RequireAdmin(),
	)

	// ===================== MOUNT ROUTES =====================
	routeDetails.UserAdminRoutes(admin, db)
	routeDetails.CompanyAdminRoutes(admin, db)
	routeDetails.SurveyAdminRoutes(admin, db)
	routeDetails.SurveyUserRoutes(user, db)

	log.Info().Msg("✅ Routes mounted")
}
