package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	surveyController "surveyku_backend/internals/features/surveys/surveys/controller"
)

// SurveyUserRoutes: /api/u/surveys (login biasa)
func SurveyUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := surveyController.NewSurveyController(db)

	user.Get("/surveys", ctrl.ListOpen)
	user.Get("/surveys/:id", ctrl.GetOpen)
}
