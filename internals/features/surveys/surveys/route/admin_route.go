package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	surveyController "surveyku_backend/internals/features/surveys/surveys/controller"
)

func SurveyAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := surveyController.NewSurveyController(db)

	// =========================
	// 📋 SURVEYS (ADMIN AREA)
	// =========================
	admin.Get("/surveys", ctrl.List)
	admin.Get("/surveys/:id", ctrl.GetByID)
	admin.Put("/surveys/:id/questions", ctrl.SetQuestions)
	admin.Post("/create-survey", ctrl.Create)
	admin.Put("/update-survey", ctrl.Update)
}
