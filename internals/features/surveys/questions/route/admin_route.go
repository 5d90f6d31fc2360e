package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	questionController "surveyku_backend/internals/features/surveys/questions/controller"
)

func QuestionAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := questionController.NewQuestionController(db)

	// =========================
	// ❓ QUESTIONS (ADMIN AREA)
	// =========================
	admin.Get("/questions", ctrl.List)
	admin.Get("/questions/:id", ctrl.GetByID)
	admin.Post("/create-question", ctrl.Create)
	admin.Put("/update-question", ctrl.Update)
}
