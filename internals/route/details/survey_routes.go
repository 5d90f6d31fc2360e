package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	questionRoute "surveyku_backend/internals/features/surveys/questions/route"
	surveyRoute "surveyku_backend/internals/features/surveys/surveys/route"
)

// 🔐 Admin: bank pertanyaan + survey + komposisi
func SurveyAdminRoutes(admin fiber.Router, db *gorm.DB) {
	questionRoute.QuestionAdminRoutes(admin, db)
	surveyRoute.SurveyAdminRoutes(admin, db)
}

// 👤 User: hanya survey yang sedang dibuka
func SurveyUserRoutes(user fiber.Router, db *gorm.DB) {
	surveyRoute.SurveyUserRoutes(user, db)
}
