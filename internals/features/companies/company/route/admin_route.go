package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	companyController "surveyku_backend/internals/features/companies/company/controller"
)

func CompanyAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := companyController.NewCompanyController(db)

	// =========================
	// 🏢 COMPANIES (ADMIN AREA)
	// =========================
	admin.Get("/companies", ctrl.List)
	admin.Get("/companies/:id", ctrl.GetByID)
	admin.Post("/create-company", ctrl.Create)
	admin.Put("/update-company", ctrl.Update)
}
