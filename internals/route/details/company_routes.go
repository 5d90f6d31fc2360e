package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	companyRoute "surveyku_backend/internals/features/companies/company/route"
)

func CompanyAdminRoutes(admin fiber.Router, db *gorm.DB) {
	companyRoute.CompanyAdminRoutes(admin, db)
}
