package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userRoute "surveyku_backend/internals/features/users/user/route"
)

// /api/admin/users, /api/admin/create-user, /api/admin/update-user, /api/admin/migrate-levels
func UserAdminRoutes(admin fiber.Router, db *gorm.DB) {
	userRoute.UserAdminRoutes(admin, db)
}
