package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "surveyku_backend/internals/features/users/user/controller"
)

// UserAdminRoutes mounts under /api/admin (auth + admin gate already applied).
func UserAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	// =========================
	// 👤 USERS (ADMIN AREA)
	// =========================
	admin.Get("/users", ctrl.List)
	admin.Get("/users/:id", ctrl.GetByID)
	admin.Post("/create-user", ctrl.Create)
	admin.Put("/update-user", ctrl.Update)

	admin.Post("/migrate-levels", ctrl.MigrateLevels)
}
