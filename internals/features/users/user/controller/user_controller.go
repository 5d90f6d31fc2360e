// internals/features/users/user/controller/user_controller.go
package controller

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"surveyku_backend/internals/features/users/user/dto"
	"surveyku_backend/internals/features/users/user/service"
	helper "surveyku_backend/internals/helpers"
)

type UserController struct {
	Svc *service.UserService
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{Svc: service.NewUserService(db)}
}

/* ===================== HANDLERS ===================== */

// GET /api/admin/users?active=&level=&q=&page=&per_page=
func (h *UserController) List(c *fiber.Ctx) error {
	q := dto.ListUsersQuery{
		Q:      c.Query("q"),
		Paging: helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts),
	}
	if v := strings.TrimSpace(c.Query("active")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "active must be true or false")
		}
		q.Active = &b
	}
	if v := strings.TrimSpace(c.Query("level")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "level must be 1001 or 2002")
		}
		q.Level = n
	}

	users, total, err := h.Svc.List(c.UserContext(), q)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonList(c, "Users retrieved", dto.FromModelList(users), helper.BuildMeta(total, q.Paging))
}

// GET /api/admin/users/:id
func (h *UserController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	u, err := h.Svc.GetByID(c.UserContext(), id)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "User retrieved", dto.FromModel(u))
}

// POST /api/admin/create-user
func (h *UserController) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return helper.FromError(c, err)
	}
	u, err := h.Svc.Create(c.UserContext(), req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonCreated(c, "User created", dto.FromModel(u))
}

// PUT /api/admin/update-user (id di body)
func (h *UserController) Update(c *fiber.Ctx) error {
	var req dto.UpdateUserRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return helper.FromError(c, err)
	}
	u, err := h.Svc.Update(c.UserContext(), req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonUpdated(c, "User updated", dto.FromModel(u))
}

// POST /api/admin/migrate-levels
func (h *UserController) MigrateLevels(c *fiber.Ctx) error {
	var req dto.MigrateLevelsRequest
	if len(c.Body()) > 0 {
		if err := helper.ParseBody(c, &req); err != nil {
			return helper.FromError(c, err)
		}
	}
	res, err := h.Svc.MigrateLevels(c.UserContext(), req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "User levels migrated", res)
}
