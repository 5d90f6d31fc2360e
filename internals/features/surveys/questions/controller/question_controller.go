package controller

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"surveyku_backend/internals/features/surveys/questions/dto"
	"surveyku_backend/internals/features/surveys/questions/service"
	helper "surveyku_backend/internals/helpers"
)

type QuestionController struct {
	Svc *service.QuestionService
}

func NewQuestionController(db *gorm.DB) *QuestionController {
	return &QuestionController{Svc: service.NewQuestionService(db)}
}

// GET /api/admin/questions?active=&type=&category=&company_id=&q=&page=&per_page=
func (h *QuestionController) List(c *fiber.Ctx) error {
	q := dto.ListQuestionsQuery{
		Type:     c.Query("type"),
		Category: c.Query("category"),
		Q:        c.Query("q"),
		Paging:   helper.ParseFiber(c, "sort_order", "asc", helper.AdminOpts),
	}
	if v := strings.TrimSpace(c.Query("active")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "active must be true or false")
		}
		q.Active = &b
	}
	if v := strings.TrimSpace(c.Query("company_id")); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid company_id")
		}
		q.CompanyID = &id
	}

	rows, total, err := h.Svc.List(c.UserContext(), q)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonList(c, "Questions retrieved", dto.FromModels(rows), helper.BuildMeta(total, q.Paging))
}

// GET /api/admin/questions/:id
func (h *QuestionController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	m, err := h.Svc.GetByID(c.UserContext(), id)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "Question retrieved", dto.FromModel(m))
}

// POST /api/admin/create-question
func (h *QuestionController) Create(c *fiber.Ctx) error {
	var req dto.CreateQuestionRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return helper.FromError(c, err)
	}
	if uid, err := helper.GetUserIDFromToken(c); err == nil {
		req.CreatedBy = &uid
	}
	m, err := h.Svc.Create(c.UserContext(), req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonCreated(c, "Question created", dto.FromModel(m))
}

// PUT /api/admin/update-question
func (h *QuestionController) Update(c *fiber.Ctx) error {
	var req dto.UpdateQuestionRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return helper.FromError(c, err)
	}
	m, err := h.Svc.Update(c.UserContext(), req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonUpdated(c, "Question updated", dto.FromModel(m))
}
