package controller

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"surveyku_backend/internals/features/surveys/surveys/dto"
	"surveyku_backend/internals/features/surveys/surveys/service"
	helper "surveyku_backend/internals/helpers"
)

type SurveyController struct {
	Svc *service.SurveyService
}

func NewSurveyController(db *gorm.DB) *SurveyController {
	return &SurveyController{Svc: service.NewSurveyService(db)}
}

func parseListQuery(c *fiber.Ctx, opt helper.Options) (dto.ListSurveysQuery, error) {
	q := dto.ListSurveysQuery{
		Q:      c.Query("q"),
		Paging: helper.ParseFiber(c, "created_at", "desc", opt),
	}
	for key, dst := range map[string]**bool{"active": &q.Active, "public": &q.Public} {
		if v := strings.TrimSpace(c.Query(key)); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return q, helper.ErrValidation(key + " must be true or false")
			}
			*dst = &b
		}
	}
	if v := strings.TrimSpace(c.Query("company_id")); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return q, helper.ErrValidation("Invalid company_id")
		}
		q.CompanyID = &id
	}
	return q, nil
}

/* ===================== ADMIN ===================== */

// GET /api/admin/surveys
func (h *SurveyController) List(c *fiber.Ctx) error {
	q, err := parseListQuery(c, helper.AdminOpts)
	if err != nil {
		return helper.FromError(c, err)
	}
	rows, total, err := h.Svc.List(c.UserContext(), q)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonList(c, "Surveys retrieved", dto.FromModels(rows), helper.BuildMeta(total, q.Paging))
}

// GET /api/admin/surveys/:id — termasuk daftar pertanyaan terurut
func (h *SurveyController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	out, err := h.Svc.GetDetail(c.UserContext(), id)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "Survey retrieved", out)
}

// POST /api/admin/create-survey
func (h *SurveyController) Create(c *fiber.Ctx) error {
	var req dto.CreateSurveyRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return helper.FromError(c, err)
	}
	uid, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	req.CreatedBy = uid

	out, err := h.Svc.Create(c.UserContext(), req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonCreated(c, "Survey created", out)
}

// PUT /api/admin/update-survey
func (h *SurveyController) Update(c *fiber.Ctx) error {
	var req dto.UpdateSurveyRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return helper.FromError(c, err)
	}
	out, err := h.Svc.Update(c.UserContext(), req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonUpdated(c, "Survey updated", out)
}

// PUT /api/admin/surveys/:id/questions
func (h *SurveyController) SetQuestions(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	var req dto.SetSurveyQuestionsRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return helper.FromError(c, err)
	}
	if req.QuestionIDs == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "question_ids is required")
	}
	if err := h.Svc.SetSurveyQuestions(c.UserContext(), id, req.QuestionIDs); err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonUpdated(c, "Survey questions updated", nil)
}

/* ===================== USER ===================== */

// GET /api/u/surveys
func (h *SurveyController) ListOpen(c *fiber.Ctx) error {
	q, err := parseListQuery(c, helper.DefaultOpts)
	if err != nil {
		return helper.FromError(c, err)
	}
	rows, total, err := h.Svc.ListOpen(c.UserContext(), q)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonList(c, "Surveys retrieved", dto.FromModels(rows), helper.BuildMeta(total, q.Paging))
}

// GET /api/u/surveys/:id
func (h *SurveyController) GetOpen(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	out, err := h.Svc.GetOpenDetail(c.UserContext(), id)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "Survey retrieved", out)
}
