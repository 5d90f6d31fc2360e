package controller

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"surveyku_backend/internals/features/companies/company/dto"
	"surveyku_backend/internals/features/companies/company/service"
	helper "surveyku_backend/internals/helpers"
)

type CompanyController struct {
	Svc *service.CompanyService
}

func NewCompanyController(db *gorm.DB) *CompanyController {
	return &CompanyController{Svc: service.NewCompanyService(db)}
}

// GET /api/admin/companies?active=&q=&industry=&city=&page=&per_page=
func (h *CompanyController) List(c *fiber.Ctx) error {
	q := dto.ListCompaniesQuery{
		Q:        c.Query("q"),
		Industry: c.Query("industry"),
		City:     c.Query("city"),
		Paging:   helper.ParseFiber(c, "company_name", "asc", helper.AdminOpts),
	}
	if v := strings.TrimSpace(c.Query("active")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "active must be true or false")
		}
		q.Active = &b
	}

	rows, total, err := h.Svc.List(c.UserContext(), q)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonList(c, "Companies retrieved", dto.FromModels(rows), helper.BuildMeta(total, q.Paging))
}

// GET /api/admin/companies/:id
func (h *CompanyController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	m, err := h.Svc.GetByID(c.UserContext(), id)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "Company retrieved", dto.FromModel(m))
}

// POST /api/admin/create-company
func (h *CompanyController) Create(c *fiber.Ctx) error {
	var req dto.CreateCompanyRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return helper.FromError(c, err)
	}
	m, err := h.Svc.Create(c.UserContext(), req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonCreated(c, "Company created", dto.FromModel(m))
}

// PUT /api/admin/update-company
func (h *CompanyController) Update(c *fiber.Ctx) error {
	var req dto.UpdateCompanyRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return helper.FromError(c, err)
	}
	m, err := h.Svc.Update(c.UserContext(), req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonUpdated(c, "Company updated", dto.FromModel(m))
}
