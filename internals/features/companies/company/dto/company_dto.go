package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"surveyku_backend/internals/features/companies/company/model"
	helper "surveyku_backend/internals/helpers"
)

/* ===================== REQUEST ===================== */

type CreateCompanyRequest struct {
	CompanyName     string  `json:"company_name" validate:"required,max=150"`
	CompanyIndustry *string `json:"company_industry,omitempty" validate:"omitempty,max=100"`

	CompanyAddress *string `json:"company_address,omitempty"`
	CompanyCity    *string `json:"company_city,omitempty" validate:"omitempty,max=100"`
	CompanyState   *string `json:"company_state,omitempty" validate:"omitempty,max=100"`
	CompanyZip     *string `json:"company_zip,omitempty" validate:"omitempty,max=20"`

	CompanyPhone   *string `json:"company_phone,omitempty" validate:"omitempty,max=30"`
	CompanyEmail   *string `json:"company_email,omitempty" validate:"omitempty,email,max=255"`
	CompanyWebsite *string `json:"company_website,omitempty" validate:"omitempty,max=255"`

	CompanyMainContactUserID *uuid.UUID `json:"company_main_contact_user_id,omitempty"`
	CompanyIsActive          *bool      `json:"company_is_active,omitempty"`
}

func (r *CreateCompanyRequest) Normalize() {
	r.CompanyName = strings.TrimSpace(r.CompanyName)
	r.CompanyIndustry = helper.NilIfBlank(r.CompanyIndustry)
	r.CompanyAddress = helper.NilIfBlank(r.CompanyAddress)
	r.CompanyCity = helper.NilIfBlank(r.CompanyCity)
	r.CompanyState = helper.NilIfBlank(r.CompanyState)
	r.CompanyZip = helper.NilIfBlank(r.CompanyZip)
	r.CompanyPhone = helper.NilIfBlank(r.CompanyPhone)
	r.CompanyEmail = helper.NilIfBlank(r.CompanyEmail)
	r.CompanyWebsite = helper.NilIfBlank(r.CompanyWebsite)
}

func (r *CreateCompanyRequest) ToModel() *model.CompanyModel {
	m := &model.CompanyModel{
		CompanyName:              r.CompanyName,
		CompanyIndustry:          r.CompanyIndustry,
		CompanyAddress:           r.CompanyAddress,
		CompanyCity:              r.CompanyCity,
		CompanyState:             r.CompanyState,
		CompanyZip:               r.CompanyZip,
		CompanyPhone:             r.CompanyPhone,
		CompanyEmail:             r.CompanyEmail,
		CompanyWebsite:           r.CompanyWebsite,
		CompanyMainContactUserID: r.CompanyMainContactUserID,
		CompanyIsActive:          true,
	}
	if r.CompanyIsActive != nil {
		m.CompanyIsActive = *r.CompanyIsActive
	}
	return m
}

// UpdateCompanyRequest — partial; string kosong pada field opsional = hapus nilai.
type UpdateCompanyRequest struct {
	CompanyID       uuid.UUID `json:"company_id" validate:"required"`
	CompanyName     *string   `json:"company_name,omitempty" validate:"omitempty,max=150"`
	CompanyIndustry *string   `json:"company_industry,omitempty" validate:"omitempty,max=100"`

	CompanyAddress *string `json:"company_address,omitempty"`
	CompanyCity    *string `json:"company_city,omitempty" validate:"omitempty,max=100"`
	CompanyState   *string `json:"company_state,omitempty" validate:"omitempty,max=100"`
	CompanyZip     *string `json:"company_zip,omitempty" validate:"omitempty,max=20"`

	CompanyPhone   *string `json:"company_phone,omitempty" validate:"omitempty,max=30"`
	CompanyEmail   *string `json:"company_email,omitempty" validate:"omitempty,email,max=255"`
	CompanyWebsite *string `json:"company_website,omitempty" validate:"omitempty,max=255"`

	CompanyMainContactUserID *uuid.UUID `json:"company_main_contact_user_id,omitempty"`
	CompanyIsActive          *bool      `json:"company_is_active,omitempty"`
}

func (r *UpdateCompanyRequest) Normalize() {
	r.CompanyName = helper.TrimPtr(r.CompanyName)
	r.CompanyIndustry = helper.TrimPtr(r.CompanyIndustry)
	r.CompanyAddress = helper.TrimPtr(r.CompanyAddress)
	r.CompanyCity = helper.TrimPtr(r.CompanyCity)
	r.CompanyState = helper.TrimPtr(r.CompanyState)
	r.CompanyZip = helper.TrimPtr(r.CompanyZip)
	r.CompanyPhone = helper.TrimPtr(r.CompanyPhone)
	r.CompanyEmail = helper.TrimPtr(r.CompanyEmail)
	r.CompanyWebsite = helper.TrimPtr(r.CompanyWebsite)
}

func (r *UpdateCompanyRequest) Validate() error {
	check := *r
	if check.CompanyEmail != nil && *check.CompanyEmail == "" {
		check.CompanyEmail = nil // "" = clear
	}
	if err := helper.ValidateStruct(&check); err != nil {
		return err
	}
	if r.CompanyName != nil && *r.CompanyName == "" {
		return helper.ErrValidation("company_name cannot be empty")
	}
	return nil
}

func (r *UpdateCompanyRequest) Updates() map[string]any {
	up := map[string]any{}
	if r.CompanyName != nil {
		up["company_name"] = *r.CompanyName
	}
	setOpt := func(col string, v *string) {
		if v == nil {
			return
		}
		if *v == "" {
			up[col] = nil
			return
		}
		up[col] = *v
	}
	setOpt("company_industry", r.CompanyIndustry)
	setOpt("company_address", r.CompanyAddress)
	setOpt("company_city", r.CompanyCity)
	setOpt("company_state", r.CompanyState)
	setOpt("company_zip", r.CompanyZip)
	setOpt("company_phone", r.CompanyPhone)
	setOpt("company_email", r.CompanyEmail)
	setOpt("company_website", r.CompanyWebsite)
	if r.CompanyMainContactUserID != nil {
		if *r.CompanyMainContactUserID == uuid.Nil {
			up["company_main_contact_user_id"] = nil
		} else {
			up["company_main_contact_user_id"] = *r.CompanyMainContactUserID
		}
	}
	if r.CompanyIsActive != nil {
		up["company_is_active"] = *r.CompanyIsActive
	}
	return up
}

type ListCompaniesQuery struct {
	Active   *bool
	Q        string
	Industry string
	City     string
	Paging   helper.Params
}

/* ===================== RESPONSE ===================== */

type CompanyResponse struct {
	CompanyID       uuid.UUID `json:"company_id"`
	CompanyName     string    `json:"company_name"`
	CompanyIndustry *string   `json:"company_industry,omitempty"`

	CompanyAddress *string `json:"company_address,omitempty"`
	CompanyCity    *string `json:"company_city,omitempty"`
	CompanyState   *string `json:"company_state,omitempty"`
	CompanyZip     *string `json:"company_zip,omitempty"`

	CompanyPhone   *string `json:"company_phone,omitempty"`
	CompanyEmail   *string `json:"company_email,omitempty"`
	CompanyWebsite *string `json:"company_website,omitempty"`

	CompanyMainContactUserID *uuid.UUID `json:"company_main_contact_user_id,omitempty"`
	CompanyIsActive          bool       `json:"company_is_active"`

	CompanyCreatedAt time.Time `json:"company_created_at"`
	CompanyUpdatedAt time.Time `json:"company_updated_at"`
}

func FromModel(m *model.CompanyModel) CompanyResponse {
	return CompanyResponse{
		CompanyID:                m.CompanyID,
		CompanyName:              m.CompanyName,
		CompanyIndustry:          m.CompanyIndustry,
		CompanyAddress:           m.CompanyAddress,
		CompanyCity:              m.CompanyCity,
		CompanyState:             m.CompanyState,
		CompanyZip:               m.CompanyZip,
		CompanyPhone:             m.CompanyPhone,
		CompanyEmail:             m.CompanyEmail,
		CompanyWebsite:           m.CompanyWebsite,
		CompanyMainContactUserID: m.CompanyMainContactUserID,
		CompanyIsActive:          m.CompanyIsActive,
		CompanyCreatedAt:         m.CompanyCreatedAt,
		CompanyUpdatedAt:         m.CompanyUpdatedAt,
	}
}

func FromModels(list []model.CompanyModel) []CompanyResponse {
	out := make([]CompanyResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}
