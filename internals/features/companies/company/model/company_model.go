// internals/features/companies/company/model/company_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CompanyModel struct {
	// PK
	CompanyID uuid.UUID `gorm:"type:uuid;primaryKey;column:company_id" json:"company_id"`

	// Identitas
	CompanyName     string  `gorm:"type:varchar(150);not null;uniqueIndex;column:company_name" json:"company_name"`
	CompanyIndustry *string `gorm:"type:varchar(100);column:company_industry" json:"company_industry,omitempty"`

	// Alamat
	CompanyAddress *string `gorm:"column:company_address" json:"company_address,omitempty"`
	CompanyCity    *string `gorm:"type:varchar(100);column:company_city" json:"company_city,omitempty"`
	CompanyState   *string `gorm:"type:varchar(100);column:company_state" json:"company_state,omitempty"`
	CompanyZip     *string `gorm:"type:varchar(20);column:company_zip" json:"company_zip,omitempty"`

	// Kontak
	CompanyPhone   *string `gorm:"type:varchar(30);column:company_phone" json:"company_phone,omitempty"`
	CompanyEmail   *string `gorm:"type:varchar(255);column:company_email" json:"company_email,omitempty"`
	CompanyWebsite *string `gorm:"column:company_website" json:"company_website,omitempty"`

	CompanyMainContactUserID *uuid.UUID `gorm:"type:uuid;index;column:company_main_contact_user_id" json:"company_main_contact_user_id,omitempty"`

	// Status
	CompanyIsActive bool `gorm:"not null;column:company_is_active" json:"company_is_active"`

	CompanyCreatedAt time.Time `gorm:"column:company_created_at;autoCreateTime" json:"company_created_at"`
	CompanyUpdatedAt time.Time `gorm:"column:company_updated_at;autoUpdateTime" json:"company_updated_at"`
}

func (CompanyModel) TableName() string { return "companies" }

func (m *CompanyModel) BeforeCreate(tx *gorm.DB) error {
	if m.CompanyID == uuid.Nil {
		m.CompanyID = uuid.New()
	}
	return nil
}
