// internals/features/surveys/surveys/model/survey_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SurveyModel struct {
	SurveyID uuid.UUID `gorm:"type:uuid;primaryKey;column:survey_id" json:"survey_id"`

	SurveyTitle       string  `gorm:"type:varchar(255);not null;column:survey_title" json:"survey_title"`
	SurveyDescription *string `gorm:"type:text;column:survey_description" json:"survey_description,omitempty"`

	SurveyCompanyID *uuid.UUID `gorm:"type:uuid;index;column:survey_company_id" json:"survey_company_id,omitempty"`
	SurveyCreatedBy uuid.UUID  `gorm:"type:uuid;not null;column:survey_created_by" json:"survey_created_by"`

	SurveyIsPublic    bool `gorm:"not null;column:survey_is_public" json:"survey_is_public"`
	SurveyIsAnonymous bool `gorm:"not null;column:survey_is_anonymous" json:"survey_is_anonymous"`
	SurveyIsActive    bool `gorm:"not null;column:survey_is_active" json:"survey_is_active"`

	SurveyStartDate *datatypes.Date `gorm:"type:date;column:survey_start_date" json:"survey_start_date,omitempty"`
	SurveyEndDate   *datatypes.Date `gorm:"type:date;column:survey_end_date" json:"survey_end_date,omitempty"`

	SurveyCreatedAt time.Time `gorm:"column:survey_created_at;autoCreateTime" json:"survey_created_at"`
	SurveyUpdatedAt time.Time `gorm:"column:survey_updated_at;autoUpdateTime" json:"survey_updated_at"`
}

func (SurveyModel) TableName() string { return "surveys" }

func (m *SurveyModel) BeforeCreate(tx *gorm.DB) error {
	if m.SurveyID == uuid.Nil {
		m.SurveyID = uuid.New()
	}
	return nil
}
