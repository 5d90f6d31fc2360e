// internals/features/surveys/questions/model/question_model.go
package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/*
Tipe pertanyaan:
- "text"
- "multiple_choice"
- "rating"
*/
type QuestionType string

const (
	TypeText           QuestionType = "text"
	TypeMultipleChoice QuestionType = "multiple_choice"
	TypeRating         QuestionType = "rating"
)

var QuestionTypes = []QuestionType{TypeText, TypeMultipleChoice, TypeRating}

func IsValidType(t QuestionType) bool {
	switch t {
	case TypeText, TypeMultipleChoice, TypeRating:
		return true
	}
	return false
}

// ParseType normalizes case/whitespace; ok=false for anything outside the enumeration.
func ParseType(s string) (QuestionType, bool) {
	t := QuestionType(strings.ToLower(strings.TrimSpace(s)))
	return t, IsValidType(t)
}

func (t *QuestionType) Scan(value any) error {
	switch v := value.(type) {
	case string:
		*t = QuestionType(strings.ToLower(strings.TrimSpace(v)))
	case []byte:
		*t = QuestionType(strings.ToLower(strings.TrimSpace(string(v))))
	case nil:
		*t = ""
	default:
		return fmt.Errorf("question_type: unsupported scan type %T", value)
	}
	return nil
}

func (t QuestionType) Value() (driver.Value, error) {
	return string(t), nil
}

type QuestionModel struct {
	QuestionID uuid.UUID `gorm:"type:uuid;primaryKey;column:question_id" json:"question_id"`

	QuestionText     string       `gorm:"type:text;not null;column:question_text" json:"question_text"`
	QuestionType     QuestionType `gorm:"type:varchar(30);not null;column:question_type" json:"question_type"`
	QuestionCategory *string      `gorm:"type:varchar(100);index;column:question_category" json:"question_category,omitempty"`

	QuestionCompanyID *uuid.UUID `gorm:"type:uuid;index;column:question_company_id" json:"question_company_id,omitempty"`
	QuestionCreatedBy *uuid.UUID `gorm:"type:uuid;column:question_created_by" json:"question_created_by,omitempty"`

	// default global; survey bisa override lewat survey_questions
	QuestionIsActive   bool `gorm:"not null;column:question_is_active" json:"question_is_active"`
	QuestionSortOrder  int  `gorm:"not null;column:question_sort_order" json:"question_sort_order"`
	QuestionIsRequired bool `gorm:"not null;column:question_is_required" json:"question_is_required"`

	QuestionCreatedAt time.Time `gorm:"column:question_created_at;autoCreateTime" json:"question_created_at"`
	QuestionUpdatedAt time.Time `gorm:"column:question_updated_at;autoUpdateTime" json:"question_updated_at"`
}

func (QuestionModel) TableName() string { return "questions" }

func (m *QuestionModel) BeforeCreate(tx *gorm.DB) error {
	if m.QuestionID == uuid.Nil {
		m.QuestionID = uuid.New()
	}
	return nil
}
