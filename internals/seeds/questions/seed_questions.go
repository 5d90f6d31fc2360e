package questions

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"surveyku_backend/internals/features/surveys/questions/model"
)

type QuestionSeed struct {
	QuestionText       string  `json:"question_text"`
	QuestionType       string  `json:"question_type"`
	QuestionCategory   *string `json:"question_category"`
	QuestionSortOrder  int     `json:"question_sort_order"`
	QuestionIsRequired bool    `json:"question_is_required"`
}

// SeedQuestionsFromJSON inserts global questions; texts already in the bank are skipped.
func SeedQuestionsFromJSON(ctx context.Context, db *gorm.DB, filePath string) (int, error) {
	log.Info().Str("file", filePath).Msg("📥 Reading questions seed")

	file, err := os.ReadFile(filePath)
	if err != nil {
		return 0, err
	}
	var seeds []QuestionSeed
	if err := sonic.Unmarshal(file, &seeds); err != nil {
		return 0, err
	}

	// Ambil semua question_text yang sudah ada
	var existing []string
	if err := db.WithContext(ctx).Model(&model.QuestionModel{}).
		Pluck("question_text", &existing).Error; err != nil {
		return 0, err
	}
	existingMap := make(map[string]bool, len(existing))
	for _, q := range existing {
		existingMap[q] = true
	}

	var rows []model.QuestionModel
	for _, s := range seeds {
		text := strings.TrimSpace(s.QuestionText)
		if text == "" || existingMap[text] {
			log.Info().Str("question", text).Msg("ℹ️ question exists or empty, skipped")
			continue
		}
		t, ok := model.ParseType(s.QuestionType)
		if !ok {
			return 0, fmt.Errorf("question %q: unknown type %q", text, s.QuestionType)
		}
		existingMap[text] = true
		rows = append(rows, model.QuestionModel{
			QuestionText:       text,
			QuestionType:       t,
			QuestionCategory:   s.QuestionCategory,
			QuestionIsActive:   true,
			QuestionSortOrder:  s.QuestionSortOrder,
			QuestionIsRequired: s.QuestionIsRequired,
		})
	}

	if len(rows) == 0 {
		log.Info().Msg("ℹ️ no new questions to insert")
		return 0, nil
	}
	if err := db.WithContext(ctx).Create(&rows).Error; err != nil {
		return 0, err
	}
	log.Info().Int("count", len(rows)).Msg("✅ questions inserted")
	return len(rows), nil
}
