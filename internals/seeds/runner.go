package seeds

import (
	"context"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"surveyku_backend/internals/seeds/questions"
	"surveyku_backend/internals/seeds/users"
)

// RunAllSeeds seeds users then questions from dir/users/data_users.json and dir/questions/data_questions.json.
func RunAllSeeds(ctx context.Context, db *gorm.DB, dir string) error {
	//* User
	nUsers, err := users.SeedUsersFromJSON(ctx, db, filepath.Join(dir, "users", "data_users.json"))
	if err != nil {
		return err
	}

	//* Questions
	nQuestions, err := questions.SeedQuestionsFromJSON(ctx, db, filepath.Join(dir, "questions", "data_questions.json"))
	if err != nil {
		return err
	}

	log.Info().Int("users", nUsers).Int("questions", nQuestions).Msg("🌱 seeding done")
	return nil
}
