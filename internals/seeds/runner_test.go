package seeds

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"surveyku_backend/internals/constants"
	questionModel "surveyku_backend/internals/features/surveys/questions/model"
	userModel "surveyku_backend/internals/features/users/user/model"
	"surveyku_backend/internals/testutil"
)

func TestRunAllSeeds_SkipsExisting(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()

	// the bundled JSON files live next to this test
	require.NoError(t, RunAllSeeds(ctx, db, "."))

	var admin userModel.UserModel
	require.NoError(t, db.Where("user_name = ?", "admin").First(&admin).Error)
	assert.Equal(t, constants.LevelAdmin, admin.UserLevel)
	assert.NotEqual(t, "Admin12345", admin.Password)

	var nUsers, nQuestions int64
	require.NoError(t, db.Model(&userModel.UserModel{}).Count(&nUsers).Error)
	require.NoError(t, db.Model(&questionModel.QuestionModel{}).Count(&nQuestions).Error)
	assert.EqualValues(t, 2, nUsers)
	assert.EqualValues(t, 3, nQuestions)

	// second run inserts nothing
	require.NoError(t, RunAllSeeds(ctx, db, "."))
	var again int64
	require.NoError(t, db.Model(&questionModel.QuestionModel{}).Count(&again).Error)
	assert.EqualValues(t, 3, again)
	require.NoError(t, db.Model(&userModel.UserModel{}).Count(&again).Error)
	assert.EqualValues(t, 2, again)
}

func TestRunAllSeeds_RejectsUnknownType(t *testing.T) {
	db := testutil.NewDB(t)
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "users"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "questions"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "users", "data_users.json"), []byte(`[]`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "questions", "data_questions.json"),
		[]byte(`[{"question_text":"Pick one","question_type":"dropdown"}]`), 0o644))

	err := RunAllSeeds(context.Background(), db, dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dropdown")

	var n int64
	require.NoError(t, db.Model(&questionModel.QuestionModel{}).Count(&n).Error)
	assert.Zero(t, n)
}
