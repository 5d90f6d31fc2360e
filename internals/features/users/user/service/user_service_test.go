package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"surveyku_backend/internals/constants"
	authHelper "surveyku_backend/internals/features/users/auth/helper"
	"surveyku_backend/internals/features/users/user/dto"
	"surveyku_backend/internals/features/users/user/model"
	helper "surveyku_backend/internals/helpers"
	"surveyku_backend/internals/testutil"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func boolPtr(b bool) *bool    { return &b }

func TestCreateUser(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewUserService(db)
	ctx := context.Background()

	u, err := svc.Create(ctx, dto.CreateUserRequest{
		UserName: "  alice ",
		Email:    " Alice@Example.COM",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", u.UserName)
	assert.Equal(t, "alice@example.com", u.Email)
	assert.Equal(t, constants.LevelStandard, u.UserLevel)
	assert.True(t, u.IsActive)
	assert.NotEqual(t, "secret123", u.Password)
	assert.NoError(t, authHelper.CheckPasswordHash(u.Password, "secret123"))
}

func TestCreateUser_Conflicts(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewUserService(db)
	ctx := context.Background()
	testutil.SeedUser(t, db, "bob", "secret123", constants.LevelStandard, true)

	_, err := svc.Create(ctx, dto.CreateUserRequest{UserName: "bob", Email: "other@example.com", Password: "secret123"})
	assert.True(t, helper.IsConflict(err))

	_, err = svc.Create(ctx, dto.CreateUserRequest{UserName: "bobby", Email: "BOB@example.com", Password: "secret123"})
	assert.True(t, helper.IsConflict(err))

	var n int64
	require.NoError(t, db.Model(&model.UserModel{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestCreateUser_Validation(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewUserService(db)
	ctx := context.Background()

	tests := []struct {
		name string
		req  dto.CreateUserRequest
	}{
		{"blank user_name", dto.CreateUserRequest{UserName: "   ", Email: "a@example.com", Password: "secret123"}},
		{"bad email", dto.CreateUserRequest{UserName: "carol", Email: "nope", Password: "secret123"}},
		{"weak password", dto.CreateUserRequest{UserName: "carol", Email: "c@example.com", Password: "abcdefgh"}},
		{"bad level", dto.CreateUserRequest{UserName: "carol", Email: "c@example.com", Password: "secret123", UserLevel: 3003}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.req)
			assert.True(t, helper.IsValidation(err), "got %v", err)
		})
	}
}

func TestUpdateUser(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewUserService(db)
	ctx := context.Background()
	u := testutil.SeedUser(t, db, "dave", "secret123", constants.LevelStandard, true)

	got, err := svc.Update(ctx, dto.UpdateUserRequest{
		ID:        u.ID,
		FullName:  strPtr(" Dave D "),
		UserLevel: intPtr(constants.LevelAdmin),
		Password:  strPtr("newpass99"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Dave D", *got.FullName)
	assert.Equal(t, constants.LevelAdmin, got.UserLevel)
	assert.Equal(t, "dave", got.UserName)
	assert.True(t, got.IsActive)
	assert.NoError(t, authHelper.CheckPasswordHash(got.Password, "newpass99"))

	got, err = svc.Update(ctx, dto.UpdateUserRequest{ID: u.ID, IsActive: boolPtr(false)})
	require.NoError(t, err)
	assert.False(t, got.IsActive)
}

func TestUpdateUser_Errors(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewUserService(db)
	ctx := context.Background()
	a := testutil.SeedUser(t, db, "erin", "secret123", constants.LevelStandard, true)
	testutil.SeedUser(t, db, "frank", "secret123", constants.LevelStandard, true)

	_, err := svc.Update(ctx, dto.UpdateUserRequest{ID: a.ID})
	assert.True(t, helper.IsValidation(err), "nothing to update")

	_, err = svc.Update(ctx, dto.UpdateUserRequest{ID: a.ID, UserLevel: intPtr(7)})
	assert.True(t, helper.IsValidation(err))

	_, err = svc.Update(ctx, dto.UpdateUserRequest{ID: a.ID, UserName: strPtr("frank")})
	assert.True(t, helper.IsConflict(err))

	_, err = svc.Update(ctx, dto.UpdateUserRequest{ID: a.ID, Email: strPtr("FRANK@example.com")})
	assert.True(t, helper.IsConflict(err))

	// renaming to its own name is not a conflict
	_, err = svc.Update(ctx, dto.UpdateUserRequest{ID: a.ID, UserName: strPtr("erin")})
	assert.NoError(t, err)

	other := testutil.SeedUser(t, db, "gina", "secret123", constants.LevelStandard, true)
	require.NoError(t, db.Delete(&model.UserModel{}, "id = ?", other.ID).Error)
	_, err = svc.Update(ctx, dto.UpdateUserRequest{ID: other.ID, FullName: strPtr("x")})
	assert.True(t, helper.IsNotFound(err))

	reloaded, err := svc.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "erin", reloaded.UserName)
	assert.Equal(t, "erin@example.com", reloaded.Email)
}

func TestListUsers(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewUserService(db)
	ctx := context.Background()
	testutil.SeedUser(t, db, "admin1", "secret123", constants.LevelAdmin, true)
	testutil.SeedUser(t, db, "user1", "secret123", constants.LevelStandard, true)
	testutil.SeedUser(t, db, "user2", "secret123", constants.LevelStandard, false)

	page := helper.Params{Page: 1, PerPage: 10}

	all, total, err := svc.List(ctx, dto.ListUsersQuery{Paging: page})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, all, 3)

	active, total, err := svc.List(ctx, dto.ListUsersQuery{Active: boolPtr(true), Level: constants.LevelStandard, Paging: page})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, active, 1)
	assert.Equal(t, "user1", active[0].UserName)

	found, _, err := svc.List(ctx, dto.ListUsersQuery{Q: "ADMIN", Paging: page})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "admin1", found[0].UserName)

	small, total, err := svc.List(ctx, dto.ListUsersQuery{Paging: helper.Params{Page: 2, PerPage: 2}})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, small, 1)

	_, _, err = svc.List(ctx, dto.ListUsersQuery{Level: 5, Paging: page})
	assert.True(t, helper.IsValidation(err))
}

func TestMigrateLevels(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewUserService(db)
	ctx := context.Background()
	legacy := testutil.SeedUser(t, db, "legacy", "secret123", 0, true)
	boss := testutil.SeedUser(t, db, "boss", "secret123", constants.LevelStandard, true)
	plain := testutil.SeedUser(t, db, "plain", "secret123", constants.LevelStandard, true)

	res, err := svc.MigrateLevels(ctx, dto.MigrateLevelsRequest{AdminUserNames: []string{" boss ", "", "ghost"}})
	require.NoError(t, err)
	assert.EqualValues(t, 1, res.NormalizedToStandard)
	assert.EqualValues(t, 1, res.PromotedToAdmin)

	for id, want := range map[string]int{
		legacy.ID.String(): constants.LevelStandard,
		boss.ID.String():   constants.LevelAdmin,
		plain.ID.String():  constants.LevelStandard,
	} {
		var u model.UserModel
		require.NoError(t, db.First(&u, "id = ?", id).Error)
		assert.Equal(t, want, u.UserLevel, u.UserName)
	}

	// second run changes nothing
	res, err = svc.MigrateLevels(ctx, dto.MigrateLevelsRequest{AdminUserNames: []string{"boss"}})
	require.NoError(t, err)
	assert.Zero(t, res.NormalizedToStandard)
	assert.Zero(t, res.PromotedToAdmin)
}
