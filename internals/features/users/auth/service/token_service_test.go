package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"surveyku_backend/internals/constants"
	userModel "surveyku_backend/internals/features/users/user/model"
)

func TestTokenService_IssueAndParse(t *testing.T) {
	ts := NewTokenService(testSecret, time.Hour)
	u := &userModel.UserModel{ID: uuid.New(), UserName: "alice", UserLevel: constants.LevelAdmin}

	raw, exp, err := ts.Issue(u)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, id, err := ts.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, u.ID, id)
	assert.Equal(t, "alice", claims.UserName)
	assert.Equal(t, constants.LevelAdmin, claims.Level)
}

func TestTokenService_Rejects(t *testing.T) {
	ts := NewTokenService(testSecret, time.Hour)
	u := &userModel.UserModel{ID: uuid.New(), UserName: "alice", UserLevel: constants.LevelStandard}

	t.Run("wrong secret", func(t *testing.T) {
		raw, _, err := NewTokenService("another-secret-another-secret-xx", time.Hour).Issue(u)
		require.NoError(t, err)
		_, _, err = ts.Parse(raw)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		old := NewTokenService(testSecret, time.Hour)
		old.Now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		raw, _, err := old.Issue(u)
		require.NoError(t, err)
		_, _, err = ts.Parse(raw)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("other algorithm", func(t *testing.T) {
		claims := AccessClaims{
			Level:            constants.LevelAdmin,
			RegisteredClaims: jwt.RegisteredClaims{Subject: u.ID.String(), ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
		}
		raw, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)
		_, _, err = ts.Parse(raw)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, _, err := ts.Parse("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
