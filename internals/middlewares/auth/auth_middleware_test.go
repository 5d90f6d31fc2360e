package auth

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"surveyku_backend/internals/constants"
	authService "surveyku_backend/internals/features/users/auth/service"
	userModel "surveyku_backend/internals/features/users/user/model"
	helper "surveyku_backend/internals/helpers"
)

const testSecret = "this-is-a-test-secret-with-32-bytes!"

func newApp(tokens *authService.TokenService) *fiber.App {
	app := fiber.New()
	api := app.Group("/api", AuthJWT(tokens))
	api.Get("/whoami", func(c *fiber.Ctx) error {
		id, err := helper.GetUserIDFromToken(c)
		if err != nil {
			return helper.FromError(c, err)
		}
		return c.JSON(fiber.Map{"id": id.String(), "level": helper.GetUserLevel(c)})
	})
	admin := api.Group("/admin", RequireAdmin())
	admin.Get("/ping", func(c *fiber.Ctx) error { return c.SendString("pong") })
	return app
}

func issue(t *testing.T, ts *authService.TokenService, level int) (string, uuid.UUID) {
	t.Helper()
	u := &userModel.UserModel{ID: uuid.New(), UserName: "u", UserLevel: level}
	raw, _, err := ts.Issue(u)
	require.NoError(t, err)
	return raw, u.ID
}

func decode(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	out := map[string]any{}
	require.NoError(t, sonic.Unmarshal(b, &out))
	return out
}

func TestAuthJWT(t *testing.T) {
	ts := authService.NewTokenService(testSecret, time.Hour)
	app := newApp(ts)
	raw, id := issue(t, ts, constants.LevelStandard)

	t.Run("no token", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/whoami", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		body := decode(t, resp)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "UNAUTHORIZED", body["error_code"])
	})

	t.Run("bearer header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+raw)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		body := decode(t, resp)
		assert.Equal(t, id.String(), body["id"])
		assert.EqualValues(t, constants.LevelStandard, body["level"])
	})

	t.Run("cookie fallback", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/whoami", nil)
		req.AddCookie(&http.Cookie{Name: helper.AccessTokenCookie, Value: raw})
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("tampered token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+raw+"x")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}

func TestRequireAdmin(t *testing.T) {
	ts := authService.NewTokenService(testSecret, time.Hour)
	app := newApp(ts)

	std, _ := issue(t, ts, constants.LevelStandard)
	adm, _ := issue(t, ts, constants.LevelAdmin)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+std)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "FORBIDDEN", decode(t, resp)["error_code"])

	req = httptest.NewRequest(http.MethodGet, "/api/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+adm)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
