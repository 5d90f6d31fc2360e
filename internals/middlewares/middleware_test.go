package middlewares

import (
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helper "surveyku_backend/internals/helpers"
	"surveyku_backend/internals/helpers/redisstore"
)

func TestSetupMiddlewares(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: helper.ErrorHandler})
	SetupMiddlewares(app)

	var hasDeadline bool
	app.Get("/ok", func(c *fiber.Ctx) error {
		_, hasDeadline = c.UserContext().Deadline()
		return c.SendString("ok")
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		panic("boom")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/ok", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))
	assert.True(t, hasDeadline)

	req := httptest.NewRequest("GET", "/ok", nil)
	req.Header.Set(fiber.HeaderXRequestID, "given-id")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "given-id", resp.Header.Get(fiber.HeaderXRequestID))

	resp, err = app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func limitedApp(h fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Post("/login", h, func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })
	return app
}

func hit(t *testing.T, app *fiber.App) int {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("POST", "/login", nil))
	require.NoError(t, err)
	return resp.StatusCode
}

func TestLoginRateLimiter_Memory(t *testing.T) {
	app := limitedApp(LoginRateLimiter())
	for i := 0; i < 5; i++ {
		assert.Equal(t, fiber.StatusNoContent, hit(t, app))
	}
	assert.Equal(t, fiber.StatusTooManyRequests, hit(t, app))
}

func TestForgotPasswordRateLimiter_SharedRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	store, err := redisstore.NewFromURL("redis://"+mr.Addr(), "test:limiter:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	LimiterStorage = store
	t.Cleanup(func() { LimiterStorage = nil })

	// two instances sharing one store see the same counter
	a := limitedApp(ForgotPasswordRateLimiter())
	b := limitedApp(ForgotPasswordRateLimiter())
	assert.Equal(t, fiber.StatusNoContent, hit(t, a))
	assert.Equal(t, fiber.StatusNoContent, hit(t, b))
	assert.Equal(t, fiber.StatusTooManyRequests, hit(t, a))
	assert.NotEmpty(t, mr.Keys())
}
