package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"todoapi/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp() *fiber.App {
	app := fiber.New()
	app.Use(middleware.RequestID(), middleware.CORS())
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString(`{"id":"` + c.Locals(middleware.RequestIDKey).(string) + `"}`)
	})
	return app
}

func TestCORS_HeadersOnEveryResponse(t *testing.T) {
	app := newApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ping", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST, PUT, DELETE", resp.Header.Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type", resp.Header.Get("Access-Control-Allow-Headers"))
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
}

func TestRequestID(t *testing.T) {
	app := newApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ping", nil), -1)
	require.NoError(t, err)
	resp.Body.Close()
	_, err = uuid.Parse(resp.Header.Get("X-Request-ID"))
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "abc-123", resp.Header.Get("X-Request-ID"))
}
