package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"produtos/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertCORSHeaders(t *testing.T, resp *http.Response) {
	t.Helper()
	assert.Equal(t, "*", resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
	assert.Equal(t, "Content-Type,Authorization", resp.Header.Get(fiber.HeaderAccessControlAllowHeaders))
	assert.Equal(t, "GET,POST,PUT,DELETE", resp.Header.Get(fiber.HeaderAccessControlAllowMethods))
}

func TestCORS(t *testing.T) {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		},
	})
	app.Use(middleware.CORS(middleware.DefaultCORSConfig))
	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "ok"})
	})
	app.Get("/fail", func(c *fiber.Ctx) error {
		return errors.New("boom")
	})

	t.Run("plain response", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ok", nil), -1)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assertCORSHeaders(t, resp)
	})

	t.Run("error response", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/fail", nil), -1)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assertCORSHeaders(t, resp)
	})

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/ok", nil)
		req.Header.Set("Origin", "http://example.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodPut)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		assertCORSHeaders(t, resp)
	})
}
