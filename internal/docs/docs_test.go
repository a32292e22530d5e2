package docs_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"produtos/internal/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterRoutes(t *testing.T) {
	app := fiber.New()
	docs.RegisterRoutes(app)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/openapi.yaml", nil), -1)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/yaml", resp.Header.Get("Content-Type"))
	for _, path := range []string{"/produto:", "/produtos:", "/produto/{id}:"} {
		assert.Contains(t, string(body), path)
	}

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/apidocs", nil), -1)
	require.NoError(t, err)
	body, _ = io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `url: "/openapi.yaml"`)
}
