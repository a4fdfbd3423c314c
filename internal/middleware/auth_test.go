package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"task-scheduler/internal/middleware"
	"task-scheduler/internal/models"
	"task-scheduler/internal/token"
	"task-scheduler/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.InitLoggers()
	defer logger.SyncLoggers()
	os.Exit(m.Run())
}

// probeApp mounts the middleware in front of a handler that echoes the
// claims it received through Locals.
func probeApp(tokens *token.Service) *fiber.App {
	app := fiber.New()
	app.Get("/protected", middleware.RequireToken(tokens), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"userID":   c.Locals("userID"),
			"username": c.Locals("username"),
			"email":    c.Locals("email"),
		})
	})
	return app
}

func TestRequireTokenMissingHeader(t *testing.T) {
	app := probeApp(token.NewService("test-secret", time.Hour))

	req := httptest.NewRequest("GET", "/protected", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Access token not provided", body["error"])
}

func TestRequireTokenNotBearer(t *testing.T) {
	app := probeApp(token.NewService("test-secret", time.Hour))

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireTokenInvalid(t *testing.T) {
	app := probeApp(token.NewService("test-secret", time.Hour))

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Invalid or expired token", body["error"])
}

func TestRequireTokenExpired(t *testing.T) {
	expired := token.NewService("test-secret", -time.Minute)
	signed, err := expired.Issue(&models.User{ID: 7, Username: "bob", Email: "bob@example.com"})
	require.NoError(t, err)

	app := probeApp(token.NewService("test-secret", time.Hour))
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRequireTokenValid(t *testing.T) {
	tokens := token.NewService("test-secret", time.Hour)
	signed, err := tokens.Issue(&models.User{ID: 7, Username: "bob", Email: "bob@example.com"})
	require.NoError(t, err)

	app := probeApp(tokens)
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, float64(7), body["userID"])
	assert.Equal(t, "bob", body["username"])
	assert.Equal(t, "bob@example.com", body["email"])
}
