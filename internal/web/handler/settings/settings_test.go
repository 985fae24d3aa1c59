package settings

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/starfield-blog/starfield/internal/config"
	"github.com/starfield-blog/starfield/internal/db/models"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	err = db.AutoMigrate(&models.Setting{})
	require.NoError(t, err, "failed to migrate test database")

	return db
}

func setupApp(t *testing.T, db *gorm.DB) *fiber.App {
	t.Helper()

	app := fiber.New()
	service := Service{}
	err := service.Init(app, &config.Config{}, db)
	require.NoError(t, err)

	return app
}

func body(t *testing.T, resp *http.Response) string {
	t.Helper()

	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return string(b)
}

func TestGet_MissingKeyAnswersNullValue(t *testing.T) {
	app := setupApp(t, setupTestDB(t))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/settings/site_title", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"value":null}`, body(t, resp))
}

func TestSetThenGet(t *testing.T) {
	app := setupApp(t, setupTestDB(t))

	put := func(value string) *http.Response {
		req := httptest.NewRequest(http.MethodPut, "/api/settings/site_title",
			strings.NewReader(`{"value":"`+value+`"}`))
		req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)

		resp, err := app.Test(req)
		require.NoError(t, err)

		return resp
	}

	resp := put("starfield")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Last write wins.
	resp = put("nebula")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/settings/site_title", nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"value":"nebula"}`, body(t, resp))
}
