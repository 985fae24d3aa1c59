package links

import (
	"encoding/json"
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

	err = db.AutoMigrate(&models.Link{})
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

func doJSON(t *testing.T, app *fiber.App, method, target, body string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	return resp
}

func TestCreate(t *testing.T) {
	db := setupTestDB(t)
	app := setupApp(t, db)

	t.Run("valid link", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/links",
			`{"name":"friend","url":"https://friend.example.com","position":2}`)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var row models.Link
		require.NoError(t, db.First(&row).Error)
		assert.Equal(t, "friend", row.Name)
		assert.Equal(t, 2, row.Position)
	})

	t.Run("url must parse", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/links",
			`{"name":"broken","url":"not a url"}`)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestList_PositionOrder(t *testing.T) {
	db := setupTestDB(t)
	app := setupApp(t, db)

	seed := []models.Link{
		{Name: "third", URL: "https://c.example.com", Position: 3},
		{Name: "first", URL: "https://a.example.com", Position: 1},
		{Name: "second", URL: "https://b.example.com", Position: 2},
	}
	for i := range seed {
		require.NoError(t, db.Create(&seed[i]).Error)
	}

	resp := doJSON(t, app, http.MethodGet, "/api/links", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	defer func() {
		_ = resp.Body.Close()
	}()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var rows []models.Link
	require.NoError(t, json.Unmarshal(body, &rows))
	require.Len(t, rows, 3)
	assert.Equal(t, "first", rows[0].Name)
	assert.Equal(t, "second", rows[1].Name)
	assert.Equal(t, "third", rows[2].Name)
}
