package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studydash/backend/config"
	"studydash/backend/models"
)

func progressApp(t *testing.T) *fiber.App {
	t.Helper()
	return newTestApp(t, &config.Config{})
}

func getProgress(t *testing.T, app *fiber.App) models.ProgressView {
	t.Helper()
	req := httptest.NewRequest("GET", "/api/progress", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var view models.ProgressView
	require.NoError(t, decodeJSON(resp, &view))
	return view
}

func TestGetProgressDefaults(t *testing.T) {
	app := progressApp(t)

	view := getProgress(t, app)

	assert.Equal(t, "", view.Name)
	assert.Equal(t, "Class 12 (PCM + English)", view.ClassName)
	assert.Zero(t, view.XP)
	assert.Zero(t, view.Level)
	assert.Equal(t, [7]int{}, view.WeeklyXP)
	assert.Empty(t, view.Badges)
}

func TestChapterDone(t *testing.T) {
	app := progressApp(t)

	resp := postJSON(t, app, "/api/progress/chapter", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var view models.ProgressView
	require.NoError(t, decodeJSON(resp, &view))
	assert.Equal(t, 1, view.DoneChapters)
	require.Len(t, view.Badges, 1)
	assert.Equal(t, "First Chapter", view.Badges[0].Name)

	// Survives a reload.
	assert.Equal(t, 1, getProgress(t, app).DoneChapters)
}

func TestBoostSaturatesAtHundred(t *testing.T) {
	app := progressApp(t)

	var view models.ProgressView
	for i := 0; i < 25; i++ {
		resp := postJSON(t, app, "/api/progress/boost", models.BoostRequest{Field: "focus"})
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		require.NoError(t, decodeJSON(resp, &view))
	}

	assert.Equal(t, 100, view.Focus)
	assert.Zero(t, view.Discipline)
}

func TestBoostUnknownField(t *testing.T) {
	app := progressApp(t)

	resp := postJSON(t, app, "/api/progress/boost", models.BoostRequest{Field: "stamina"})

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGrantXPAccumulates(t *testing.T) {
	app := progressApp(t)

	resp := postJSON(t, app, "/api/progress/xp", models.GrantXPRequest{Amount: 10})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var view models.ProgressView
	require.NoError(t, decodeJSON(resp, &view))
	assert.Equal(t, 10, view.XP)

	weekTotal := 0
	for _, xp := range view.WeeklyXP {
		weekTotal += xp
	}
	assert.Equal(t, 10, weekTotal)
}

func TestGrantXPNegativeIsClamped(t *testing.T) {
	app := progressApp(t)

	postJSON(t, app, "/api/progress/xp", models.GrantXPRequest{Amount: 10})
	resp := postJSON(t, app, "/api/progress/xp", models.GrantXPRequest{Amount: -999})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var view models.ProgressView
	require.NoError(t, decodeJSON(resp, &view))
	assert.Equal(t, 10, view.XP)
}

func TestUpdateProfile(t *testing.T) {
	app := progressApp(t)

	name := "Aarav"
	total := 15
	done := -3
	resp := postPut(t, app, "/api/progress", models.UpdateProfileRequest{
		Name:          &name,
		TotalChapters: &total,
		DoneChapters:  &done,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var view models.ProgressView
	require.NoError(t, decodeJSON(resp, &view))
	assert.Equal(t, "Aarav", view.Name)
	assert.Equal(t, 15, view.TotalChapters)
	assert.Zero(t, view.DoneChapters, "negative counts floor at zero")
	assert.Equal(t, 15, view.ChaptersLeft)
	// Untouched field keeps its default.
	assert.Equal(t, "Class 12 (PCM + English)", view.ClassName)
}

func postPut(t *testing.T, app *fiber.App, path string, body interface{}) *http.Response {
	t.Helper()
	return jsonRequest(t, app, "PUT", path, body)
}
