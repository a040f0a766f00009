package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/dribbl-id/dribbl-api/internal/dto"
	"github.com/dribbl-id/dribbl-api/internal/models"
	"github.com/stretchr/testify/require"
)

func TestEventHandler_CreateEvent(t *testing.T) {
	env := setupTestEnv(t)
	admin := env.register(t, "admin", "supersecret", models.RoleAdmin)
	cookies := env.login(t, "admin", "supersecret")

	w := env.request(t, http.MethodPost, "/api/events", map[string]any{
		"title":     "3x3 Tournament",
		"date":      "2026-09-12",
		"time":      "18:30",
		"location":  "GOR Soemantri",
		"is_public": true,
	}, cookies)
	require.Equal(t, http.StatusCreated, w.Code)

	var response dto.EventDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "3x3 Tournament", response.Title)
	require.Equal(t, "2026-09-12", response.Date)
	require.Equal(t, admin.ID, response.CreatedByID)
}

func TestEventHandler_CreateEvent_InvalidDate(t *testing.T) {
	env := setupTestEnv(t)
	env.register(t, "admin", "supersecret", models.RoleAdmin)
	cookies := env.login(t, "admin", "supersecret")

	w := env.request(t, http.MethodPost, "/api/events", map[string]any{
		"title": "Bad date",
		"date":  "12-09-2026",
	}, cookies)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEventHandler_ListEvents_Visibility(t *testing.T) {
	env := setupTestEnv(t)
	admin := env.register(t, "admin", "supersecret", models.RoleAdmin)
	env.register(t, "member", "supersecret", models.RoleUser)

	seed := func(title string, public bool) {
		require.NoError(t, env.db.Create(&models.Event{
			Title:       title,
			Date:        mustDate(t, "2026-09-12"),
			IsPublic:    public,
			CreatedByID: admin.ID,
		}).Error)
	}
	seed("Open run", true)
	seed("Committee meeting", false)

	listTitles := func(cookies []*http.Cookie) []string {
		w := env.request(t, http.MethodGet, "/api/events", nil, cookies)
		require.Equal(t, http.StatusOK, w.Code)
		var response struct {
			Events []dto.EventDTO `json:"events"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		titles := make([]string, len(response.Events))
		for i, e := range response.Events {
			titles[i] = e.Title
		}
		return titles
	}

	// Anonymous and regular users only see public events.
	require.ElementsMatch(t, []string{"Open run"}, listTitles(nil))
	require.ElementsMatch(t, []string{"Open run"}, listTitles(env.login(t, "member", "supersecret")))

	// Admins see everything.
	require.ElementsMatch(t, []string{"Open run", "Committee meeting"},
		listTitles(env.login(t, "admin", "supersecret")))
}

func TestEventHandler_GetEvent_PrivateHiddenFromNonAdmins(t *testing.T) {
	env := setupTestEnv(t)
	admin := env.register(t, "admin", "supersecret", models.RoleAdmin)
	env.register(t, "member", "supersecret", models.RoleUser)

	event := models.Event{
		Title:       "Internal scrimmage",
		Date:        mustDate(t, "2026-09-12"),
		IsPublic:    false,
		CreatedByID: admin.ID,
	}
	require.NoError(t, env.db.Create(&event).Error)
	path := fmt.Sprintf("/api/events/%d", event.ID)

	// A private event answers as if it did not exist.
	w := env.request(t, http.MethodGet, path, nil, nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = env.request(t, http.MethodGet, path, nil, env.login(t, "member", "supersecret"))
	require.Equal(t, http.StatusNotFound, w.Code)

	w = env.request(t, http.MethodGet, path, nil, env.login(t, "admin", "supersecret"))
	require.Equal(t, http.StatusOK, w.Code)
}

// Create an event as admin, log out, and confirm the anonymous update is
// rejected without touching the row.
func TestEventHandler_UpdateAfterLogoutIsRejected(t *testing.T) {
	env := setupTestEnv(t)
	env.register(t, "admin", "supersecret", models.RoleAdmin)
	cookies := env.login(t, "admin", "supersecret")

	w := env.request(t, http.MethodPost, "/api/events", map[string]any{
		"title":     "Season opener",
		"date":      "2026-10-01",
		"is_public": true,
	}, cookies)
	require.Equal(t, http.StatusCreated, w.Code)
	var created dto.EventDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = env.request(t, http.MethodPost, "/auth/logout", nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)
	expired := w.Result().Cookies()

	w = env.request(t, http.MethodPut, fmt.Sprintf("/api/events/%d", created.ID), map[string]any{
		"title": "Hijacked",
		"date":  "2026-10-01",
	}, expired)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	var stored models.Event
	require.NoError(t, env.db.First(&stored, created.ID).Error)
	require.Equal(t, "Season opener", stored.Title)
}

func TestEventHandler_DeleteEvent(t *testing.T) {
	env := setupTestEnv(t)
	admin := env.register(t, "admin", "supersecret", models.RoleAdmin)
	cookies := env.login(t, "admin", "supersecret")

	event := models.Event{
		Title:       "To be canceled",
		Date:        mustDate(t, "2026-11-05"),
		IsPublic:    true,
		CreatedByID: admin.ID,
	}
	require.NoError(t, env.db.Create(&event).Error)

	w := env.request(t, http.MethodDelete, fmt.Sprintf("/api/events/%d", event.ID), nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.request(t, http.MethodDelete, "/api/events/99999", nil, cookies)
	require.Equal(t, http.StatusNotFound, w.Code)
}
