package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/dribbl-id/dribbl-api/internal/dto"
	"github.com/dribbl-id/dribbl-api/internal/models"
	"github.com/stretchr/testify/require"
)

func seedNews(t *testing.T, env testEnv, title string, category models.NewsCategory, authorID string, publishedAt time.Time) models.News {
	t.Helper()
	news := models.News{
		Title:    title,
		Content:  title + " content",
		Category: category,
		AuthorID: &authorID,
	}
	require.NoError(t, env.db.Create(&news).Error)
	// autoCreateTime stamps now; backdate explicitly for ordering tests.
	require.NoError(t, env.db.Model(&news).Update("published_at", publishedAt).Error)
	news.PublishedAt = publishedAt
	return news
}

func TestNewsHandler_CreateNews(t *testing.T) {
	env := setupTestEnv(t)
	admin := env.register(t, "editor", "supersecret", models.RoleAdmin)
	cookies := env.login(t, "editor", "supersecret")

	w := env.request(t, http.MethodPost, "/api/news", map[string]any{
		"title":    "Finals recap",
		"content":  "Game 7 went to overtime.",
		"category": "nba",
	}, cookies)
	require.Equal(t, http.StatusCreated, w.Code)

	var response dto.NewsDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotEmpty(t, response.ID)
	require.Equal(t, models.CategoryNBA, response.Category)
	require.NotNil(t, response.AuthorID)
	require.Equal(t, admin.ID, *response.AuthorID)
}

func TestNewsHandler_CreateNews_InvalidCategory(t *testing.T) {
	env := setupTestEnv(t)
	env.register(t, "editor", "supersecret", models.RoleAdmin)
	cookies := env.login(t, "editor", "supersecret")

	w := env.request(t, http.MethodPost, "/api/news", map[string]any{
		"title":    "Mystery league",
		"content":  "Content",
		"category": "cricket",
	}, cookies)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNewsHandler_ListNews_FilterAndSort(t *testing.T) {
	env := setupTestEnv(t)
	admin := env.register(t, "editor", "supersecret", models.RoleAdmin)

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	seedNews(t, env, "Draft grades", models.CategoryNBA, admin.ID, base)
	seedNews(t, env, "IBL playoff bracket", models.CategoryIBL, admin.ID, base.Add(time.Hour))
	seedNews(t, env, "Asia qualifiers preview", models.CategoryFIBA, admin.ID, base.Add(2*time.Hour))

	list := func(query string) dto.NewsListResponse {
		w := env.request(t, http.MethodGet, "/api/news"+query, nil, nil)
		require.Equal(t, http.StatusOK, w.Code)
		var response dto.NewsListResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		return response
	}

	all := list("")
	require.Len(t, all.News, 3)
	require.Equal(t, int64(3), all.TotalCount)
	// Default sort is newest first.
	require.Equal(t, "Asia qualifiers preview", all.News[0].Title)

	oldest := list("?sort=oldest")
	require.Equal(t, "Draft grades", oldest.News[0].Title)

	byCategory := list("?category=ibl")
	require.Len(t, byCategory.News, 1)
	require.Equal(t, "IBL playoff bracket", byCategory.News[0].Title)

	bySearch := list("?search=playoff")
	require.Len(t, bySearch.News, 1)
	require.Equal(t, "IBL playoff bracket", bySearch.News[0].Title)

	paged := list("?limit=2&page=2")
	require.Len(t, paged.News, 1)
	require.Equal(t, int64(3), paged.TotalCount)
	require.Equal(t, 2, paged.TotalPages)
}

func TestNewsHandler_ListNews_InvalidCategory(t *testing.T) {
	env := setupTestEnv(t)

	w := env.request(t, http.MethodGet, "/api/news?category=rugby", nil, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNewsHandler_XMLFeed(t *testing.T) {
	env := setupTestEnv(t)
	admin := env.register(t, "editor", "supersecret", models.RoleAdmin)
	article := seedNews(t, env, "Trade deadline tracker", models.CategoryTransfer, admin.ID,
		time.Date(2026, 8, 15, 9, 0, 0, 0, time.UTC))

	w := env.request(t, http.MethodGet, "/api/news/xml", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Header().Get("Content-Type"), "application/xml")
	require.Contains(t, w.Body.String(), "<news_feed>")
	require.Contains(t, w.Body.String(), "<title>Trade deadline tracker</title>")

	w = env.request(t, http.MethodGet, "/api/news/"+article.ID+"/xml", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "<category>transfer</category>")
}

// A logged-in regular user must not be able to delete an article.
func TestNewsHandler_DeleteForbiddenForRegularUser(t *testing.T) {
	env := setupTestEnv(t)
	admin := env.register(t, "editor", "supersecret", models.RoleAdmin)
	env.register(t, "reader", "supersecret", models.RoleUser)
	article := seedNews(t, env, "Rookie rankings", models.CategoryAnalysis, admin.ID, time.Now())

	cookies := env.login(t, "reader", "supersecret")
	w := env.request(t, http.MethodDelete, "/api/news/"+article.ID, nil, cookies)
	require.Equal(t, http.StatusForbidden, w.Code)

	var count int64
	require.NoError(t, env.db.Model(&models.News{}).Where("id = ?", article.ID).Count(&count).Error)
	require.Equal(t, int64(1), count)
}

func TestNewsHandler_UpdateAndDelete(t *testing.T) {
	env := setupTestEnv(t)
	admin := env.register(t, "editor", "supersecret", models.RoleAdmin)
	article := seedNews(t, env, "Initial title", models.CategoryHighlight, admin.ID, time.Now())
	cookies := env.login(t, "editor", "supersecret")

	w := env.request(t, http.MethodPut, "/api/news/"+article.ID, map[string]any{
		"title":    "Corrected title",
		"content":  "Corrected content",
		"category": "highlight",
	}, cookies)
	require.Equal(t, http.StatusOK, w.Code)

	var updated dto.NewsDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	require.Equal(t, "Corrected title", updated.Title)

	w = env.request(t, http.MethodDelete, "/api/news/"+article.ID, nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.request(t, http.MethodGet, "/api/news/"+article.ID, nil, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}
