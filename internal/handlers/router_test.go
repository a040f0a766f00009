package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dribbl-id/dribbl-api/internal/constants"
	"github.com/dribbl-id/dribbl-api/internal/database"
	"github.com/dribbl-id/dribbl-api/internal/middleware"
	"github.com/dribbl-id/dribbl-api/internal/models"
	"github.com/dribbl-id/dribbl-api/internal/repository"
	"github.com/dribbl-id/dribbl-api/internal/services"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// testEnv wires the full router against an in-memory database, mirroring the
// route layout of cmd/server.
type testEnv struct {
	db          *gorm.DB
	router      *gin.Engine
	authService *services.AuthService
}

func setupTestEnv(t *testing.T) testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Event{},
		&models.News{},
		&models.Team{},
		&models.Player{},
		&models.Season{},
		&models.Match{},
		&models.PlayerBoxScore{},
	))
	database.SetDB(db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	userRepo := repository.NewUserRepository(db)
	authService := services.NewAuthService(userRepo)

	authHandler := NewAuthHandler(authService)
	eventHandler := NewEventHandler(services.NewEventService(repository.NewEventRepository(db)))
	newsHandler := NewNewsHandler(services.NewNewsService(repository.NewNewsRepository(db)))
	teamHandler := NewTeamHandler(services.NewTeamService(repository.NewTeamRepository(db)))
	playerHandler := NewPlayerHandler(services.NewPlayerService(repository.NewPlayerRepository(db)))
	matchHandler := NewMatchHandler(services.NewMatchService(
		repository.NewMatchRepository(db),
		repository.NewSeasonRepository(db),
		repository.NewPlayerRepository(db),
	))

	r := gin.New()
	store := cookie.NewStore([]byte("secret"))
	r.Use(sessions.Sessions(constants.SessionCookieName, store))
	r.Use(middleware.ResolveIdentity())

	auth := r.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authHandler.Logout)
		auth.GET("/me", middleware.RequireAuth(), authHandler.GetCurrentUser)
	}

	admin := middleware.RequireRole(models.RoleAdmin)

	api := r.Group("/api")
	{
		events := api.Group("/events")
		{
			events.GET("", eventHandler.ListEvents)
			events.GET("/:id", eventHandler.GetEvent)
			events.POST("", middleware.RequireAuth(), admin, eventHandler.CreateEvent)
			events.PUT("/:id", middleware.RequireAuth(), admin, eventHandler.UpdateEvent)
			events.DELETE("/:id", middleware.RequireAuth(), admin, eventHandler.DeleteEvent)
		}
		news := api.Group("/news")
		{
			news.GET("", newsHandler.ListNews)
			news.GET("/xml", newsHandler.ListNewsXML)
			news.GET("/:id", newsHandler.GetNews)
			news.GET("/:id/xml", newsHandler.GetNewsXML)
			news.POST("", middleware.RequireAuth(), admin, newsHandler.CreateNews)
			news.PUT("/:id", middleware.RequireAuth(), admin, newsHandler.UpdateNews)
			news.DELETE("/:id", middleware.RequireAuth(), admin, newsHandler.DeleteNews)
		}
		teams := api.Group("/teams")
		{
			teams.GET("", teamHandler.ListTeams)
			teams.GET("/:id", teamHandler.GetTeam)
			teams.POST("", middleware.RequireAuth(), admin, teamHandler.CreateTeam)
			teams.PUT("/:id", middleware.RequireAuth(), admin, teamHandler.UpdateTeam)
			teams.DELETE("/:id", middleware.RequireAuth(), admin, teamHandler.DeleteTeam)
		}
		players := api.Group("/players")
		{
			players.GET("", playerHandler.ListPlayers)
			players.GET("/:id", playerHandler.GetPlayer)
			players.POST("", middleware.RequireAuth(), admin, playerHandler.CreatePlayer)
			players.PUT("/:id", middleware.RequireAuth(), admin, playerHandler.UpdatePlayer)
			players.DELETE("/:id", middleware.RequireAuth(), admin, playerHandler.DeletePlayer)
		}
		matches := api.Group("/matches")
		{
			matches.GET("", matchHandler.ListMatches)
			matches.GET("/schedule", matchHandler.Schedule)
			matches.GET("/results", matchHandler.Results)
			matches.GET("/:id", matchHandler.GetMatch)
			matches.GET("/:id/boxscores", matchHandler.ListBoxScores)
			matches.POST("", middleware.RequireAuth(), admin, matchHandler.CreateMatch)
			matches.PUT("/:id", middleware.RequireAuth(), admin, matchHandler.UpdateMatch)
			matches.PUT("/:id/score", middleware.RequireAuth(), admin, matchHandler.UpdateScore)
			matches.PUT("/:id/boxscores", middleware.RequireAuth(), admin, matchHandler.SaveBoxScore)
			matches.DELETE("/:id", middleware.RequireAuth(), admin, matchHandler.DeleteMatch)
		}
		seasons := api.Group("/seasons")
		{
			seasons.GET("", matchHandler.ListSeasons)
			seasons.POST("", middleware.RequireAuth(), admin, matchHandler.CreateSeason)
			seasons.DELETE("/:id", middleware.RequireAuth(), admin, matchHandler.DeleteSeason)
		}
	}

	return testEnv{
		db:          db,
		router:      r,
		authService: authService,
	}
}

// register creates a user directly through the service.
func (env testEnv) register(t *testing.T, username, password string, role models.Role) *models.User {
	t.Helper()
	user, err := env.authService.Register(services.RegisterInput{
		Username: username,
		Password: password,
		Role:     role,
	})
	require.NoError(t, err)
	return user
}

// login performs a real login request and returns the session cookies.
func (env testEnv) login(t *testing.T, username, password string) []*http.Cookie {
	t.Helper()
	w := env.request(t, http.MethodPost, "/auth/login", map[string]any{
		"username": username,
		"password": password,
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	return cookies
}

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	date, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return date
}

// request sends a JSON request through the router.
func (env testEnv) request(t *testing.T, method, path string, body any, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}
