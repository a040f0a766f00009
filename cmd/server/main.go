package main

import (
	"log"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/dribbl-id/dribbl-api/internal/config"
	"github.com/dribbl-id/dribbl-api/internal/constants"
	"github.com/dribbl-id/dribbl-api/internal/database"
	"github.com/dribbl-id/dribbl-api/internal/handlers"
	"github.com/dribbl-id/dribbl-api/internal/logger"
	"github.com/dribbl-id/dribbl-api/internal/middleware"
	"github.com/dribbl-id/dribbl-api/internal/models"
	"github.com/dribbl-id/dribbl-api/internal/repository"
	"github.com/dribbl-id/dribbl-api/internal/services"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg := config.Load()
	logger.Init(cfg.LogLevel)

	gin.SetMode(cfg.GinMode)

	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	r := gin.Default()

	store, err := sessionStore(cfg)
	if err != nil {
		log.Fatalf("Failed to create session store: %v", err)
	}
	r.Use(sessions.Sessions(constants.SessionCookieName, store))
	r.Use(middleware.ResolveIdentity())

	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	eventRepo := repository.NewEventRepository(db)
	newsRepo := repository.NewNewsRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	playerRepo := repository.NewPlayerRepository(db)
	matchRepo := repository.NewMatchRepository(db)
	seasonRepo := repository.NewSeasonRepository(db)

	authHandler := handlers.NewAuthHandler(services.NewAuthService(userRepo))
	eventHandler := handlers.NewEventHandler(services.NewEventService(eventRepo))
	newsHandler := handlers.NewNewsHandler(services.NewNewsService(newsRepo))
	teamHandler := handlers.NewTeamHandler(services.NewTeamService(teamRepo))
	playerHandler := handlers.NewPlayerHandler(services.NewPlayerService(playerRepo))
	matchHandler := handlers.NewMatchHandler(services.NewMatchService(matchRepo, seasonRepo, playerRepo))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "DRIBBL.ID API is running",
		})
	})

	// Auth routes (public)
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

	logger.Infof("server starting on %s", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// sessionStore builds the session backend: Redis when configured, an
// in-process cookie store otherwise.
func sessionStore(cfg *config.Config) (sessions.Store, error) {
	isProduction := cfg.GinMode == "release"
	options := sessions.Options{
		Path:     "/",
		MaxAge:   constants.SessionMaxAge,
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: 2, // SameSite=Lax (1=Strict, 2=Lax, 3=None)
	}

	if cfg.RedisHost != "" {
		store, err := redisStore.NewStore(
			10,
			"tcp",
			cfg.RedisHost+":"+cfg.RedisPort,
			"", // username (empty for default user)
			"", // password (empty = no password)
			[]byte(cfg.SessionSecret),
		)
		if err != nil {
			return nil, err
		}
		store.Options(options)
		return store, nil
	}

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(options)
	return store, nil
}
