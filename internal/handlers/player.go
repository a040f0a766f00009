package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apierrors "github.com/dribbl-id/dribbl-api/internal/errors"
	"github.com/dribbl-id/dribbl-api/internal/logger"
	"github.com/dribbl-id/dribbl-api/internal/models"
	"github.com/dribbl-id/dribbl-api/internal/services"
	"github.com/gin-gonic/gin"
)

// PlayerHandler coordinates player HTTP handlers.
type PlayerHandler struct {
	playerService *services.PlayerService
}

// NewPlayerHandler creates a new PlayerHandler.
func NewPlayerHandler(playerService *services.PlayerService) *PlayerHandler {
	return &PlayerHandler{
		playerService: playerService,
	}
}

type playerRequest struct {
	FullName        string  `json:"full_name" binding:"required"`
	Team            string  `json:"team" binding:"required"`
	JerseyNumber    *int    `json:"jersey_number"`
	Position        string  `json:"position"`
	PointsPerGame   float64 `json:"points_per_game"`
	AssistsPerGame  float64 `json:"assists_per_game"`
	ReboundsPerGame float64 `json:"rebounds_per_game"`
	IsActive        *bool   `json:"is_active"`
}

func (r playerRequest) toInput() services.PlayerInput {
	position := models.Position(r.Position)
	if r.Position == "" {
		position = models.PositionSG
	}
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return services.PlayerInput{
		FullName:        r.FullName,
		Team:            r.Team,
		JerseyNumber:    r.JerseyNumber,
		Position:        position,
		PointsPerGame:   r.PointsPerGame,
		AssistsPerGame:  r.AssistsPerGame,
		ReboundsPerGame: r.ReboundsPerGame,
		IsActive:        active,
	}
}

// ListPlayers returns players, optionally filtered by team.
func (h *PlayerHandler) ListPlayers(c *gin.Context) {
	players, err := h.playerService.List(c.Query("team"))
	if err != nil {
		respondPlayerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"players": players})
}

// GetPlayer returns a single player.
func (h *PlayerHandler) GetPlayer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid player ID")
		return
	}

	player, err := h.playerService.Get(id)
	if err != nil {
		respondPlayerError(c, err)
		return
	}

	c.JSON(http.StatusOK, player)
}

// CreatePlayer stores a new player.
func (h *PlayerHandler) CreatePlayer(c *gin.Context) {
	var req playerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	player, err := h.playerService.Create(req.toInput())
	if err != nil {
		respondPlayerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, player)
}

// UpdatePlayer overwrites an existing player.
func (h *PlayerHandler) UpdatePlayer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid player ID")
		return
	}

	var req playerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	player, err := h.playerService.Update(id, req.toInput())
	if err != nil {
		respondPlayerError(c, err)
		return
	}

	c.JSON(http.StatusOK, player)
}

// DeletePlayer removes a player.
func (h *PlayerHandler) DeletePlayer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid player ID")
		return
	}

	if err := h.playerService.Delete(id); err != nil {
		respondPlayerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Player deleted successfully"})
}

func respondPlayerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrPlayerNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrNameRequired),
		errors.Is(err, services.ErrInvalidPosition):
		apierrors.BadRequest(c, err.Error())
	default:
		logger.Errorf("player handler: %v", err)
		apierrors.InternalError(c, "")
	}
}
