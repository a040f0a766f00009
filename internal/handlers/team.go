package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	apierrors "github.com/dribbl-id/dribbl-api/internal/errors"
	"github.com/dribbl-id/dribbl-api/internal/logger"
	"github.com/dribbl-id/dribbl-api/internal/models"
	"github.com/dribbl-id/dribbl-api/internal/services"
	"github.com/gin-gonic/gin"
)

// TeamHandler coordinates team HTTP handlers.
type TeamHandler struct {
	teamService *services.TeamService
}

// NewTeamHandler creates a new TeamHandler.
func NewTeamHandler(teamService *services.TeamService) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

type teamRequest struct {
	Name        string `json:"name" binding:"required"`
	Logo        string `json:"logo"`
	Region      string `json:"region"`
	Founded     string `json:"founded" binding:"required"` // YYYY-MM-DD
	Description string `json:"description"`
}

func (r teamRequest) toInput() (services.TeamInput, error) {
	founded, err := time.Parse("2006-01-02", r.Founded)
	if err != nil {
		return services.TeamInput{}, err
	}
	region := models.Region(r.Region)
	if r.Region == "" {
		region = models.RegionUS
	}
	return services.TeamInput{
		Name:        r.Name,
		Logo:        r.Logo,
		Region:      region,
		Founded:     founded,
		Description: r.Description,
	}, nil
}

// ListTeams returns all teams.
func (h *TeamHandler) ListTeams(c *gin.Context) {
	teams, err := h.teamService.List()
	if err != nil {
		respondTeamError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"teams": teams})
}

// GetTeam returns a single team.
func (h *TeamHandler) GetTeam(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid team ID")
		return
	}

	team, err := h.teamService.Get(id)
	if err != nil {
		respondTeamError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// CreateTeam stores a new team.
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	var req teamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}
	input, err := req.toInput()
	if err != nil {
		apierrors.BadRequest(c, "Invalid founded date, expected YYYY-MM-DD")
		return
	}

	team, err := h.teamService.Create(input)
	if err != nil {
		respondTeamError(c, err)
		return
	}

	c.JSON(http.StatusCreated, team)
}

// UpdateTeam overwrites an existing team.
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid team ID")
		return
	}

	var req teamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}
	input, err := req.toInput()
	if err != nil {
		apierrors.BadRequest(c, "Invalid founded date, expected YYYY-MM-DD")
		return
	}

	team, err := h.teamService.Update(id, input)
	if err != nil {
		respondTeamError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// DeleteTeam removes a team.
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid team ID")
		return
	}

	if err := h.teamService.Delete(id); err != nil {
		respondTeamError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Team deleted successfully"})
}

func respondTeamError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTeamNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrTeamExists):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrNameRequired),
		errors.Is(err, services.ErrInvalidRegion):
		apierrors.BadRequest(c, err.Error())
	default:
		logger.Errorf("team handler: %v", err)
		apierrors.InternalError(c, "")
	}
}
