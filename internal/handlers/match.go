package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/dribbl-id/dribbl-api/internal/dto"
	apierrors "github.com/dribbl-id/dribbl-api/internal/errors"
	"github.com/dribbl-id/dribbl-api/internal/logger"
	"github.com/dribbl-id/dribbl-api/internal/models"
	"github.com/dribbl-id/dribbl-api/internal/repository"
	"github.com/dribbl-id/dribbl-api/internal/services"
	"github.com/dribbl-id/dribbl-api/internal/utils"
	"github.com/gin-gonic/gin"
)

// MatchHandler coordinates match, season, and box score HTTP handlers.
type MatchHandler struct {
	matchService *services.MatchService
}

// NewMatchHandler creates a new MatchHandler.
func NewMatchHandler(matchService *services.MatchService) *MatchHandler {
	return &MatchHandler{
		matchService: matchService,
	}
}

func matchFilterFromQuery(c *gin.Context) repository.MatchFilter {
	filter := repository.MatchFilter{
		Query: c.Query("q"),
		Page:  utils.GetPaginationParams(c),
	}
	if status := c.Query("status"); status != "" {
		s := models.MatchStatus(status)
		filter.Status = &s
	}
	return filter
}

// ListMatches returns matches filtered by free-text query and status.
func (h *MatchHandler) ListMatches(c *gin.Context) {
	filter := matchFilterFromQuery(c)

	matches, total, err := h.matchService.List(filter)
	if err != nil {
		respondMatchError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMatchListResponse(matches, filter.Page.Page, filter.Page.Limit, total))
}

// Schedule returns upcoming matches ordered by tipoff.
func (h *MatchHandler) Schedule(c *gin.Context) {
	filter := matchFilterFromQuery(c)

	matches, total, err := h.matchService.Schedule(filter.Query, filter)
	if err != nil {
		respondMatchError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMatchListResponse(matches, filter.Page.Page, filter.Page.Limit, total))
}

// Results returns finished matches, most recent first.
func (h *MatchHandler) Results(c *gin.Context) {
	filter := matchFilterFromQuery(c)

	matches, total, err := h.matchService.Results(filter.Query, filter)
	if err != nil {
		respondMatchError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMatchListResponse(matches, filter.Page.Page, filter.Page.Limit, total))
}

// GetMatch returns a single match, addressed by numeric ID or public UUID.
func (h *MatchHandler) GetMatch(c *gin.Context) {
	var match *models.Match
	if id, err := strconv.ParseUint(c.Param("id"), 10, 64); err == nil {
		match, err = h.matchService.Get(id)
		if err != nil {
			respondMatchError(c, err)
			return
		}
	} else {
		match, err = h.matchService.GetByUUID(c.Param("id"))
		if err != nil {
			respondMatchError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, dto.ToMatchDTO(*match))
}

type matchRequest struct {
	SeasonID *uint64 `json:"season_id"`
	HomeTeam string  `json:"home_team" binding:"required"`
	AwayTeam string  `json:"away_team" binding:"required"`
	TipoffAt string  `json:"tipoff_at" binding:"required"` // RFC 3339
	Venue    string  `json:"venue"`
	ImageURL string  `json:"image_url"`
	Status   string  `json:"status"`
}

func (r matchRequest) toInput() (services.MatchInput, error) {
	tipoff, err := time.Parse(time.RFC3339, r.TipoffAt)
	if err != nil {
		return services.MatchInput{}, err
	}
	return services.MatchInput{
		SeasonID: r.SeasonID,
		HomeTeam: r.HomeTeam,
		AwayTeam: r.AwayTeam,
		TipoffAt: tipoff,
		Venue:    r.Venue,
		ImageURL: r.ImageURL,
		Status:   models.MatchStatus(r.Status),
	}, nil
}

// CreateMatch schedules a new match.
func (h *MatchHandler) CreateMatch(c *gin.Context) {
	var req matchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}
	input, err := req.toInput()
	if err != nil {
		apierrors.BadRequest(c, "Invalid tipoff_at, expected RFC 3339")
		return
	}

	match, err := h.matchService.Create(input)
	if err != nil {
		respondMatchError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToMatchDTO(*match))
}

// UpdateMatch overwrites the scheduling fields of a match.
func (h *MatchHandler) UpdateMatch(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid match ID")
		return
	}

	var req matchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}
	input, err := req.toInput()
	if err != nil {
		apierrors.BadRequest(c, "Invalid tipoff_at, expected RFC 3339")
		return
	}

	match, err := h.matchService.Update(id, input)
	if err != nil {
		respondMatchError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMatchDTO(*match))
}

// UpdateScore replaces a match's period scores; totals are recomputed
// server-side and never accepted from the client.
func (h *MatchHandler) UpdateScore(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid match ID")
		return
	}

	type scoreRequest struct {
		Q1Home  *int   `json:"q1_home"`
		Q1Away  *int   `json:"q1_away"`
		Q2Home  *int   `json:"q2_home"`
		Q2Away  *int   `json:"q2_away"`
		Q3Home  *int   `json:"q3_home"`
		Q3Away  *int   `json:"q3_away"`
		Q4Home  *int   `json:"q4_home"`
		Q4Away  *int   `json:"q4_away"`
		OT1Home *int   `json:"ot1_home"`
		OT1Away *int   `json:"ot1_away"`
		OT2Home *int   `json:"ot2_home"`
		OT2Away *int   `json:"ot2_away"`
		OT3Home *int   `json:"ot3_home"`
		OT3Away *int   `json:"ot3_away"`
		Status  string `json:"status"`
	}

	var req scoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	match, err := h.matchService.UpdateScore(id, services.ScoreInput{
		Q1Home: req.Q1Home, Q1Away: req.Q1Away,
		Q2Home: req.Q2Home, Q2Away: req.Q2Away,
		Q3Home: req.Q3Home, Q3Away: req.Q3Away,
		Q4Home: req.Q4Home, Q4Away: req.Q4Away,
		OT1Home: req.OT1Home, OT1Away: req.OT1Away,
		OT2Home: req.OT2Home, OT2Away: req.OT2Away,
		OT3Home: req.OT3Home, OT3Away: req.OT3Away,
		Status: models.MatchStatus(req.Status),
	})
	if err != nil {
		respondMatchError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMatchDTO(*match))
}

// DeleteMatch removes a match and its box scores.
func (h *MatchHandler) DeleteMatch(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid match ID")
		return
	}

	if err := h.matchService.Delete(id); err != nil {
		respondMatchError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Match deleted successfully"})
}

// ListBoxScores returns all stat lines for a match.
func (h *MatchHandler) ListBoxScores(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid match ID")
		return
	}

	scores, err := h.matchService.ListBoxScores(id)
	if err != nil {
		respondMatchError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"box_scores": dto.ToBoxScoreDTOs(scores)})
}

// SaveBoxScore creates or replaces one player's stat line for a match.
func (h *MatchHandler) SaveBoxScore(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid match ID")
		return
	}

	type boxScoreRequest struct {
		PlayerID  uint64  `json:"player_id" binding:"required"`
		Team      string  `json:"team" binding:"required"`
		IsStarter bool    `json:"is_starter"`
		Minutes   float64 `json:"minutes"`
		Points    int     `json:"pts"`
		Rebounds  int     `json:"reb"`
		Assists   int     `json:"ast"`
		Steals    int     `json:"stl"`
		Blocks    int     `json:"blk"`
		Turnovers int     `json:"tov"`
		Fouls     int     `json:"pf"`
		FGMade    int     `json:"fg_made"`
		FGAtt     int     `json:"fg_att"`
		TPMade    int     `json:"tp_made"`
		TPAtt     int     `json:"tp_att"`
		FTMade    int     `json:"ft_made"`
		FTAtt     int     `json:"ft_att"`
		PlusMinus int     `json:"plus_minus"`
	}

	var req boxScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	score, err := h.matchService.SaveBoxScore(id, services.BoxScoreInput{
		PlayerID:  req.PlayerID,
		Team:      req.Team,
		IsStarter: req.IsStarter,
		Minutes:   req.Minutes,
		Points:    req.Points,
		Rebounds:  req.Rebounds,
		Assists:   req.Assists,
		Steals:    req.Steals,
		Blocks:    req.Blocks,
		Turnovers: req.Turnovers,
		Fouls:     req.Fouls,
		FGMade:    req.FGMade,
		FGAtt:     req.FGAtt,
		TPMade:    req.TPMade,
		TPAtt:     req.TPAtt,
		FTMade:    req.FTMade,
		FTAtt:     req.FTAtt,
		PlusMinus: req.PlusMinus,
	})
	if err != nil {
		respondMatchError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBoxScoreDTO(*score))
}

// ListSeasons returns all seasons.
func (h *MatchHandler) ListSeasons(c *gin.Context) {
	seasons, err := h.matchService.ListSeasons()
	if err != nil {
		respondMatchError(c, err)
		return
	}

	dtos := make([]dto.SeasonDTO, len(seasons))
	for i, season := range seasons {
		dtos[i] = dto.ToSeasonDTO(season)
	}
	c.JSON(http.StatusOK, gin.H{"seasons": dtos})
}

// CreateSeason stores a new season.
func (h *MatchHandler) CreateSeason(c *gin.Context) {
	type seasonRequest struct {
		Name      string `json:"name" binding:"required"`
		StartDate string `json:"start_date" binding:"required"` // YYYY-MM-DD
		EndDate   string `json:"end_date" binding:"required"`   // YYYY-MM-DD
	}

	var req seasonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		apierrors.BadRequest(c, "Invalid start_date, expected YYYY-MM-DD")
		return
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		apierrors.BadRequest(c, "Invalid end_date, expected YYYY-MM-DD")
		return
	}

	season, err := h.matchService.CreateSeason(services.SeasonInput{
		Name:      req.Name,
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		respondMatchError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToSeasonDTO(*season))
}

// DeleteSeason removes a season, detaching its matches.
func (h *MatchHandler) DeleteSeason(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid season ID")
		return
	}

	if err := h.matchService.DeleteSeason(id); err != nil {
		respondMatchError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Season deleted successfully"})
}

func respondMatchError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrMatchNotFound),
		errors.Is(err, services.ErrSeasonNotFound),
		errors.Is(err, services.ErrPlayerNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrSameTeams),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrNegativeScore),
		errors.Is(err, services.ErrNameRequired):
		apierrors.BadRequest(c, err.Error())
	default:
		logger.Errorf("match handler: %v", err)
		apierrors.InternalError(c, "")
	}
}
