package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dribbl-id/dribbl-api/internal/models"
	"github.com/dribbl-id/dribbl-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrMatchNotFound  = errors.New("match not found")
	ErrSeasonNotFound = errors.New("season not found")
	ErrSameTeams      = errors.New("home and away team must differ")
	ErrInvalidStatus  = errors.New("invalid match status")
	ErrNegativeScore  = errors.New("period scores must not be negative")
)

// MatchService handles match, season, and box score business logic.
type MatchService struct {
	matchRepo  repository.MatchRepository
	seasonRepo repository.SeasonRepository
	playerRepo repository.PlayerRepository
}

// NewMatchService creates a new MatchService.
func NewMatchService(matchRepo repository.MatchRepository, seasonRepo repository.SeasonRepository, playerRepo repository.PlayerRepository) *MatchService {
	return &MatchService{
		matchRepo:  matchRepo,
		seasonRepo: seasonRepo,
		playerRepo: playerRepo,
	}
}

// MatchInput carries the writable scheduling fields of a match. Scores are
// written separately through UpdateScore.
type MatchInput struct {
	SeasonID *uint64
	HomeTeam string
	AwayTeam string
	TipoffAt time.Time
	Venue    string
	ImageURL string
	Status   models.MatchStatus
}

func (in MatchInput) validate() error {
	home := strings.TrimSpace(in.HomeTeam)
	away := strings.TrimSpace(in.AwayTeam)
	if home == "" || away == "" {
		return ErrNameRequired
	}
	if home == away {
		return ErrSameTeams
	}
	if in.Status != "" && !in.Status.Valid() {
		return ErrInvalidStatus
	}
	return nil
}

// List returns matches filtered by free-text query and status.
func (s *MatchService) List(filter repository.MatchFilter) ([]models.Match, int64, error) {
	return s.matchRepo.List(filter)
}

// Schedule returns non-finished matches ordered by tipoff ascending.
func (s *MatchService) Schedule(query string, page repository.MatchFilter) ([]models.Match, int64, error) {
	status := models.MatchScheduled
	return s.matchRepo.List(repository.MatchFilter{
		Query:    query,
		Status:   &status,
		Upcoming: true,
		Page:     page.Page,
	})
}

// Results returns finished matches, most recent first.
func (s *MatchService) Results(query string, page repository.MatchFilter) ([]models.Match, int64, error) {
	status := models.MatchFinished
	return s.matchRepo.List(repository.MatchFilter{
		Query:  query,
		Status: &status,
		Page:   page.Page,
	})
}

// Get retrieves a single match by numeric ID.
func (s *MatchService) Get(id uint64) (*models.Match, error) {
	match, err := s.matchRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to find match: %w", err)
	}
	return match, nil
}

// GetByUUID retrieves a single match by its public UUID.
func (s *MatchService) GetByUUID(uuid string) (*models.Match, error) {
	match, err := s.matchRepo.FindByUUID(uuid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to find match: %w", err)
	}
	return match, nil
}

func (s *MatchService) resolveSeason(id *uint64) error {
	if id == nil {
		return nil
	}
	if _, err := s.seasonRepo.FindByID(*id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSeasonNotFound
		}
		return fmt.Errorf("failed to find season: %w", err)
	}
	return nil
}

// Create schedules a new match.
func (s *MatchService) Create(input MatchInput) (*models.Match, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	if err := s.resolveSeason(input.SeasonID); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = models.MatchScheduled
	}

	match := &models.Match{
		SeasonID: input.SeasonID,
		HomeTeam: strings.TrimSpace(input.HomeTeam),
		AwayTeam: strings.TrimSpace(input.AwayTeam),
		TipoffAt: input.TipoffAt,
		Venue:    input.Venue,
		ImageURL: input.ImageURL,
		Status:   status,
	}
	if err := s.matchRepo.Create(match); err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}
	return match, nil
}

// Update overwrites the scheduling fields of an existing match.
func (s *MatchService) Update(id uint64, input MatchInput) (*models.Match, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	if err := s.resolveSeason(input.SeasonID); err != nil {
		return nil, err
	}

	match, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	match.SeasonID = input.SeasonID
	match.HomeTeam = strings.TrimSpace(input.HomeTeam)
	match.AwayTeam = strings.TrimSpace(input.AwayTeam)
	match.TipoffAt = input.TipoffAt
	match.Venue = input.Venue
	match.ImageURL = input.ImageURL
	if input.Status != "" {
		match.Status = input.Status
	}

	if err := s.matchRepo.Update(match); err != nil {
		return nil, fmt.Errorf("failed to update match: %w", err)
	}
	return match, nil
}

// ScoreInput carries the per-period scores. Totals are never accepted from
// the caller; they are always recomputed from the periods.
type ScoreInput struct {
	Q1Home  *int
	Q1Away  *int
	Q2Home  *int
	Q2Away  *int
	Q3Home  *int
	Q3Away  *int
	Q4Home  *int
	Q4Away  *int
	OT1Home *int
	OT1Away *int
	OT2Home *int
	OT2Away *int
	OT3Home *int
	OT3Away *int
	Status  models.MatchStatus
}

func (in ScoreInput) validate() error {
	for _, p := range []*int{
		in.Q1Home, in.Q1Away, in.Q2Home, in.Q2Away,
		in.Q3Home, in.Q3Away, in.Q4Home, in.Q4Away,
		in.OT1Home, in.OT1Away, in.OT2Home, in.OT2Away,
		in.OT3Home, in.OT3Away,
	} {
		if p != nil && *p < 0 {
			return ErrNegativeScore
		}
	}
	if in.Status != "" && !in.Status.Valid() {
		return ErrInvalidStatus
	}
	return nil
}

// UpdateScore replaces the per-period scores of a match and recomputes the
// totals from them.
func (s *MatchService) UpdateScore(id uint64, input ScoreInput) (*models.Match, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	match, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	match.Q1Home, match.Q1Away = input.Q1Home, input.Q1Away
	match.Q2Home, match.Q2Away = input.Q2Home, input.Q2Away
	match.Q3Home, match.Q3Away = input.Q3Home, input.Q3Away
	match.Q4Home, match.Q4Away = input.Q4Home, input.Q4Away
	match.OT1Home, match.OT1Away = input.OT1Home, input.OT1Away
	match.OT2Home, match.OT2Away = input.OT2Home, input.OT2Away
	match.OT3Home, match.OT3Away = input.OT3Home, input.OT3Away
	match.RecalcTotals()

	if input.Status != "" {
		match.Status = input.Status
	}

	if err := s.matchRepo.Update(match); err != nil {
		return nil, fmt.Errorf("failed to update score: %w", err)
	}
	return match, nil
}

// Delete removes a match along with its box scores.
func (s *MatchService) Delete(id uint64) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	if err := s.matchRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete match: %w", err)
	}
	return nil
}

// BoxScoreInput carries one player's stat line for a match.
type BoxScoreInput struct {
	PlayerID  uint64
	Team      string
	IsStarter bool
	Minutes   float64

	Points    int
	Rebounds  int
	Assists   int
	Steals    int
	Blocks    int
	Turnovers int
	Fouls     int

	FGMade int
	FGAtt  int
	TPMade int
	TPAtt  int
	FTMade int
	FTAtt  int

	PlusMinus int
}

// SaveBoxScore creates or replaces the stat line for (match, player).
func (s *MatchService) SaveBoxScore(matchID uint64, input BoxScoreInput) (*models.PlayerBoxScore, error) {
	if _, err := s.Get(matchID); err != nil {
		return nil, err
	}
	if _, err := s.playerRepo.FindByID(input.PlayerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to find player: %w", err)
	}

	score := &models.PlayerBoxScore{
		MatchID:   matchID,
		PlayerID:  input.PlayerID,
		Team:      input.Team,
		IsStarter: input.IsStarter,
		Minutes:   input.Minutes,
		Points:    input.Points,
		Rebounds:  input.Rebounds,
		Assists:   input.Assists,
		Steals:    input.Steals,
		Blocks:    input.Blocks,
		Turnovers: input.Turnovers,
		Fouls:     input.Fouls,
		FGMade:    input.FGMade,
		FGAtt:     input.FGAtt,
		TPMade:    input.TPMade,
		TPAtt:     input.TPAtt,
		FTMade:    input.FTMade,
		FTAtt:     input.FTAtt,
		PlusMinus: input.PlusMinus,
	}
	if err := s.matchRepo.UpsertBoxScore(score); err != nil {
		return nil, fmt.Errorf("failed to save box score: %w", err)
	}
	return score, nil
}

// ListBoxScores returns all stat lines for a match.
func (s *MatchService) ListBoxScores(matchID uint64) ([]models.PlayerBoxScore, error) {
	if _, err := s.Get(matchID); err != nil {
		return nil, err
	}
	return s.matchRepo.ListBoxScores(matchID)
}

// SeasonInput carries the writable season fields.
type SeasonInput struct {
	Name      string
	StartDate time.Time
	EndDate   time.Time
}

// CreateSeason stores a new season.
func (s *MatchService) CreateSeason(input SeasonInput) (*models.Season, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrNameRequired
	}

	season := &models.Season{
		Name:      strings.TrimSpace(input.Name),
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
	}
	if err := s.seasonRepo.Create(season); err != nil {
		return nil, fmt.Errorf("failed to create season: %w", err)
	}
	return season, nil
}

// ListSeasons returns all seasons, most recent first.
func (s *MatchService) ListSeasons() ([]models.Season, error) {
	return s.seasonRepo.List()
}

// DeleteSeason removes a season; its matches are kept and detached.
func (s *MatchService) DeleteSeason(id uint64) error {
	if _, err := s.seasonRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSeasonNotFound
		}
		return fmt.Errorf("failed to find season: %w", err)
	}
	if err := s.seasonRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete season: %w", err)
	}
	return nil
}
