package repository

import (
	"time"

	"github.com/dribbl-id/dribbl-api/internal/models"
	"github.com/dribbl-id/dribbl-api/internal/utils"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id string) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)

	// Update persists changes to a user
	Update(user *models.User) error

	// TouchLastLogin records a successful login time
	TouchLastLogin(id string, at time.Time) error

	// Count returns the total number of users
	Count() (int64, error)
}

// EventRepository defines the interface for event data access
type EventRepository interface {
	// Create creates a new event
	Create(event *models.Event) error

	// FindByID finds an event by ID
	FindByID(id uint64) (*models.Event, error)

	// List retrieves events; when publicOnly is set, private events are
	// filtered out
	List(publicOnly bool) ([]models.Event, error)

	// Update persists changes to an event
	Update(event *models.Event) error

	// Delete removes an event
	Delete(id uint64) error
}

// NewsFilter holds filtering options for listing news
type NewsFilter struct {
	Category *models.NewsCategory
	Search   string
	Sort     string // newest | oldest | title_asc | title_desc
	Page     utils.PaginationParams
}

// NewsRepository defines the interface for news data access
type NewsRepository interface {
	// Create creates a news article
	Create(news *models.News) error

	// FindByID finds an article by ID, preloading the author
	FindByID(id string) (*models.News, error)

	// List retrieves articles matching the filter plus the total match count
	List(filter NewsFilter) ([]models.News, int64, error)

	// Update persists changes to an article
	Update(news *models.News) error

	// Delete removes an article
	Delete(id string) error
}

// TeamRepository defines the interface for team data access
type TeamRepository interface {
	Create(team *models.Team) error
	FindByID(id uint64) (*models.Team, error)
	FindByName(name string) (*models.Team, error)
	List() ([]models.Team, error)
	Update(team *models.Team) error
	Delete(id uint64) error
}

// PlayerRepository defines the interface for player data access
type PlayerRepository interface {
	Create(player *models.Player) error
	FindByID(id uint64) (*models.Player, error)

	// List retrieves players, optionally filtered by team, ordered by team
	// then name
	List(team string) ([]models.Player, error)

	Update(player *models.Player) error
	Delete(id uint64) error
}

// MatchFilter holds filtering options for listing matches
type MatchFilter struct {
	// Query matches against home team, away team, and venue
	Query  string
	Status *models.MatchStatus

	// Upcoming orders by tipoff ascending instead of the default descending
	Upcoming bool

	Page utils.PaginationParams
}

// MatchRepository defines the interface for match data access
type MatchRepository interface {
	Create(match *models.Match) error

	// FindByID finds a match by numeric ID, preloading the season
	FindByID(id uint64) (*models.Match, error)

	// FindByUUID finds a match by its public UUID
	FindByUUID(uuid string) (*models.Match, error)

	List(filter MatchFilter) ([]models.Match, int64, error)
	Update(match *models.Match) error
	Delete(id uint64) error

	// UpsertBoxScore creates or updates the stat line for (match, player)
	UpsertBoxScore(score *models.PlayerBoxScore) error

	// ListBoxScores lists all stat lines for a match, preloading players
	ListBoxScores(matchID uint64) ([]models.PlayerBoxScore, error)
}

// SeasonRepository defines the interface for season data access
type SeasonRepository interface {
	Create(season *models.Season) error
	FindByID(id uint64) (*models.Season, error)
	List() ([]models.Season, error)
	Delete(id uint64) error
}
