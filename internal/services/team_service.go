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
	ErrTeamNotFound  = errors.New("team not found")
	ErrTeamExists    = errors.New("team already exists")
	ErrNameRequired  = errors.New("name is required")
	ErrInvalidRegion = errors.New("invalid region")
)

// TeamService handles team business logic.
type TeamService struct {
	teamRepo repository.TeamRepository
}

// NewTeamService creates a new TeamService.
func NewTeamService(teamRepo repository.TeamRepository) *TeamService {
	return &TeamService{
		teamRepo: teamRepo,
	}
}

// TeamInput carries the writable team fields.
type TeamInput struct {
	Name        string
	Logo        string
	Region      models.Region
	Founded     time.Time
	Description string
}

func (in TeamInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return ErrNameRequired
	}
	if !in.Region.Valid() {
		return ErrInvalidRegion
	}
	return nil
}

// List returns all teams ordered by name.
func (s *TeamService) List() ([]models.Team, error) {
	return s.teamRepo.List()
}

// Get retrieves a single team.
func (s *TeamService) Get(id uint64) (*models.Team, error) {
	team, err := s.teamRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to find team: %w", err)
	}
	return team, nil
}

// Create stores a new team; names are unique.
func (s *TeamService) Create(input TeamInput) (*models.Team, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if _, err := s.teamRepo.FindByName(name); err == nil {
		return nil, ErrTeamExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check team name: %w", err)
	}

	team := &models.Team{
		Name:        name,
		Logo:        input.Logo,
		Region:      input.Region,
		Founded:     input.Founded,
		Description: input.Description,
	}
	if err := s.teamRepo.Create(team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}
	return team, nil
}

// Update overwrites the writable fields of an existing team.
func (s *TeamService) Update(id uint64, input TeamInput) (*models.Team, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	team, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if name != team.Name {
		if _, err := s.teamRepo.FindByName(name); err == nil {
			return nil, ErrTeamExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check team name: %w", err)
		}
	}

	team.Name = name
	team.Logo = input.Logo
	team.Region = input.Region
	team.Founded = input.Founded
	team.Description = input.Description

	if err := s.teamRepo.Update(team); err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}
	return team, nil
}

// Delete removes a team.
func (s *TeamService) Delete(id uint64) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	if err := s.teamRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}
	return nil
}
