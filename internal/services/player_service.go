package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dribbl-id/dribbl-api/internal/models"
	"github.com/dribbl-id/dribbl-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrPlayerNotFound  = errors.New("player not found")
	ErrInvalidPosition = errors.New("invalid position")
)

// PlayerService handles player business logic.
type PlayerService struct {
	playerRepo repository.PlayerRepository
}

// NewPlayerService creates a new PlayerService.
func NewPlayerService(playerRepo repository.PlayerRepository) *PlayerService {
	return &PlayerService{
		playerRepo: playerRepo,
	}
}

// PlayerInput carries the writable player fields.
type PlayerInput struct {
	FullName        string
	Team            string
	JerseyNumber    *int
	Position        models.Position
	PointsPerGame   float64
	AssistsPerGame  float64
	ReboundsPerGame float64
	IsActive        bool
}

func (in PlayerInput) validate() error {
	if strings.TrimSpace(in.FullName) == "" {
		return ErrNameRequired
	}
	if !in.Position.Valid() {
		return ErrInvalidPosition
	}
	return nil
}

// List returns players, optionally filtered by team.
func (s *PlayerService) List(team string) ([]models.Player, error) {
	return s.playerRepo.List(team)
}

// Get retrieves a single player.
func (s *PlayerService) Get(id uint64) (*models.Player, error) {
	player, err := s.playerRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to find player: %w", err)
	}
	return player, nil
}

// Create stores a new player.
func (s *PlayerService) Create(input PlayerInput) (*models.Player, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	player := &models.Player{
		FullName:        strings.TrimSpace(input.FullName),
		Team:            strings.TrimSpace(input.Team),
		JerseyNumber:    input.JerseyNumber,
		Position:        input.Position,
		PointsPerGame:   input.PointsPerGame,
		AssistsPerGame:  input.AssistsPerGame,
		ReboundsPerGame: input.ReboundsPerGame,
		IsActive:        input.IsActive,
	}
	if err := s.playerRepo.Create(player); err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}
	return player, nil
}

// Update overwrites the writable fields of an existing player.
func (s *PlayerService) Update(id uint64, input PlayerInput) (*models.Player, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	player, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	player.FullName = strings.TrimSpace(input.FullName)
	player.Team = strings.TrimSpace(input.Team)
	player.JerseyNumber = input.JerseyNumber
	player.Position = input.Position
	player.PointsPerGame = input.PointsPerGame
	player.AssistsPerGame = input.AssistsPerGame
	player.ReboundsPerGame = input.ReboundsPerGame
	player.IsActive = input.IsActive

	if err := s.playerRepo.Update(player); err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}
	return player, nil
}

// Delete removes a player.
func (s *PlayerService) Delete(id uint64) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	if err := s.playerRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete player: %w", err)
	}
	return nil
}
