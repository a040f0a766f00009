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
	ErrEventNotFound = errors.New("event not found")
	ErrTitleRequired = errors.New("title is required")
)

// EventService handles event business logic.
type EventService struct {
	eventRepo repository.EventRepository
}

// NewEventService creates a new EventService.
func NewEventService(eventRepo repository.EventRepository) *EventService {
	return &EventService{
		eventRepo: eventRepo,
	}
}

// EventInput carries the writable event fields.
type EventInput struct {
	Title       string
	Description string
	Date        time.Time
	Time        string
	Location    string
	ImageURL    string
	IsPublic    bool
}

// List returns events visible to the given role: admins see everything,
// everyone else only public events.
func (s *EventService) List(role models.Role) ([]models.Event, error) {
	publicOnly := role != models.RoleAdmin
	return s.eventRepo.List(publicOnly)
}

// Get retrieves a single event.
func (s *EventService) Get(id uint64) (*models.Event, error) {
	event, err := s.eventRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to find event: %w", err)
	}
	return event, nil
}

// Create stores a new event attributed to the acting user.
func (s *EventService) Create(input EventInput, createdByID string) (*models.Event, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrTitleRequired
	}

	event := &models.Event{
		Title:       input.Title,
		Description: input.Description,
		Date:        input.Date,
		Time:        input.Time,
		Location:    input.Location,
		ImageURL:    input.ImageURL,
		IsPublic:    input.IsPublic,
		CreatedByID: createdByID,
	}
	if err := s.eventRepo.Create(event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return event, nil
}

// Update overwrites the writable fields of an existing event.
func (s *EventService) Update(id uint64, input EventInput) (*models.Event, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrTitleRequired
	}

	event, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	event.Title = input.Title
	event.Description = input.Description
	event.Date = input.Date
	event.Time = input.Time
	event.Location = input.Location
	event.ImageURL = input.ImageURL
	event.IsPublic = input.IsPublic

	if err := s.eventRepo.Update(event); err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}
	return event, nil
}

// Delete removes an event.
func (s *EventService) Delete(id uint64) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	if err := s.eventRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}
