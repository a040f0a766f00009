package dto

import (
	"time"

	"github.com/dribbl-id/dribbl-api/internal/models"
)

// EventDTO represents an event in API responses
type EventDTO struct {
	ID          uint64    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Location    string    `json:"location"`
	ImageURL    string    `json:"image_url"`
	IsPublic    bool      `json:"is_public"`
	CreatedByID string    `json:"created_by_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToEventDTO converts an Event model to EventDTO
func ToEventDTO(event models.Event) EventDTO {
	return EventDTO{
		ID:          event.ID,
		Title:       event.Title,
		Description: event.Description,
		Date:        event.Date.Format("2006-01-02"),
		Time:        event.Time,
		Location:    event.Location,
		ImageURL:    event.ImageURL,
		IsPublic:    event.IsPublic,
		CreatedByID: event.CreatedByID,
		CreatedAt:   event.CreatedAt,
	}
}

// ToEventDTOs converts a slice of events
func ToEventDTOs(events []models.Event) []EventDTO {
	dtos := make([]EventDTO, len(events))
	for i, event := range events {
		dtos[i] = ToEventDTO(event)
	}
	return dtos
}
