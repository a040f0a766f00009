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
	"github.com/dribbl-id/dribbl-api/internal/services"
	"github.com/dribbl-id/dribbl-api/internal/session"
	"github.com/gin-gonic/gin"
)

// EventHandler coordinates event HTTP handlers.
type EventHandler struct {
	eventService *services.EventService
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(eventService *services.EventService) *EventHandler {
	return &EventHandler{
		eventService: eventService,
	}
}

// eventRequest is the JSON body for create and update.
type eventRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Date        string `json:"date" binding:"required"` // YYYY-MM-DD
	Time        string `json:"time"`
	Location    string `json:"location"`
	ImageURL    string `json:"image_url"`
	IsPublic    bool   `json:"is_public"`
}

func (r eventRequest) toInput() (services.EventInput, error) {
	date, err := time.Parse("2006-01-02", r.Date)
	if err != nil {
		return services.EventInput{}, err
	}
	return services.EventInput{
		Title:       r.Title,
		Description: r.Description,
		Date:        date,
		Time:        r.Time,
		Location:    r.Location,
		ImageURL:    r.ImageURL,
		IsPublic:    r.IsPublic,
	}, nil
}

// ListEvents returns events visible to the caller: admins see everything,
// regular users and anonymous callers only public events.
func (h *EventHandler) ListEvents(c *gin.Context) {
	var role models.Role // anonymous callers carry no role
	if identity, ok := session.CurrentIdentity(c); ok {
		role = identity.Role
	}

	events, err := h.eventService.List(role)
	if err != nil {
		logger.Errorf("list events: %v", err)
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"events": dto.ToEventDTOs(events)})
}

// GetEvent returns a single event.
func (h *EventHandler) GetEvent(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid event ID")
		return
	}

	event, err := h.eventService.Get(id)
	if err != nil {
		respondEventError(c, err)
		return
	}

	if !event.IsPublic {
		identity, ok := session.CurrentIdentity(c)
		if !ok || !identity.IsAdmin() {
			apierrors.NotFound(c, "")
			return
		}
	}

	c.JSON(http.StatusOK, dto.ToEventDTO(*event))
}

// CreateEvent stores a new event attributed to the acting admin.
func (h *EventHandler) CreateEvent(c *gin.Context) {
	identity, ok := session.CurrentIdentity(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}
	input, err := req.toInput()
	if err != nil {
		apierrors.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		return
	}

	event, err := h.eventService.Create(input, identity.UserID)
	if err != nil {
		respondEventError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventDTO(*event))
}

// UpdateEvent overwrites an existing event.
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid event ID")
		return
	}

	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}
	input, err := req.toInput()
	if err != nil {
		apierrors.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		return
	}

	event, err := h.eventService.Update(id, input)
	if err != nil {
		respondEventError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventDTO(*event))
}

// DeleteEvent removes an event.
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid event ID")
		return
	}

	if err := h.eventService.Delete(id); err != nil {
		respondEventError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully"})
}

func respondEventError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrEventNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrTitleRequired):
		apierrors.BadRequest(c, err.Error())
	default:
		logger.Errorf("event handler: %v", err)
		apierrors.InternalError(c, "")
	}
}
