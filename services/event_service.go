package services

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/mdhaziqomar/memories/models"
	"github.com/mdhaziqomar/memories/repositories"

	"gorm.io/gorm"
)

type CreateEventInput struct {
	Name        string
	Description string
	EventDate   time.Time
}

// UpdateEventInput is a sparse update descriptor: nil fields are left untouched.
type UpdateEventInput struct {
	Name        *string
	Description *string
	EventDate   *time.Time
}

type EventService interface {
	List(ctx context.Context) ([]repositories.EventListRow, error)
	Get(ctx context.Context, eventID uint) (repositories.EventListRow, error)
	Create(ctx context.Context, createdBy uint, in CreateEventInput) (models.Event, error)
	Update(ctx context.Context, eventID uint, in UpdateEventInput) error
	Deactivate(ctx context.Context, eventID uint) error
}

type eventService struct {
	events repositories.EventRepository
}

func NewEventService(events repositories.EventRepository) EventService {
	return &eventService{events: events}
}

func (s *eventService) List(ctx context.Context) ([]repositories.EventListRow, error) {
	rows, err := s.events.ListActive(ctx, nil)
	if err != nil {
		return nil, newAppError(http.StatusInternalServerError, "list events failed", err)
	}
	return rows, nil
}

func (s *eventService) Get(ctx context.Context, eventID uint) (repositories.EventListRow, error) {
	row, err := s.events.GetActiveDetail(ctx, nil, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repositories.EventListRow{}, newAppError(http.StatusNotFound, "event not found", nil)
		}
		return repositories.EventListRow{}, newAppError(http.StatusInternalServerError, "get event failed", err)
	}
	return row, nil
}

func (s *eventService) Create(ctx context.Context, createdBy uint, in CreateEventInput) (models.Event, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || len(name) > 100 {
		return models.Event{}, newAppError(http.StatusBadRequest, "event name must be 1-100 characters", nil)
	}
	if len(in.Description) > 1000 {
		return models.Event{}, newAppError(http.StatusBadRequest, "description too long", nil)
	}

	event := models.Event{
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		EventDate:   in.EventDate,
		CreatedBy:   createdBy,
		IsActive:    true,
	}
	if err := s.events.Create(ctx, nil, &event); err != nil {
		return models.Event{}, newAppError(http.StatusInternalServerError, "create event failed", err)
	}
	return event, nil
}

func (s *eventService) Update(ctx context.Context, eventID uint, in UpdateEventInput) error {
	updates := map[string]interface{}{}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" || len(name) > 100 {
			return newAppError(http.StatusBadRequest, "event name must be 1-100 characters", nil)
		}
		updates["name"] = name
	}
	if in.Description != nil {
		if len(*in.Description) > 1000 {
			return newAppError(http.StatusBadRequest, "description too long", nil)
		}
		updates["description"] = strings.TrimSpace(*in.Description)
	}
	if in.EventDate != nil {
		updates["event_date"] = *in.EventDate
	}
	if len(updates) == 0 {
		return newAppError(http.StatusBadRequest, "no valid fields to update", nil)
	}

	updated, err := s.events.UpdateByID(ctx, nil, eventID, updates)
	if err != nil {
		return newAppError(http.StatusInternalServerError, "update event failed", err)
	}
	if !updated {
		return newAppError(http.StatusNotFound, "event not found", nil)
	}
	return nil
}

func (s *eventService) Deactivate(ctx context.Context, eventID uint) error {
	deactivated, err := s.events.DeactivateByID(ctx, nil, eventID)
	if err != nil {
		return newAppError(http.StatusInternalServerError, "delete event failed", err)
	}
	if !deactivated {
		return newAppError(http.StatusNotFound, "event not found", nil)
	}
	return nil
}
