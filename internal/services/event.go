package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eventboard/internal/domain"
)

type eventService struct {
	eventRepo      domain.EventRepository
	contextTimeout time.Duration
}

func NewEventService(eventRepo domain.EventRepository, timeout time.Duration) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		contextTimeout: timeout,
	}
}

func (s *eventService) CreateEvent(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if event.CreatorID == "" {
		return nil, fmt.Errorf("event creator is required")
	}
	if event.MaxParticipants != nil && *event.MaxParticipants <= 0 {
		return nil, domain.ErrInvalidInput
	}

	event.CreatedAt = time.Now()
	event.UpdatedAt = time.Now()

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	// Reload to attach the creator summary and registration count.
	created, err := s.eventRepo.GetByID(ctx, event.ID)
	if err != nil {
		return nil, fmt.Errorf("get created event: %w", err)
	}
	return created, nil
}

func (s *eventService) GetEventByID(ctx context.Context, eventID string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

func (s *eventService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}

func (s *eventService) ListEventsByCreator(ctx context.Context, creatorID string) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	events, err := s.eventRepo.ListByCreatorID(ctx, creatorID)
	if err != nil {
		return nil, fmt.Errorf("list events by creator: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}

func (s *eventService) ListEventsRegisteredBy(ctx context.Context, userID string) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	events, err := s.eventRepo.ListRegisteredByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list registered events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}

// UpdateEvent overwrites the mutable fields of an event. Only the creator
// may update; ownership never transfers.
func (s *eventService) UpdateEvent(ctx context.Context, eventID, callerID string, fields *domain.Event) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	if event.CreatorID != callerID {
		return nil, domain.ErrForbidden
	}
	if fields.MaxParticipants != nil && *fields.MaxParticipants <= 0 {
		return nil, domain.ErrInvalidInput
	}

	event.Title = fields.Title
	event.Description = fields.Description
	event.Date = fields.Date
	event.Location = fields.Location
	event.ImageURL = fields.ImageURL
	event.MaxParticipants = fields.MaxParticipants
	event.UpdatedAt = time.Now()

	if err := s.eventRepo.Update(ctx, event); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	updated, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get updated event: %w", err)
	}
	return updated, nil
}

// DeleteEvent removes an event and, by cascade, all its registrations.
func (s *eventService) DeleteEvent(ctx context.Context, eventID, callerID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get event: %w", err)
	}
	if event.CreatorID != callerID {
		return domain.ErrForbidden
	}
	if err := s.eventRepo.Delete(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}
