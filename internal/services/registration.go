package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eventboard/internal/domain"
)

type registrationService struct {
	eventRepo        domain.EventRepository
	registrationRepo domain.RegistrationRepository
	contextTimeout   time.Duration
}

// NewRegistrationService creates a RegistrationService with the given repositories.
func NewRegistrationService(
	eventRepo domain.EventRepository,
	registrationRepo domain.RegistrationRepository,
	timeout time.Duration,
) domain.RegistrationService {
	return &registrationService{
		eventRepo:        eventRepo,
		registrationRepo: registrationRepo,
		contextTimeout:   timeout,
	}
}

// Register creates a registration for the user on the event. The capacity
// and uniqueness checks live in the repository's transactional Create, so
// racing callers cannot push an event past max_participants.
func (s *registrationService) Register(ctx context.Context, eventID, userID string) (*domain.Registration, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	reg := domain.NewRegistration(eventID, userID, time.Now())
	if err := s.registrationRepo.Create(ctx, reg); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound),
			errors.Is(err, domain.ErrEventFull),
			errors.Is(err, domain.ErrAlreadyRegistered):
			return nil, err
		}
		return nil, fmt.Errorf("create registration: %w", err)
	}

	reg.Event = &domain.EventSnapshot{
		Title:    event.Title,
		Date:     event.Date,
		Location: event.Location,
	}
	return reg, nil
}

// Unregister deletes the user's registration. Repeated calls after a
// successful delete report ErrNotFound.
func (s *registrationService) Unregister(ctx context.Context, eventID, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.registrationRepo.DeleteByEventAndUser(ctx, eventID, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete registration: %w", err)
	}
	return nil
}

// IsRegistered reports whether the (event, user) pair has a registration.
// A missing event simply reads as not registered.
func (s *registrationService) IsRegistered(ctx context.Context, eventID, userID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.registrationRepo.GetByEventAndUser(ctx, eventID, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("get registration: %w", err)
	}
	return true, nil
}
