package domain

import (
	"context"
	"time"
)

// Registration represents one user's commitment to attend one event.
// At most one registration exists per (event, user) pair.
// swagger:model Registration
type Registration struct {
	ID        string    `json:"id"`
	EventID   string    `json:"event_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`

	// Event is a denormalized snapshot for confirmation display,
	// populated on successful registration.
	Event *EventSnapshot `json:"event,omitempty"`
}

// EventSnapshot is the subset of event fields echoed back with a registration.
type EventSnapshot struct {
	Title    string    `json:"title"`
	Date     time.Time `json:"date"`
	Location string    `json:"location"`
}

// NewRegistration returns a new Registration. ID is set by the repository on create.
func NewRegistration(eventID, userID string, createdAt time.Time) *Registration {
	return &Registration{
		EventID:   eventID,
		UserID:    userID,
		CreatedAt: createdAt,
	}
}

// RegistrationRepository defines storage operations for event registrations.
//
// Create must be atomic with respect to the event's capacity: the capacity
// check and the insert happen in a single transaction so concurrent callers
// cannot overbook. It returns ErrNotFound if the event does not exist,
// ErrEventFull if the event is at capacity, and ErrAlreadyRegistered if the
// (event, user) pair already has a row.
type RegistrationRepository interface {
	Create(ctx context.Context, reg *Registration) error
	GetByEventAndUser(ctx context.Context, eventID, userID string) (*Registration, error)
	DeleteByEventAndUser(ctx context.Context, eventID, userID string) error
}

// RegistrationService governs the (user, event) membership state machine:
// Unregistered -> Registered guarded by capacity and uniqueness,
// Registered -> Unregistered unconditional for the registrant.
type RegistrationService interface {
	Register(ctx context.Context, eventID, userID string) (*Registration, error)
	Unregister(ctx context.Context, eventID, userID string) error
	IsRegistered(ctx context.Context, eventID, userID string) (bool, error)
}
