package domain

import (
	"context"
	"time"
)

// Event represents a schedulable event with an owner and optional capacity.
// MaxParticipants == nil means unlimited.
// swagger:model Event
type Event struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Date            time.Time `json:"date"`
	Location        string    `json:"location"`
	ImageURL        *string   `json:"image_url"`
	MaxParticipants *int      `json:"max_participants"`
	CreatorID       string    `json:"creator_id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	// Derived fields, populated on reads.
	Creator           *UserSummary `json:"creator,omitempty"`
	RegistrationCount int          `json:"registration_count"`
}

// NewEvent returns a new Event with the given fields. ID is set by the repository on create.
func NewEvent(title, description, location string, date time.Time, imageURL *string, maxParticipants *int, creatorID string, createdAt, updatedAt time.Time) *Event {
	return &Event{
		Title:           title,
		Description:     description,
		Location:        location,
		Date:            date,
		ImageURL:        imageURL,
		MaxParticipants: maxParticipants,
		CreatorID:       creatorID,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
}

// EventRepository defines the interface for event storage. Read methods
// attach the creator summary and the live registration count.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	List(ctx context.Context) ([]*Event, error)
	ListByCreatorID(ctx context.Context, creatorID string) ([]*Event, error)
	ListRegisteredByUserID(ctx context.Context, userID string) ([]*Event, error)
	Update(ctx context.Context, event *Event) error
	Delete(ctx context.Context, id string) error
}

// EventService defines the business logic for event management.
// Update and Delete enforce that the caller is the event creator.
type EventService interface {
	CreateEvent(ctx context.Context, event *Event) (*Event, error)
	GetEventByID(ctx context.Context, eventID string) (*Event, error)
	ListEvents(ctx context.Context) ([]*Event, error)
	ListEventsByCreator(ctx context.Context, creatorID string) ([]*Event, error)
	ListEventsRegisteredBy(ctx context.Context, userID string) ([]*Event, error)
	UpdateEvent(ctx context.Context, eventID, callerID string, fields *Event) (*Event, error)
	DeleteEvent(ctx context.Context, eventID, callerID string) error
}
