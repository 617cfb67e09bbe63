package domain

import "errors"

// Sentinel errors shared across services and repositories. Repositories
// translate driver errors into these; controllers map them to HTTP statuses.
var (
	ErrNotFound          = errors.New("not found")
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidInput      = errors.New("invalid input")
	ErrEventFull         = errors.New("event is full")
	ErrAlreadyRegistered = errors.New("already registered for this event")
)
