package controllers

import (
	"context"
	"io"
	"log/slog"

	"eventboard/internal/domain"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeEventService implements domain.EventService for handler tests.
type fakeEventService struct {
	createEventErr  error
	getEventErr     error
	listEventsErr   error
	updateEventErr  error
	updateResult    *domain.Event
	deleteEventErr  error
	eventByID       map[string]*domain.Event
	listResult      []*domain.Event
	byCreatorResult []*domain.Event
	registeredBy    []*domain.Event

	lastCreateEvent    *domain.Event
	lastUpdateEventID  string
	lastUpdateCallerID string
	lastUpdateFields   *domain.Event
	lastDeleteEventID  string
	lastDeleteCallerID string
}

func (f *fakeEventService) CreateEvent(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	f.lastCreateEvent = event
	if f.createEventErr != nil {
		return nil, f.createEventErr
	}
	event.ID = "ev-created"
	return event, nil
}

func (f *fakeEventService) GetEventByID(ctx context.Context, eventID string) (*domain.Event, error) {
	if f.getEventErr != nil {
		return nil, f.getEventErr
	}
	if event, ok := f.eventByID[eventID]; ok {
		return event, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEventService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	if f.listEventsErr != nil {
		return nil, f.listEventsErr
	}
	if f.listResult != nil {
		return f.listResult, nil
	}
	return []*domain.Event{}, nil
}

func (f *fakeEventService) ListEventsByCreator(ctx context.Context, creatorID string) ([]*domain.Event, error) {
	if f.listEventsErr != nil {
		return nil, f.listEventsErr
	}
	if f.byCreatorResult != nil {
		return f.byCreatorResult, nil
	}
	return []*domain.Event{}, nil
}

func (f *fakeEventService) ListEventsRegisteredBy(ctx context.Context, userID string) ([]*domain.Event, error) {
	if f.listEventsErr != nil {
		return nil, f.listEventsErr
	}
	if f.registeredBy != nil {
		return f.registeredBy, nil
	}
	return []*domain.Event{}, nil
}

func (f *fakeEventService) UpdateEvent(ctx context.Context, eventID, callerID string, fields *domain.Event) (*domain.Event, error) {
	f.lastUpdateEventID = eventID
	f.lastUpdateCallerID = callerID
	f.lastUpdateFields = fields
	if f.updateEventErr != nil {
		return nil, f.updateEventErr
	}
	return f.updateResult, nil
}

func (f *fakeEventService) DeleteEvent(ctx context.Context, eventID, callerID string) error {
	f.lastDeleteEventID = eventID
	f.lastDeleteCallerID = callerID
	return f.deleteEventErr
}

// fakeRegistrationService implements domain.RegistrationService for handler tests.
type fakeRegistrationService struct {
	registerErr     error
	registerResult  *domain.Registration
	unregisterErr   error
	isRegisteredErr error
	registered      bool

	lastEventID string
	lastUserID  string
}

func (f *fakeRegistrationService) Register(ctx context.Context, eventID, userID string) (*domain.Registration, error) {
	f.lastEventID = eventID
	f.lastUserID = userID
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	return f.registerResult, nil
}

func (f *fakeRegistrationService) Unregister(ctx context.Context, eventID, userID string) error {
	f.lastEventID = eventID
	f.lastUserID = userID
	return f.unregisterErr
}

func (f *fakeRegistrationService) IsRegistered(ctx context.Context, eventID, userID string) (bool, error) {
	f.lastEventID = eventID
	f.lastUserID = userID
	if f.isRegisteredErr != nil {
		return false, f.isRegisteredErr
	}
	return f.registered, nil
}

// fakeAuthService implements domain.AuthService for handler tests.
type fakeAuthService struct {
	signUpErr    error
	signUpResult *domain.User
	loginErr     error
	loginToken   string
	loginUser    *domain.User

	lastEmail    string
	lastPassword string
	lastName     string
}

func (f *fakeAuthService) SignUp(ctx context.Context, email, password, name string) (*domain.User, error) {
	f.lastEmail = email
	f.lastPassword = password
	f.lastName = name
	if f.signUpErr != nil {
		return nil, f.signUpErr
	}
	return f.signUpResult, nil
}

func (f *fakeAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	f.lastEmail = email
	f.lastPassword = password
	if f.loginErr != nil {
		return "", nil, f.loginErr
	}
	return f.loginToken, f.loginUser, nil
}

// fakeUserService implements domain.UserService for handler tests.
type fakeUserService struct {
	getErr       error
	getResult    *domain.User
	updateErr    error
	updateResult *domain.User

	lastUserID string
	lastName   string
}

func (f *fakeUserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	f.lastUserID = id
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getResult, nil
}

func (f *fakeUserService) UpdateName(ctx context.Context, id, name string) (*domain.User, error) {
	f.lastUserID = id
	f.lastName = name
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.updateResult, nil
}
