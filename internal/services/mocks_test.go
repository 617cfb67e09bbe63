package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"eventboard/internal/domain"
)

// memEventRepo is an in-memory EventRepository for service tests.
type memEventRepo struct {
	mu     sync.Mutex
	events map[string]*domain.Event
	nextID int
	err    error
}

func newMemEventRepo() *memEventRepo {
	return &memEventRepo{events: map[string]*domain.Event{}}
}

func (m *memEventRepo) Create(ctx context.Context, e *domain.Event) error {
	if m.err != nil {
		return m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	e.ID = fmt.Sprintf("ev-%d", m.nextID)
	copied := *e
	m.events[e.ID] = &copied
	return nil
}

func (m *memEventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.events[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *e
	return &copied, nil
}

func (m *memEventRepo) List(ctx context.Context) ([]*domain.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*domain.Event
	for _, e := range m.events {
		copied := *e
		out = append(out, &copied)
	}
	return out, nil
}

func (m *memEventRepo) ListByCreatorID(ctx context.Context, creatorID string) ([]*domain.Event, error) {
	all, err := m.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []*domain.Event
	for _, e := range all {
		if e.CreatorID == creatorID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memEventRepo) ListRegisteredByUserID(ctx context.Context, userID string) ([]*domain.Event, error) {
	return nil, nil
}

func (m *memEventRepo) Update(ctx context.Context, e *domain.Event) error {
	if m.err != nil {
		return m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.events[e.ID]; !ok {
		return domain.ErrNotFound
	}
	copied := *e
	m.events[e.ID] = &copied
	return nil
}

func (m *memEventRepo) Delete(ctx context.Context, id string) error {
	if m.err != nil {
		return m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.events[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.events, id)
	return nil
}

// memRegistrationRepo is an in-memory RegistrationRepository guarding
// capacity the same way the SQL implementation does: one lock around the
// count-then-insert.
type memRegistrationRepo struct {
	mu     sync.Mutex
	events *memEventRepo
	regs   map[string]*domain.Registration // "eventID:userID"
	nextID int
	err    error
}

func newMemRegistrationRepo(events *memEventRepo) *memRegistrationRepo {
	return &memRegistrationRepo{events: events, regs: map[string]*domain.Registration{}}
}

func regKey(eventID, userID string) string { return eventID + ":" + userID }

func (m *memRegistrationRepo) countByEvent(eventID string) int {
	n := 0
	for _, reg := range m.regs {
		if reg.EventID == eventID {
			n++
		}
	}
	return n
}

func (m *memRegistrationRepo) Create(ctx context.Context, reg *domain.Registration) error {
	if m.err != nil {
		return m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	event, err := m.events.GetByID(ctx, reg.EventID)
	if err != nil {
		return domain.ErrNotFound
	}
	if _, ok := m.regs[regKey(reg.EventID, reg.UserID)]; ok {
		return domain.ErrAlreadyRegistered
	}
	if event.MaxParticipants != nil && m.countByEvent(reg.EventID) >= *event.MaxParticipants {
		return domain.ErrEventFull
	}
	m.nextID++
	reg.ID = fmt.Sprintf("reg-%d", m.nextID)
	copied := *reg
	m.regs[regKey(reg.EventID, reg.UserID)] = &copied
	return nil
}

func (m *memRegistrationRepo) GetByEventAndUser(ctx context.Context, eventID, userID string) (*domain.Registration, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	reg, ok := m.regs[regKey(eventID, userID)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *reg
	return &copied, nil
}

func (m *memRegistrationRepo) DeleteByEventAndUser(ctx context.Context, eventID, userID string) error {
	if m.err != nil {
		return m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.regs[regKey(eventID, userID)]; !ok {
		return domain.ErrNotFound
	}
	delete(m.regs, regKey(eventID, userID))
	return nil
}

// memUserRepo is an in-memory UserRepository for service tests.
type memUserRepo struct {
	mu      sync.Mutex
	byID    map[string]*domain.User
	byEmail map[string]*domain.User
	nextID  int
	err     error
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byID: map[string]*domain.User{}, byEmail: map[string]*domain.User{}}
}

func (m *memUserRepo) Create(ctx context.Context, u *domain.User) error {
	if m.err != nil {
		return m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byEmail[u.Email]; ok {
		return domain.ErrDuplicateEmail
	}
	m.nextID++
	u.ID = fmt.Sprintf("user-%d", m.nextID)
	copied := *u
	m.byID[u.ID] = &copied
	m.byEmail[u.Email] = &copied
	return nil
}

func (m *memUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (m *memUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (m *memUserRepo) Update(ctx context.Context, u *domain.User) error {
	if m.err != nil {
		return m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.byID[u.ID]
	if !ok {
		return domain.ErrUserNotFound
	}
	copied := *u
	m.byID[u.ID] = &copied
	m.byEmail[stored.Email] = &copied
	return nil
}

// fakeHasher is a deterministic PasswordHasher for auth tests.
type fakeHasher struct{}

func (fakeHasher) GenerateSalt() (string, error) { return "salt", nil }
func (fakeHasher) Hash(salt, password string) (string, error) {
	return "hash:" + salt + ":" + password, nil
}
func (fakeHasher) Compare(hash, salt, password string) error {
	if hash != "hash:"+salt+":"+password {
		return fmt.Errorf("mismatch")
	}
	return nil
}

// fakeIssuer is a TokenIssuer that returns a predictable token.
type fakeIssuer struct{}

func (fakeIssuer) Issue(userID, email string, _ time.Duration) (string, error) {
	return "token-for-" + userID, nil
}

func newTestEvent(repo *memEventRepo, title, creatorID string, maxParticipants *int) *domain.Event {
	now := time.Now()
	e := domain.NewEvent(title, "", "Kyiv", now.Add(24*time.Hour), nil, maxParticipants, creatorID, now, now)
	_ = repo.Create(context.Background(), e)
	return e
}

func intPtr(v int) *int { return &v }
