package domain

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for user operations.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrDuplicateEmail     = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// User represents a registered user. PasswordHash and Salt never leave the server.
// swagger:model User
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Salt         string    `json:"-"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserSummary is the public subset of user fields attached to events.
type UserSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// NewUser returns a new User with the given fields. ID is set by the repository on create.
func NewUser(email, passwordHash, salt, name string, createdAt, updatedAt time.Time) *User {
	return &User{
		Email:        email,
		PasswordHash: passwordHash,
		Salt:         salt,
		Name:         name,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}

// PasswordHasher handles salt generation, hashing, and verification.
type PasswordHasher interface {
	GenerateSalt() (string, error)
	Hash(salt, password string) (hash string, err error)
	Compare(hash, salt, password string) error
}

// TokenIssuer issues tokens (e.g. JWT) for an authenticated user.
type TokenIssuer interface {
	Issue(userID, email string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the authenticated user ID.
type TokenVerifier interface {
	Verify(token string) (userID string, err error)
}

// UserRepository defines the interface for user storage.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	Update(ctx context.Context, user *User) error
}

// AuthService defines signup and login.
type AuthService interface {
	SignUp(ctx context.Context, email, password, name string) (*User, error)
	Login(ctx context.Context, email, password string) (token string, user *User, err error)
}

// UserService defines profile operations for the authenticated user.
type UserService interface {
	GetByID(ctx context.Context, id string) (*User, error)
	UpdateName(ctx context.Context, id, name string) (*User, error)
}
