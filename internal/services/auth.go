package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"eventboard/internal/domain"
)

const minPasswordLen = 6

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type authService struct {
	userRepo    domain.UserRepository
	hasher      domain.PasswordHasher
	tokenIssuer domain.TokenIssuer
	tokenExpiry time.Duration
}

// NewAuthService creates an AuthService with the given repository and auth ports.
func NewAuthService(userRepo domain.UserRepository, hasher domain.PasswordHasher, tokenIssuer domain.TokenIssuer, tokenExpiry time.Duration) domain.AuthService {
	return &authService{
		userRepo:    userRepo,
		hasher:      hasher,
		tokenIssuer: tokenIssuer,
		tokenExpiry: tokenExpiry,
	}
}

func (s *authService) SignUp(ctx context.Context, email, password, name string) (*domain.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if !emailRegexp.MatchString(email) {
		return nil, fmt.Errorf("%w: invalid email format", domain.ErrInvalidInput)
	}
	if len(password) < minPasswordLen {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrInvalidInput, minPasswordLen)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}

	salt, err := s.hasher.GenerateSalt()
	if err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	hash, err := s.hasher.Hash(salt, password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	user := domain.NewUser(email, hash, salt, name, now, now)
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("get user: %w", err)
	}
	if err := s.hasher.Compare(user.PasswordHash, user.Salt, password); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokenIssuer.Issue(user.ID, user.Email, s.tokenExpiry)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}
	return token, user, nil
}
