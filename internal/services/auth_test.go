package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"eventboard/internal/domain"
)

func TestSignUp(t *testing.T) {
	ctx := context.Background()

	t.Run("creates user", func(t *testing.T) {
		userRepo := newMemUserRepo()
		svc := NewAuthService(userRepo, fakeHasher{}, fakeIssuer{}, time.Hour)

		user, err := svc.SignUp(ctx, "Alice@Example.COM", "secret1", "Alice")
		if err != nil {
			t.Fatalf("SignUp: %v", err)
		}
		if user.Email != "alice@example.com" {
			t.Errorf("expected normalized email, got %q", user.Email)
		}
		if user.PasswordHash != "hash:salt:secret1" {
			t.Errorf("unexpected password hash %q", user.PasswordHash)
		}
		if user.ID == "" {
			t.Error("expected ID to be assigned")
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		userRepo := newMemUserRepo()
		svc := NewAuthService(userRepo, fakeHasher{}, fakeIssuer{}, time.Hour)

		if _, err := svc.SignUp(ctx, "alice@example.com", "secret1", "Alice"); err != nil {
			t.Fatalf("first SignUp: %v", err)
		}
		_, err := svc.SignUp(ctx, "ALICE@example.com", "secret2", "Alice B")
		if !errors.Is(err, domain.ErrDuplicateEmail) {
			t.Errorf("expected ErrDuplicateEmail, got %v", err)
		}
	})

	t.Run("validation", func(t *testing.T) {
		userRepo := newMemUserRepo()
		svc := NewAuthService(userRepo, fakeHasher{}, fakeIssuer{}, time.Hour)

		cases := []struct {
			name     string
			email    string
			password string
			userName string
		}{
			{"bad email", "not-an-email", "secret1", "Alice"},
			{"short password", "alice@example.com", "12345", "Alice"},
			{"blank name", "alice@example.com", "secret1", "   "},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := svc.SignUp(ctx, tc.email, tc.password, tc.userName)
				if !errors.Is(err, domain.ErrInvalidInput) {
					t.Errorf("expected ErrInvalidInput, got %v", err)
				}
			})
		}
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (domain.AuthService, *domain.User) {
		t.Helper()
		userRepo := newMemUserRepo()
		svc := NewAuthService(userRepo, fakeHasher{}, fakeIssuer{}, time.Hour)
		user, err := svc.SignUp(ctx, "alice@example.com", "secret1", "Alice")
		if err != nil {
			t.Fatalf("SignUp: %v", err)
		}
		return svc, user
	}

	t.Run("valid credentials", func(t *testing.T) {
		svc, created := setup(t)

		token, user, err := svc.Login(ctx, "alice@example.com", "secret1")
		if err != nil {
			t.Fatalf("Login: %v", err)
		}
		if token != "token-for-"+created.ID {
			t.Errorf("unexpected token %q", token)
		}
		if user.ID != created.ID {
			t.Errorf("unexpected user %+v", user)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, _ := setup(t)

		_, _, err := svc.Login(ctx, "alice@example.com", "wrong-pass")
		if !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		svc, _ := setup(t)

		_, _, err := svc.Login(ctx, "bob@example.com", "secret1")
		if !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})
}
