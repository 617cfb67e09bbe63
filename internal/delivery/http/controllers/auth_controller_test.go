package controllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventboard/internal/delivery/http/helpers"
	"eventboard/internal/domain"
)

func TestAuthController_SignUp(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		fakeErr        error
		wantStatus     int
		wantCode       string
		wantBodySubstr string
	}{
		{
			name:       "success",
			body:       `{"email":"alice@example.com","password":"secret1","name":"Alice"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:           "invalid json",
			body:           `{invalid`,
			wantStatus:     http.StatusBadRequest,
			wantCode:       helpers.ErrCodeBadRequest,
			wantBodySubstr: "invalid",
		},
		{
			name:           "missing email",
			body:           `{"password":"secret1","name":"Alice"}`,
			wantStatus:     http.StatusBadRequest,
			wantCode:       helpers.ErrCodeBadRequest,
			wantBodySubstr: "email is required",
		},
		{
			name:           "malformed email",
			body:           `{"email":"not-an-email","password":"secret1","name":"Alice"}`,
			wantStatus:     http.StatusBadRequest,
			wantCode:       helpers.ErrCodeBadRequest,
			wantBodySubstr: "invalid email format",
		},
		{
			name:           "short password",
			body:           `{"email":"alice@example.com","password":"12345","name":"Alice"}`,
			wantStatus:     http.StatusBadRequest,
			wantCode:       helpers.ErrCodeBadRequest,
			wantBodySubstr: "password must be at least 6 characters",
		},
		{
			name:           "missing name",
			body:           `{"email":"alice@example.com","password":"secret1"}`,
			wantStatus:     http.StatusBadRequest,
			wantCode:       helpers.ErrCodeBadRequest,
			wantBodySubstr: "name is required",
		},
		{
			name:           "duplicate email",
			body:           `{"email":"taken@example.com","password":"secret1","name":"Alice"}`,
			fakeErr:        domain.ErrDuplicateEmail,
			wantStatus:     http.StatusConflict,
			wantCode:       helpers.ErrCodeConflict,
			wantBodySubstr: "email already registered",
		},
		{
			name:           "service error",
			body:           `{"email":"alice@example.com","password":"secret1","name":"Alice"}`,
			fakeErr:        errors.New("db error"),
			wantStatus:     http.StatusInternalServerError,
			wantCode:       helpers.ErrCodeInternalError,
			wantBodySubstr: "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeAuthService{
				signUpErr:    tt.fakeErr,
				signUpResult: &domain.User{ID: "user-1", Email: "alice@example.com", Name: "Alice"},
			}
			ctrl := NewAuthController(testLogger, fake)
			req := httptest.NewRequest(http.MethodPost, "/auth/signup", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			ctrl.SignUp(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			var envelope helpers.APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope), "response must be valid JSON envelope")
			if tt.wantStatus == http.StatusCreated {
				require.Nil(t, envelope.Error)
				assert.NotContains(t, rr.Body.String(), "password_hash", "credentials must not leak")
				assert.NotContains(t, rr.Body.String(), "salt")
				assert.Equal(t, "alice@example.com", fake.lastEmail)
			} else {
				require.NotNil(t, envelope.Error)
				assert.Equal(t, tt.wantCode, envelope.Error.Code, "error code")
				assert.Contains(t, envelope.Error.Message, tt.wantBodySubstr, "error message")
			}
		})
	}
}

func TestAuthController_Login(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		fakeErr        error
		wantStatus     int
		wantBodySubstr string
	}{
		{
			name:       "success",
			body:       `{"email":"alice@example.com","password":"secret1"}`,
			wantStatus: http.StatusOK,
		},
		{
			name:           "missing fields",
			body:           `{}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "email is required",
		},
		{
			name:           "wrong credentials",
			body:           `{"email":"alice@example.com","password":"wrong"}`,
			fakeErr:        domain.ErrInvalidCredentials,
			wantStatus:     http.StatusUnauthorized,
			wantBodySubstr: "invalid credentials",
		},
		{
			name:           "service error",
			body:           `{"email":"alice@example.com","password":"secret1"}`,
			fakeErr:        errors.New("db error"),
			wantStatus:     http.StatusInternalServerError,
			wantBodySubstr: "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeAuthService{
				loginErr:   tt.fakeErr,
				loginToken: "jwt-token",
				loginUser:  &domain.User{ID: "user-1", Email: "alice@example.com", Name: "Alice"},
			}
			ctrl := NewAuthController(testLogger, fake)
			req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			ctrl.Login(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			if tt.wantStatus == http.StatusOK {
				var envelope LoginSuccessResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
				assert.Equal(t, "jwt-token", envelope.Data.Token)
				assert.Equal(t, "Bearer", envelope.Data.TokenType)
				require.NotNil(t, envelope.Data.User)
				assert.Equal(t, "user-1", envelope.Data.User.ID)
			} else {
				assert.Contains(t, rr.Body.String(), tt.wantBodySubstr)
			}
		})
	}
}
