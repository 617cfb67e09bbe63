package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	"eventboard/internal/delivery/http/helpers"
	"eventboard/internal/domain"
)

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// SignUpRequest is the request body for POST /auth/signup
type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// Validate implements helpers.Validator.
func (s SignUpRequest) Validate() []string {
	var errs []string
	email := strings.TrimSpace(strings.ToLower(s.Email))
	if email == "" {
		errs = append(errs, "email is required")
	} else if !emailRegexp.MatchString(email) {
		errs = append(errs, "invalid email format")
	}
	if s.Password == "" {
		errs = append(errs, "password is required")
	} else if len(s.Password) < 6 {
		errs = append(errs, "password must be at least 6 characters")
	}
	if strings.TrimSpace(s.Name) == "" {
		errs = append(errs, "name is required")
	}
	return errs
}

// LoginRequest is the request body for POST /auth/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate implements helpers.Validator.
func (l LoginRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(l.Email) == "" {
		errs = append(errs, "email is required")
	}
	if l.Password == "" {
		errs = append(errs, "password is required")
	}
	return errs
}

// LoginResponse is the response body for POST /auth/login
type LoginResponse struct {
	Token     string       `json:"token"`
	TokenType string       `json:"token_type"`
	User      *domain.User `json:"user"`
}

// SignUpSuccessResponse is the success response envelope for POST /auth/signup (201).
type SignUpSuccessResponse struct {
	Data  *domain.User      `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// LoginSuccessResponse is the success response envelope for POST /auth/login (200).
type LoginSuccessResponse struct {
	Data  LoginResponse     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// AuthController handles signup and login.
type AuthController struct {
	Logger  *slog.Logger
	Service domain.AuthService
}

// NewAuthController creates an AuthController with the given logger and service.
func NewAuthController(logger *slog.Logger, svc domain.AuthService) *AuthController {
	return &AuthController{
		Logger:  logger,
		Service: svc,
	}
}

// SignUp godoc
// @Summary Sign up a new user
// @Description Create a new user with email, password, and name. Password is stored hashed.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body SignUpRequest true "Sign-up data"
// @Success 201 {object} controllers.SignUpSuccessResponse "data contains the created user"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (email already registered)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /auth/signup [post]
func (c *AuthController) SignUp(w http.ResponseWriter, r *http.Request) {
	var req SignUpRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	user, err := c.Service.SignUp(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "email already registered")
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal server error")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, user)
}

// Login godoc
// @Summary Log in
// @Description Authenticate with email and password. Returns a JWT and the user.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Login credentials"
// @Success 200 {object} controllers.LoginSuccessResponse "data contains token, token_type, and user"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /auth/login [post]
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	token, user, err := c.Service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "invalid credentials")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal server error")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, LoginResponse{Token: token, TokenType: "Bearer", User: user})
}
