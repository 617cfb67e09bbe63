package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"eventboard/internal/delivery/http/helpers"
	"eventboard/internal/delivery/http/middleware"
	"eventboard/internal/domain"
)

// UpdateProfileRequest is the request body for PUT /users/profile.
type UpdateProfileRequest struct {
	Name string `json:"name"`
}

// Validate implements helpers.Validator.
func (u UpdateProfileRequest) Validate() []string {
	if strings.TrimSpace(u.Name) == "" {
		return []string{"name is required"}
	}
	return nil
}

// ProfileSuccessResponse is the success response envelope for GET and PUT /users/profile (200).
type ProfileSuccessResponse struct {
	Data  *domain.User      `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// UserController handles profile and per-user event listing endpoints.
type UserController struct {
	Logger *slog.Logger
	Users  domain.UserService
	Events domain.EventService
}

func NewUserController(logger *slog.Logger, users domain.UserService, events domain.EventService) *UserController {
	return &UserController{
		Logger: logger,
		Users:  users,
		Events: events,
	}
}

// GetProfile godoc
// @Summary Get the current user's profile
// @Description Returns the authenticated user's profile.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.ProfileSuccessResponse "data contains the user"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /users/profile [get]
func (c *UserController) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	user, err := c.Users.GetByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "user not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal server error")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, user)
}

// UpdateProfile godoc
// @Summary Update the current user's profile
// @Description Updates the authenticated user's name.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body UpdateProfileRequest true "Profile fields"
// @Success 200 {object} controllers.ProfileSuccessResponse "data contains the updated user"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /users/profile [put]
func (c *UserController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	var req UpdateProfileRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	user, err := c.Users.UpdateName(r.Context(), userID, req.Name)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "user not found")
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
	helpers.WriteJSONSuccess(w, http.StatusOK, user)
}

// MyEvents godoc
// @Summary List events created by the current user
// @Description Returns events the authenticated user created, ordered by date ascending.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.EventListSuccessResponse "data is an array of events"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /users/my-events [get]
func (c *UserController) MyEvents(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	events, err := c.Events.ListEventsByCreator(r.Context(), userID)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal server error")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

// MyRegistrations godoc
// @Summary List events the current user is registered for
// @Description Returns events the authenticated user is registered for, ordered by date ascending.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.EventListSuccessResponse "data is an array of events"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /users/my-registrations [get]
func (c *UserController) MyRegistrations(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	events, err := c.Events.ListEventsRegisteredBy(r.Context(), userID)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal server error")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}
