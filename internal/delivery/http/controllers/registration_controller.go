package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"eventboard/internal/delivery/http/helpers"
	"eventboard/internal/delivery/http/middleware"
	"eventboard/internal/domain"
)

// RegistrationSuccessResponse is the success response envelope for POST /events/{eventID}/register (201).
type RegistrationSuccessResponse struct {
	Data  *domain.Registration `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

// RegistrationStatusResponse is the data payload for GET /events/{eventID}/registration-status.
type RegistrationStatusResponse struct {
	Registered bool `json:"registered"`
}

// RegistrationStatusSuccessResponse is the success response envelope for GET /events/{eventID}/registration-status (200).
type RegistrationStatusSuccessResponse struct {
	Data  RegistrationStatusResponse `json:"data"`
	Error *helpers.APIError          `json:"error"`
}

// RegistrationController handles event registration endpoints.
type RegistrationController struct {
	Logger  *slog.Logger
	Service domain.RegistrationService
}

func NewRegistrationController(logger *slog.Logger, svc domain.RegistrationService) *RegistrationController {
	return &RegistrationController{
		Logger:  logger,
		Service: svc,
	}
}

// Register godoc
// @Summary Register for an event
// @Description Registers the authenticated user for the event. Fails when the event is at capacity or the user is already registered. Returns the registration with an event snapshot for confirmation display.
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Success 201 {object} controllers.RegistrationSuccessResponse "data contains the registration"
// @Failure 400 {object} helpers.APIResponse "error.code: conflict (event full or already registered)"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/register [post]
func (c *RegistrationController) Register(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}

	reg, err := c.Service.Register(r.Context(), eventID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		if errors.Is(err, domain.ErrEventFull) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeConflict, "event is full")
			return
		}
		if errors.Is(err, domain.ErrAlreadyRegistered) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeConflict, "already registered for this event")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal server error")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, reg)
}

// Unregister godoc
// @Summary Cancel a registration
// @Description Cancels the authenticated user's registration for the event. Repeated calls after a successful cancel return 404.
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data contains a confirmation message"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/register [delete]
func (c *RegistrationController) Unregister(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}

	if err := c.Service.Unregister(r.Context(), eventID, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "registration not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal server error")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, MessageResponse{Message: "registration cancelled successfully"})
}

// RegistrationStatus godoc
// @Summary Check registration status
// @Description Reports whether the authenticated user is registered for the event. A missing event reads as not registered.
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} controllers.RegistrationStatusSuccessResponse "data contains the registered flag"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/registration-status [get]
func (c *RegistrationController) RegistrationStatus(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}

	registered, err := c.Service.IsRegistered(r.Context(), eventID, userID)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal server error")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, RegistrationStatusResponse{Registered: registered})
}
