package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"eventboard/internal/delivery/http/helpers"
	"eventboard/internal/delivery/http/middleware"
	"eventboard/internal/domain"
)

// MessageResponse is the data payload for endpoints that only confirm an action.
type MessageResponse struct {
	Message string `json:"message"`
}

// EventRequest is the request body for POST /events and PUT /events/{eventID}.
// PUT overwrites all mutable fields, so the same required-field rules apply.
type EventRequest struct {
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	Date            string  `json:"date"`
	Location        string  `json:"location"`
	ImageURL        *string `json:"image_url"`
	MaxParticipants *int    `json:"max_participants"`

	parsedDate time.Time
}

// Validate implements helpers.Validator. Date must be ISO 8601 (RFC 3339).
func (e *EventRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(e.Title) == "" {
		errs = append(errs, "title is required")
	}
	if strings.TrimSpace(e.Location) == "" {
		errs = append(errs, "location is required")
	}
	if strings.TrimSpace(e.Date) == "" {
		errs = append(errs, "date is required")
	} else {
		parsed, err := time.Parse(time.RFC3339, e.Date)
		if err != nil {
			errs = append(errs, "date must be a valid ISO 8601 timestamp")
		} else {
			e.parsedDate = parsed
		}
	}
	if e.MaxParticipants != nil && *e.MaxParticipants <= 0 {
		errs = append(errs, "max_participants must be a positive integer")
	}
	return errs
}

// EventSuccessResponse is the success response envelope for event endpoints returning a single event.
type EventSuccessResponse struct {
	Data  *domain.Event     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// EventListSuccessResponse is the success response envelope for event list endpoints.
type EventListSuccessResponse struct {
	Data  []*domain.Event   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// EventController handles event CRUD endpoints.
type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// ListEvents godoc
// @Summary List all events
// @Description Returns all events ordered by date ascending, each with its creator summary and live registration count. Public.
// @Tags events
// @Produce json
// @Success 200 {object} controllers.EventListSuccessResponse "data is an array of events"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := c.Service.ListEvents(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal server error")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

// GetEventByID godoc
// @Summary Get an event by ID
// @Description Returns the event with its creator summary and live registration count. Public.
// @Tags events
// @Produce json
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} controllers.EventSuccessResponse "data contains the event"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID} [get]
func (c *EventController) GetEventByID(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	event, err := c.Service.GetEventByID(r.Context(), eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal server error")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// CreateEvent godoc
// @Summary Create a new event
// @Description Create an event. Title, date (ISO 8601), and location are required; description, image_url, and max_participants are optional. The authenticated user becomes the creator.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body EventRequest true "Event data"
// @Success 201 {object} controllers.EventSuccessResponse "data contains the created event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req EventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	now := time.Now()
	event := domain.NewEvent(req.Title, req.Description, req.Location, req.parsedDate, req.ImageURL, req.MaxParticipants, userID, now, now)
	created, err := c.Service.CreateEvent(r.Context(), event)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal server error")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, created)
}

// UpdateEvent godoc
// @Summary Update an event
// @Description Overwrites the event's mutable fields (title, description, date, location, image_url, max_participants). Only the creator may update.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param event body EventRequest true "Event data"
// @Success 200 {object} controllers.EventSuccessResponse "data contains the updated event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (not creator)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID} [put]
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	var req EventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	callerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	fields := &domain.Event{
		Title:           req.Title,
		Description:     req.Description,
		Date:            req.parsedDate,
		Location:        req.Location,
		ImageURL:        req.ImageURL,
		MaxParticipants: req.MaxParticipants,
	}
	event, err := c.Service.UpdateEvent(r.Context(), eventID, callerID, fields)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		if errors.Is(err, domain.ErrForbidden) {
			helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeForbidden, "not authorized to update this event")
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
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// DeleteEvent godoc
// @Summary Delete an event
// @Description Deletes the event and all its registrations. Only the creator may delete.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data contains a confirmation message"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (not creator)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID} [delete]
func (c *EventController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	callerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	if err := c.Service.DeleteEvent(r.Context(), eventID, callerID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		if errors.Is(err, domain.ErrForbidden) {
			helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeForbidden, "not authorized to delete this event")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal server error")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, MessageResponse{Message: "event deleted successfully"})
}
