package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"eventboard/internal/delivery/http/controllers"
	"eventboard/internal/delivery/http/helpers"
)

// NewRouter initializes the HTTP router with all application routes.
// requireAuth wraps protected handlers with bearer-token authentication.
func NewRouter(
	eventController *controllers.EventController,
	registrationController *controllers.RegistrationController,
	userController *controllers.UserController,
	authController *controllers.AuthController,
	requireAuth func(http.HandlerFunc) http.HandlerFunc,
) *http.ServeMux {
	mux := http.NewServeMux()

	// Health
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Auth
	mux.HandleFunc("POST /auth/signup", authController.SignUp)
	mux.HandleFunc("POST /auth/login", authController.Login)

	// Events (list and detail are public)
	mux.HandleFunc("GET /events", eventController.ListEvents)
	mux.HandleFunc("GET /events/{eventID}", eventController.GetEventByID)
	mux.HandleFunc("POST /events", requireAuth(eventController.CreateEvent))
	mux.HandleFunc("PUT /events/{eventID}", requireAuth(eventController.UpdateEvent))
	mux.HandleFunc("DELETE /events/{eventID}", requireAuth(eventController.DeleteEvent))

	// Registrations
	mux.HandleFunc("POST /events/{eventID}/register", requireAuth(registrationController.Register))
	mux.HandleFunc("DELETE /events/{eventID}/register", requireAuth(registrationController.Unregister))
	mux.HandleFunc("GET /events/{eventID}/registration-status", requireAuth(registrationController.RegistrationStatus))

	// Users
	mux.HandleFunc("GET /users/profile", requireAuth(userController.GetProfile))
	mux.HandleFunc("PUT /users/profile", requireAuth(userController.UpdateProfile))
	mux.HandleFunc("GET /users/my-events", requireAuth(userController.MyEvents))
	mux.HandleFunc("GET /users/my-registrations", requireAuth(userController.MyRegistrations))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
