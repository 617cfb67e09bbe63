package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"eventboard/config"
	"eventboard/internal/adapters/auth"
	httpdelivery "eventboard/internal/delivery/http"
	"eventboard/internal/delivery/http/controllers"
	"eventboard/internal/delivery/http/middleware"
	"eventboard/internal/repository/postgres"
	"eventboard/internal/services"
)

const (
	bcryptCost     = 10
	serviceTimeout = 5 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}
	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}

	bootCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.PingContext(bootCtx); err != nil {
		logger.Error("failed to ping database", "err", err)
		os.Exit(1)
	}
	if err := postgres.Migrate(bootCtx, db); err != nil {
		logger.Error("failed to run migrations", "err", err)
		os.Exit(1)
	}
	logger.Info("database ready")

	// Repositories
	userRepo := postgres.NewUserRepository(db)
	eventRepo := postgres.NewEventRepository(db)
	registrationRepo := postgres.NewRegistrationRepository(db)

	// Auth adapters
	signer := auth.NewJWTSigner(cfg.JWTSecret)
	hasher := auth.NewBcryptHasher(bcryptCost)

	// Services
	authService := services.NewAuthService(userRepo, hasher, signer, cfg.JWTExpiry)
	userService := services.NewUserService(userRepo)
	eventService := services.NewEventService(eventRepo, serviceTimeout)
	registrationService := services.NewRegistrationService(eventRepo, registrationRepo, serviceTimeout)

	// Controllers
	authController := controllers.NewAuthController(logger, authService)
	userController := controllers.NewUserController(logger, userService, eventService)
	eventController := controllers.NewEventController(logger, eventService)
	registrationController := controllers.NewRegistrationController(logger, registrationService)

	requireAuth := middleware.RequireAuth(signer, logger)
	mux := httpdelivery.NewRouter(eventController, registrationController, userController, authController, requireAuth)

	var handler http.Handler = mux
	handler = middleware.LoggingMiddleware(logger, handler)
	handler = middleware.RequestID(handler)
	handler = middleware.CORS(cfg.AllowedOrigins, handler)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("server starting", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "err", err)
	}
	if err := db.Close(); err != nil {
		logger.Error("failed to close database", "err", err)
	}
	logger.Info("server exited")
}
