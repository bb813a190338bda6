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

	"bizmeet/config"
	_ "bizmeet/docs"
	authadapter "bizmeet/internal/adapters/auth"
	emailadapter "bizmeet/internal/adapters/email"
	delivery "bizmeet/internal/delivery/http"
	"bizmeet/internal/delivery/http/controllers"
	"bizmeet/internal/delivery/http/middleware"
	"bizmeet/internal/repository/postgres"
	"bizmeet/internal/services"
)

const shutdownTimeout = 10 * time.Second

// @title BizMeet Booking API
// @version 1.0
// @description Admin API for business networking events: entrepreneurs, participants, events, and time-slotted meeting bookings.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}
	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Error("ping database", "err", err)
		os.Exit(1)
	}

	entrepreneurRepo := postgres.NewEntrepreneurRepository(db)
	participantRepo := postgres.NewParticipantRepository(db)
	eventRepo := postgres.NewEventRepository(db)
	bookingRepo := postgres.NewBookingRepository(db)
	userRepo := postgres.NewUserRepository(db)

	listener, err := postgres.NewBookingListener(cfg.DBUrl, logger)
	if err != nil {
		logger.Error("start booking listener", "err", err)
		os.Exit(1)
	}

	mailer, err := emailadapter.NewMailer(cfg.Email)
	if err != nil {
		logger.Error("configure mailer", "err", err)
		os.Exit(1)
	}
	emailService := services.NewEmailService(mailer, emailadapter.NewTemplateRenderer())

	hasher := authadapter.NewBcryptHasher(12)
	tokens := authadapter.NewJWTCodec(cfg.JWTSecret)

	entrepreneurService := services.NewEntrepreneurService(entrepreneurRepo)
	participantService := services.NewParticipantService(participantRepo)
	eventService := services.NewEventService(eventRepo, entrepreneurRepo)
	bookingService := services.NewBookingService(bookingRepo, eventRepo, entrepreneurRepo, participantRepo, emailService, logger)
	authService := services.NewAuthService(userRepo, hasher, tokens, cfg.JWTExpiry)

	mux := delivery.NewRouter(delivery.RouterDeps{
		Entrepreneurs: controllers.NewEntrepreneurController(logger, entrepreneurService),
		Participants:  controllers.NewParticipantController(logger, participantService),
		Events:        controllers.NewEventController(logger, eventService),
		Bookings:      controllers.NewBookingController(logger, bookingService, listener),
		Auth:          controllers.NewAuthController(logger, authService),
		Verifier:      tokens,
	})

	handler := middleware.LoggingMiddleware(logger,
		middleware.CORS(cfg.CORSAllowedOrigins, mux))

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go listener.Run(ctx)

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "err", err)
	}
	logger.Info("server stopped")
}
