// Package http wires controllers, middleware, and routes into the server handler.
package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"bizmeet/internal/delivery/http/controllers"
	"bizmeet/internal/delivery/http/helpers"
	"bizmeet/internal/delivery/http/middleware"
	"bizmeet/internal/domain"
)

// RouterDeps carries everything the router needs.
type RouterDeps struct {
	Entrepreneurs *controllers.EntrepreneurController
	Participants  *controllers.ParticipantController
	Events        *controllers.EventController
	Bookings      *controllers.BookingController
	Auth          *controllers.AuthController
	Verifier      domain.TokenVerifier
}

// NewRouter initializes the HTTP router with all application routes.
// Reads are public; every mutating route requires a Bearer token.
func NewRouter(deps RouterDeps) *http.ServeMux {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(deps.Verifier)

	// Entrepreneurs
	mux.HandleFunc("POST /entrepreneurs", auth(deps.Entrepreneurs.Create))
	mux.HandleFunc("GET /entrepreneurs", deps.Entrepreneurs.List)
	mux.HandleFunc("GET /entrepreneurs/active", deps.Entrepreneurs.ListActive)
	mux.HandleFunc("GET /entrepreneurs/{entrepreneurID}", deps.Entrepreneurs.GetByID)
	mux.HandleFunc("PATCH /entrepreneurs/{entrepreneurID}", auth(deps.Entrepreneurs.Update))
	mux.HandleFunc("DELETE /entrepreneurs/{entrepreneurID}", auth(deps.Entrepreneurs.Delete))

	// Participants
	mux.HandleFunc("POST /participants", auth(deps.Participants.Create))
	mux.HandleFunc("GET /participants", deps.Participants.List)
	mux.HandleFunc("GET /participants/{participantID}", deps.Participants.GetByID)
	mux.HandleFunc("PATCH /participants/{participantID}", auth(deps.Participants.Update))
	mux.HandleFunc("DELETE /participants/{participantID}", auth(deps.Participants.Delete))

	// Events and entrepreneur assignments
	mux.HandleFunc("POST /events", auth(deps.Events.Create))
	mux.HandleFunc("GET /events", deps.Events.List)
	mux.HandleFunc("GET /events/{eventID}", deps.Events.GetByID)
	mux.HandleFunc("PATCH /events/{eventID}", auth(deps.Events.Update))
	mux.HandleFunc("DELETE /events/{eventID}", auth(deps.Events.Delete))
	mux.HandleFunc("POST /events/{eventID}/entrepreneurs/{entrepreneurID}", auth(deps.Events.AssignEntrepreneur))
	mux.HandleFunc("DELETE /events/{eventID}/entrepreneurs/{entrepreneurID}", auth(deps.Events.RemoveEntrepreneur))

	// Bookings and availability
	mux.HandleFunc("POST /bookings", auth(deps.Bookings.Create))
	mux.HandleFunc("GET /bookings/{bookingID}", deps.Bookings.GetByID)
	mux.HandleFunc("DELETE /bookings/{bookingID}", auth(deps.Bookings.Delete))
	mux.HandleFunc("GET /events/{eventID}/bookings", deps.Bookings.ListByEvent)
	mux.HandleFunc("GET /events/{eventID}/bookings/stream", deps.Bookings.Stream)
	mux.HandleFunc("GET /events/{eventID}/availability", deps.Bookings.Availability)

	// Auth
	mux.HandleFunc("POST /auth/signup", deps.Auth.SignUp)
	mux.HandleFunc("POST /auth/login", deps.Auth.Login)

	// Health
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
