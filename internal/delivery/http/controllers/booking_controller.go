package controllers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"bizmeet/internal/delivery/http/helpers"
	"bizmeet/internal/domain"
)

// sseKeepAliveInterval is how often the stream sends a comment line so
// intermediaries don't drop an idle connection.
const sseKeepAliveInterval = 25 * time.Second

type BookingController struct {
	Logger     *slog.Logger
	Service    domain.BookingService
	Subscriber domain.BookingSubscriber
}

func NewBookingController(logger *slog.Logger, svc domain.BookingService, sub domain.BookingSubscriber) *BookingController {
	return &BookingController{
		Logger:     logger,
		Service:    svc,
		Subscriber: sub,
	}
}

// Create godoc
// @Summary Book a meeting slot
// @Description Books one time slot with an entrepreneur for a participant at an event. Each (event, entrepreneur, slot) triple can be booked at most once.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param booking body domain.BookingInput true "Booking form"
// @Success 201 {object} helpers.APIResponse "data contains the created booking"
// @Failure 400 {object} helpers.APIResponse "error.code: validation_failed with error.fields"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (event, entrepreneur, or participant)"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (slot already booked)"
// @Router /bookings [post]
func (c *BookingController) Create(w http.ResponseWriter, r *http.Request) {
	var input domain.BookingInput
	if !helpers.DecodeJSON(w, r, &input) {
		return
	}
	booking, err := c.Service.Create(r.Context(), input)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, booking)
}

// ListByEvent godoc
// @Summary List an event's bookings
// @Description Returns the event's bookings in time slot order with entrepreneur and participant attached.
// @Tags bookings
// @Produce json
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data contains the bookings"
// @Router /events/{eventID}/bookings [get]
func (c *BookingController) ListByEvent(w http.ResponseWriter, r *http.Request) {
	bookings, err := c.Service.ListByEventID(r.Context(), r.PathValue("eventID"))
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, bookings)
}

// GetByID godoc
// @Summary Get a booking
// @Tags bookings
// @Produce json
// @Param bookingID path string true "Booking ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data contains the booking"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /bookings/{bookingID} [get]
func (c *BookingController) GetByID(w http.ResponseWriter, r *http.Request) {
	booking, err := c.Service.GetByID(r.Context(), r.PathValue("bookingID"))
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, booking)
}

// Delete godoc
// @Summary Cancel a booking
// @Description Deletes the booking, freeing its slot.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param bookingID path string true "Booking ID (UUID)"
// @Success 204 "no content"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /bookings/{bookingID} [delete]
func (c *BookingController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.Delete(r.Context(), r.PathValue("bookingID")); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Availability godoc
// @Summary Get the availability grid for an event
// @Description Returns the entrepreneur x time-slot grid. Each cell is booked, available, or unavailable. Repeat the unavailable query parameter as entrepreneurID:slot to mark override cells.
// @Tags bookings
// @Produce json
// @Param eventID path string true "Event ID (UUID)"
// @Param unavailable query []string false "Override cells, entrepreneurID:slot (e.g. ...:10:00-11:00)" collectionFormat(multi)
// @Success 200 {object} helpers.APIResponse "data contains the availability grid"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (malformed override)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{eventID}/availability [get]
func (c *BookingController) Availability(w http.ResponseWriter, r *http.Request) {
	overrides, err := parseSlotOverrides(r.URL.Query()["unavailable"])
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	grid, err := c.Service.GetAvailabilityGrid(r.Context(), r.PathValue("eventID"), overrides)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, grid)
}

// parseSlotOverrides parses repeated "entrepreneurID:slot" values. The first
// colon splits the pair; entrepreneur ids never contain colons, slot labels do.
func parseSlotOverrides(values []string) (domain.SlotOverrides, error) {
	if len(values) == 0 {
		return nil, nil
	}
	overrides := make(domain.SlotOverrides)
	for _, v := range values {
		id, slotRaw, found := strings.Cut(v, ":")
		if !found || id == "" {
			return nil, fmt.Errorf("malformed unavailable override %q", v)
		}
		slot := domain.TimeSlot(slotRaw)
		if !slot.IsValid() {
			return nil, fmt.Errorf("unknown time slot %q in unavailable override", slotRaw)
		}
		overrides[id] = append(overrides[id], slot)
	}
	return overrides, nil
}

// Stream godoc
// @Summary Stream booking changes for an event
// @Description Server-sent events. Emits a change event whenever a booking for the event is created or deleted; clients re-fetch the grid on each event.
// @Tags bookings
// @Produce text/event-stream
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {string} string "SSE stream of booking change events"
// @Router /events/{eventID}/bookings/stream [get]
func (c *BookingController) Stream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "streaming unsupported")
		return
	}
	eventID := r.PathValue("eventID")

	changes, cancel, err := c.Subscriber.Subscribe(r.Context(), eventID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	keepAlive := time.NewTicker(sseKeepAliveInterval)
	defer keepAlive.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case change, open := <-changes:
			if !open {
				return
			}
			payload, err := json.Marshal(change)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: change\ndata: %s\n\n", payload)
			flusher.Flush()
		case <-keepAlive.C:
			fmt.Fprint(w, ": keep-alive\n\n")
			flusher.Flush()
		}
	}
}
