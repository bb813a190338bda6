package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"bizmeet/internal/delivery/http/helpers"
	"bizmeet/internal/domain"
	"bizmeet/internal/validation"
)

// writeServiceError maps a service error onto the response envelope.
// Validation failures carry the field-keyed message map; sentinel domain
// errors map to their status codes; anything else is a logged 500.
func writeServiceError(logger *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		helpers.WriteValidationError(w, verr.Fields)
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "resource not found")
	case errors.Is(err, domain.ErrBookingConflict):
		helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "time slot is already booked for this entrepreneur")
	case errors.Is(err, domain.ErrAlreadyAssigned):
		helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "entrepreneur is already assigned to this event")
	case errors.Is(err, domain.ErrDuplicateEmail):
		helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "email is already registered")
	case errors.Is(err, domain.ErrInvalidCredentials):
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "invalid email or password")
	default:
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal error")
	}
}

// listResponse is the data payload for paginated list endpoints.
type listResponse struct {
	Items any                    `json:"items"`
	Meta  helpers.PaginationMeta `json:"meta"`
}
