package domain

import "errors"

// Sentinel errors shared across repositories and services.
var (
	ErrNotFound           = errors.New("not found")
	ErrBookingConflict    = errors.New("time slot already booked for this entrepreneur")
	ErrAlreadyAssigned    = errors.New("entrepreneur already assigned to this event")
	ErrDuplicateEmail     = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
