package domain

import (
	"context"
	"time"
)

// MeetingBooking reserves one time slot with one entrepreneur for one
// participant at an event. At most one booking may exist per
// (event, entrepreneur, time slot) triple.
// swagger:model MeetingBooking
type MeetingBooking struct {
	ID             string    `json:"id"`
	EventID        string    `json:"event_id"`
	EntrepreneurID string    `json:"entrepreneur_id"`
	ParticipantID  string    `json:"participant_id"`
	TimeSlot       TimeSlot  `json:"time_slot"`
	CreatedAt      time.Time `json:"created_at"`

	// Attached on event-scoped reads; nil otherwise.
	Entrepreneur *Entrepreneur `json:"entrepreneur,omitempty"`
	Participant  *Participant  `json:"participant,omitempty"`
}

// NewMeetingBooking returns a new MeetingBooking. ID is set by the repository on create.
func NewMeetingBooking(eventID, entrepreneurID, participantID string, slot TimeSlot, createdAt time.Time) *MeetingBooking {
	return &MeetingBooking{
		EventID:        eventID,
		EntrepreneurID: entrepreneurID,
		ParticipantID:  participantID,
		TimeSlot:       slot,
		CreatedAt:      createdAt,
	}
}

// BookingInput is the untrusted form shape for creating a meeting booking.
type BookingInput struct {
	EventID        string `json:"event_id"`
	EntrepreneurID string `json:"entrepreneur_id"`
	ParticipantID  string `json:"participant_id"`
	TimeSlot       string `json:"time_slot"`
}

// BookingDraft is a validated, normalized booking form value.
type BookingDraft struct {
	EventID        string   `json:"event_id"`
	EntrepreneurID string   `json:"entrepreneur_id"`
	ParticipantID  string   `json:"participant_id"`
	TimeSlot       TimeSlot `json:"time_slot"`
}

// BookingRepository defines storage operations for meeting bookings.
// Create must fail with ErrBookingConflict when the (event, entrepreneur,
// slot) triple is already taken; the table carries a unique constraint so
// the guarantee holds even across concurrent writers.
type BookingRepository interface {
	Create(ctx context.Context, b *MeetingBooking) error
	GetByID(ctx context.Context, id string) (*MeetingBooking, error)
	ListByEventID(ctx context.Context, eventID string) ([]*MeetingBooking, error)
	ExistsForSlot(ctx context.Context, eventID, entrepreneurID string, slot TimeSlot) (bool, error)
	Delete(ctx context.Context, id string) error
}

// BookingService defines booking operations and availability derivation.
type BookingService interface {
	Create(ctx context.Context, input BookingInput) (*MeetingBooking, error)
	GetByID(ctx context.Context, id string) (*MeetingBooking, error)
	ListByEventID(ctx context.Context, eventID string) ([]*MeetingBooking, error)
	Delete(ctx context.Context, id string) error
	GetAvailabilityGrid(ctx context.Context, eventID string, overrides SlotOverrides) (*AvailabilityGrid, error)
}
