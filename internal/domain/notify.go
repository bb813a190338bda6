package domain

import "context"

// Booking change actions published on the booking change channel.
const (
	BookingCreated = "created"
	BookingDeleted = "deleted"
)

// BookingChange is one change notification for an event's booking set.
// Consumers re-derive the availability grid when they receive one.
type BookingChange struct {
	EventID   string `json:"event_id"`
	BookingID string `json:"booking_id"`
	Action    string `json:"action"`
}

// BookingSubscriber delivers booking changes for a single event.
// The returned cancel func must be called to release the subscription.
type BookingSubscriber interface {
	Subscribe(ctx context.Context, eventID string) (<-chan BookingChange, func(), error)
}
