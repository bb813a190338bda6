package domain

import (
	"context"
	"time"
)

// Event represents a business networking event day.
// Entrepreneurs is populated on reads that join the assignment table;
// it is nil when the association was not requested.
// swagger:model Event
type Event struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	EventDate     time.Time       `json:"event_date"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	Entrepreneurs []*Entrepreneur `json:"entrepreneurs,omitempty"`
}

// NewEvent returns a new Event with the given fields. ID is set by the repository on create.
func NewEvent(name string, eventDate time.Time, createdAt, updatedAt time.Time) *Event {
	return &Event{
		Name:      name,
		EventDate: eventDate,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// EventEntrepreneur links one entrepreneur to one event. A pair may be
// linked at most once; duplicates map to ErrAlreadyAssigned.
// swagger:model EventEntrepreneur
type EventEntrepreneur struct {
	ID             string    `json:"id"`
	EventID        string    `json:"event_id"`
	EntrepreneurID string    `json:"entrepreneur_id"`
	CreatedAt      time.Time `json:"created_at"`
}

// EventInput is the untrusted form shape for creating or updating an event.
// EventDate is the raw date string as submitted (YYYY-MM-DD).
type EventInput struct {
	Name      string `json:"name"`
	EventDate string `json:"event_date"`
}

// EventDraft is a validated, normalized event form value.
type EventDraft struct {
	Name      string    `json:"name"`
	EventDate time.Time `json:"event_date"`
}

// EventEntrepreneurInput is the untrusted form shape for assigning an entrepreneur to an event.
type EventEntrepreneurInput struct {
	EventID        string `json:"event_id"`
	EntrepreneurID string `json:"entrepreneur_id"`
}

// EventEntrepreneurDraft is a validated event-entrepreneur link.
type EventEntrepreneurDraft struct {
	EventID        string `json:"event_id"`
	EntrepreneurID string `json:"entrepreneur_id"`
}

// EventRepository defines storage operations for events and their
// entrepreneur assignments.
type EventRepository interface {
	Create(ctx context.Context, e *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	List(ctx context.Context, params PaginationParams) ([]*Event, int, error)
	Update(ctx context.Context, e *Event) error
	Delete(ctx context.Context, id string) error

	AssignEntrepreneur(ctx context.Context, link *EventEntrepreneur) error
	RemoveEntrepreneur(ctx context.Context, eventID, entrepreneurID string) error
	ListEntrepreneurs(ctx context.Context, eventID string) ([]*Entrepreneur, error)
}

// EventService defines event CRUD and assignment operations over validated input.
type EventService interface {
	Create(ctx context.Context, input EventInput) (*Event, error)
	GetByID(ctx context.Context, id string) (*Event, error)
	List(ctx context.Context, params PaginationParams) ([]*Event, int, error)
	Update(ctx context.Context, id string, input EventInput) (*Event, error)
	Delete(ctx context.Context, id string) error

	AssignEntrepreneur(ctx context.Context, input EventEntrepreneurInput) (*EventEntrepreneur, error)
	RemoveEntrepreneur(ctx context.Context, eventID, entrepreneurID string) error
}
