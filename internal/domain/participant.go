package domain

import (
	"context"
	"time"
)

// Participant represents a visitor who books meetings with entrepreneurs.
// swagger:model Participant
type Participant struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewParticipant returns a new Participant with the given fields. ID is set by the repository on create.
func NewParticipant(name, phone, email string, createdAt, updatedAt time.Time) *Participant {
	return &Participant{
		Name:      name,
		Phone:     phone,
		Email:     email,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// ParticipantInput is the untrusted form shape for creating or updating a participant.
type ParticipantInput struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// ParticipantDraft is a validated, normalized participant form value.
type ParticipantDraft struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// ParticipantRepository defines storage operations for participants.
type ParticipantRepository interface {
	Create(ctx context.Context, p *Participant) error
	GetByID(ctx context.Context, id string) (*Participant, error)
	List(ctx context.Context, params PaginationParams) ([]*Participant, int, error)
	Update(ctx context.Context, p *Participant) error
	Delete(ctx context.Context, id string) error
}

// ParticipantService defines participant CRUD operations over validated input.
type ParticipantService interface {
	Create(ctx context.Context, input ParticipantInput) (*Participant, error)
	GetByID(ctx context.Context, id string) (*Participant, error)
	List(ctx context.Context, params PaginationParams) ([]*Participant, int, error)
	Update(ctx context.Context, id string, input ParticipantInput) (*Participant, error)
	Delete(ctx context.Context, id string) error
}
