package domain

import (
	"context"
	"time"
)

// Entrepreneur represents a company taking meetings at networking events.
// swagger:model Entrepreneur
type Entrepreneur struct {
	ID                 string    `json:"id"`
	CompanyName        string    `json:"company_name"`
	RegistrationNumber string    `json:"registration_number"`
	BusinessCategory   string    `json:"business_category"`
	IsActive           bool      `json:"is_active"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// NewEntrepreneur returns a new Entrepreneur with the given fields. ID is set by the repository on create.
func NewEntrepreneur(companyName, registrationNumber, businessCategory string, isActive bool, createdAt, updatedAt time.Time) *Entrepreneur {
	return &Entrepreneur{
		CompanyName:        companyName,
		RegistrationNumber: registrationNumber,
		BusinessCategory:   businessCategory,
		IsActive:           isActive,
		CreatedAt:          createdAt,
		UpdatedAt:          updatedAt,
	}
}

// EntrepreneurInput is the untrusted form shape for creating or updating an
// entrepreneur. IsActive is a pointer so an absent field can be defaulted to
// true during validation.
type EntrepreneurInput struct {
	CompanyName        string `json:"company_name"`
	RegistrationNumber string `json:"registration_number"`
	BusinessCategory   string `json:"business_category"`
	IsActive           *bool  `json:"is_active"`
}

// EntrepreneurDraft is a validated, normalized entrepreneur form value.
// Identity and timestamps are assigned by the persistence layer.
type EntrepreneurDraft struct {
	CompanyName        string `json:"company_name"`
	RegistrationNumber string `json:"registration_number"`
	BusinessCategory   string `json:"business_category"`
	IsActive           bool   `json:"is_active"`
}

// EntrepreneurRepository defines storage operations for entrepreneurs.
type EntrepreneurRepository interface {
	Create(ctx context.Context, e *Entrepreneur) error
	GetByID(ctx context.Context, id string) (*Entrepreneur, error)
	List(ctx context.Context, params PaginationParams) ([]*Entrepreneur, int, error)
	ListActive(ctx context.Context) ([]*Entrepreneur, error)
	Update(ctx context.Context, e *Entrepreneur) error
	Delete(ctx context.Context, id string) error
}

// EntrepreneurService defines entrepreneur CRUD operations over validated input.
type EntrepreneurService interface {
	Create(ctx context.Context, input EntrepreneurInput) (*Entrepreneur, error)
	GetByID(ctx context.Context, id string) (*Entrepreneur, error)
	List(ctx context.Context, params PaginationParams) ([]*Entrepreneur, int, error)
	ListActive(ctx context.Context) ([]*Entrepreneur, error)
	Update(ctx context.Context, id string, input EntrepreneurInput) (*Entrepreneur, error)
	Delete(ctx context.Context, id string) error
}
