package services

import (
	"context"
	"fmt"
	"time"

	"bizmeet/internal/domain"
	"bizmeet/internal/validation"
)

type entrepreneurService struct {
	repo domain.EntrepreneurRepository
}

// NewEntrepreneurService creates an EntrepreneurService backed by the given repository.
func NewEntrepreneurService(repo domain.EntrepreneurRepository) domain.EntrepreneurService {
	return &entrepreneurService{repo: repo}
}

func (s *entrepreneurService) Create(ctx context.Context, input domain.EntrepreneurInput) (*domain.Entrepreneur, error) {
	draft, errs := validation.Entrepreneur(input)
	if errs != nil {
		return nil, &validation.Error{Fields: errs}
	}

	now := time.Now()
	e := domain.NewEntrepreneur(draft.CompanyName, draft.RegistrationNumber, draft.BusinessCategory, draft.IsActive, now, now)
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, fmt.Errorf("create entrepreneur: %w", err)
	}
	return e, nil
}

func (s *entrepreneurService) GetByID(ctx context.Context, id string) (*domain.Entrepreneur, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *entrepreneurService) List(ctx context.Context, params domain.PaginationParams) ([]*domain.Entrepreneur, int, error) {
	return s.repo.List(ctx, params)
}

func (s *entrepreneurService) ListActive(ctx context.Context) ([]*domain.Entrepreneur, error) {
	return s.repo.ListActive(ctx)
}

func (s *entrepreneurService) Update(ctx context.Context, id string, input domain.EntrepreneurInput) (*domain.Entrepreneur, error) {
	draft, errs := validation.Entrepreneur(input)
	if errs != nil {
		return nil, &validation.Error{Fields: errs}
	}

	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	e.CompanyName = draft.CompanyName
	e.RegistrationNumber = draft.RegistrationNumber
	e.BusinessCategory = draft.BusinessCategory
	e.IsActive = draft.IsActive
	e.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, e); err != nil {
		return nil, fmt.Errorf("update entrepreneur: %w", err)
	}
	return e, nil
}

func (s *entrepreneurService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
