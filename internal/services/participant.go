package services

import (
	"context"
	"fmt"
	"time"

	"bizmeet/internal/domain"
	"bizmeet/internal/validation"
)

type participantService struct {
	repo domain.ParticipantRepository
}

// NewParticipantService creates a ParticipantService backed by the given repository.
func NewParticipantService(repo domain.ParticipantRepository) domain.ParticipantService {
	return &participantService{repo: repo}
}

func (s *participantService) Create(ctx context.Context, input domain.ParticipantInput) (*domain.Participant, error) {
	draft, errs := validation.Participant(input)
	if errs != nil {
		return nil, &validation.Error{Fields: errs}
	}

	now := time.Now()
	p := domain.NewParticipant(draft.Name, draft.Phone, draft.Email, now, now)
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create participant: %w", err)
	}
	return p, nil
}

func (s *participantService) GetByID(ctx context.Context, id string) (*domain.Participant, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *participantService) List(ctx context.Context, params domain.PaginationParams) ([]*domain.Participant, int, error) {
	return s.repo.List(ctx, params)
}

func (s *participantService) Update(ctx context.Context, id string, input domain.ParticipantInput) (*domain.Participant, error) {
	draft, errs := validation.Participant(input)
	if errs != nil {
		return nil, &validation.Error{Fields: errs}
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Name = draft.Name
	p.Phone = draft.Phone
	p.Email = draft.Email
	p.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("update participant: %w", err)
	}
	return p, nil
}

func (s *participantService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
