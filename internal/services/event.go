package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bizmeet/internal/domain"
	"bizmeet/internal/validation"
)

type eventService struct {
	eventRepo        domain.EventRepository
	entrepreneurRepo domain.EntrepreneurRepository
}

// NewEventService creates an EventService with the given repositories.
func NewEventService(eventRepo domain.EventRepository, entrepreneurRepo domain.EntrepreneurRepository) domain.EventService {
	return &eventService{
		eventRepo:        eventRepo,
		entrepreneurRepo: entrepreneurRepo,
	}
}

func (s *eventService) Create(ctx context.Context, input domain.EventInput) (*domain.Event, error) {
	draft, errs := validation.Event(input)
	if errs != nil {
		return nil, &validation.Error{Fields: errs}
	}

	now := time.Now()
	e := domain.NewEvent(draft.Name, draft.EventDate, now, now)
	if err := s.eventRepo.Create(ctx, e); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return e, nil
}

func (s *eventService) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	return s.eventRepo.GetByID(ctx, id)
}

func (s *eventService) List(ctx context.Context, params domain.PaginationParams) ([]*domain.Event, int, error) {
	return s.eventRepo.List(ctx, params)
}

func (s *eventService) Update(ctx context.Context, id string, input domain.EventInput) (*domain.Event, error) {
	draft, errs := validation.Event(input)
	if errs != nil {
		return nil, &validation.Error{Fields: errs}
	}

	e, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	e.Name = draft.Name
	e.EventDate = draft.EventDate
	e.UpdatedAt = time.Now()

	if err := s.eventRepo.Update(ctx, e); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}
	return e, nil
}

func (s *eventService) Delete(ctx context.Context, id string) error {
	return s.eventRepo.Delete(ctx, id)
}

func (s *eventService) AssignEntrepreneur(ctx context.Context, input domain.EventEntrepreneurInput) (*domain.EventEntrepreneur, error) {
	draft, errs := validation.EventEntrepreneur(input)
	if errs != nil {
		return nil, &validation.Error{Fields: errs}
	}

	// Both sides must exist before linking.
	if _, err := s.eventRepo.GetByID(ctx, draft.EventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	if _, err := s.entrepreneurRepo.GetByID(ctx, draft.EntrepreneurID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get entrepreneur: %w", err)
	}

	link := &domain.EventEntrepreneur{
		EventID:        draft.EventID,
		EntrepreneurID: draft.EntrepreneurID,
		CreatedAt:      time.Now(),
	}
	if err := s.eventRepo.AssignEntrepreneur(ctx, link); err != nil {
		if errors.Is(err, domain.ErrAlreadyAssigned) {
			return nil, domain.ErrAlreadyAssigned
		}
		return nil, fmt.Errorf("assign entrepreneur: %w", err)
	}
	return link, nil
}

func (s *eventService) RemoveEntrepreneur(ctx context.Context, eventID, entrepreneurID string) error {
	return s.eventRepo.RemoveEntrepreneur(ctx, eventID, entrepreneurID)
}
