package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"bizmeet/internal/domain"
	"bizmeet/internal/validation"
)

type bookingService struct {
	bookingRepo      domain.BookingRepository
	eventRepo        domain.EventRepository
	entrepreneurRepo domain.EntrepreneurRepository
	participantRepo  domain.ParticipantRepository
	emailService     domain.EmailService
	logger           *slog.Logger
}

// NewBookingService creates a BookingService. emailService may be nil to
// disable confirmation emails.
func NewBookingService(
	bookingRepo domain.BookingRepository,
	eventRepo domain.EventRepository,
	entrepreneurRepo domain.EntrepreneurRepository,
	participantRepo domain.ParticipantRepository,
	emailService domain.EmailService,
	logger *slog.Logger,
) domain.BookingService {
	return &bookingService{
		bookingRepo:      bookingRepo,
		eventRepo:        eventRepo,
		entrepreneurRepo: entrepreneurRepo,
		participantRepo:  participantRepo,
		emailService:     emailService,
		logger:           logger,
	}
}

// Create validates the booking form, rejects conflicts for the
// (event, entrepreneur, slot) triple, and persists the booking. The
// pre-insert check gives a clean conflict error in the common case; the
// unique constraint behind BookingRepository.Create closes the remaining
// race between concurrent writers.
func (s *bookingService) Create(ctx context.Context, input domain.BookingInput) (*domain.MeetingBooking, error) {
	draft, errs := validation.Booking(input)
	if errs != nil {
		return nil, &validation.Error{Fields: errs}
	}

	event, err := s.eventRepo.GetByID(ctx, draft.EventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	entrepreneur, err := s.entrepreneurRepo.GetByID(ctx, draft.EntrepreneurID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get entrepreneur: %w", err)
	}
	participant, err := s.participantRepo.GetByID(ctx, draft.ParticipantID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get participant: %w", err)
	}

	taken, err := s.bookingRepo.ExistsForSlot(ctx, draft.EventID, draft.EntrepreneurID, draft.TimeSlot)
	if err != nil {
		return nil, fmt.Errorf("check slot availability: %w", err)
	}
	if taken {
		return nil, domain.ErrBookingConflict
	}

	booking := domain.NewMeetingBooking(draft.EventID, draft.EntrepreneurID, draft.ParticipantID, draft.TimeSlot, time.Now())
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		if errors.Is(err, domain.ErrBookingConflict) {
			return nil, domain.ErrBookingConflict
		}
		return nil, fmt.Errorf("create booking: %w", err)
	}
	booking.Entrepreneur = entrepreneur
	booking.Participant = participant

	s.sendConfirmation(ctx, booking, event, entrepreneur, participant)
	return booking, nil
}

// sendConfirmation emails the participant. Failures are logged, never
// surfaced: the booking is already committed.
func (s *bookingService) sendConfirmation(ctx context.Context, booking *domain.MeetingBooking, event *domain.Event, entrepreneur *domain.Entrepreneur, participant *domain.Participant) {
	if s.emailService == nil {
		return
	}
	info, _ := booking.TimeSlot.Info()
	data := &domain.BookingConfirmationEmailData{
		ParticipantName:  participant.Name,
		ParticipantEmail: participant.Email,
		CompanyName:      entrepreneur.CompanyName,
		EventName:        event.Name,
		EventDate:        event.EventDate.Format("2006-01-02"),
		SlotDisplayName:  info.DisplayName,
	}
	if err := s.emailService.SendBookingConfirmation(ctx, data); err != nil {
		s.logger.WarnContext(ctx, "booking confirmation email failed",
			"booking_id", booking.ID, "participant_id", participant.ID, "err", err)
	}
}

func (s *bookingService) GetByID(ctx context.Context, id string) (*domain.MeetingBooking, error) {
	return s.bookingRepo.GetByID(ctx, id)
}

func (s *bookingService) ListByEventID(ctx context.Context, eventID string) ([]*domain.MeetingBooking, error) {
	return s.bookingRepo.ListByEventID(ctx, eventID)
}

func (s *bookingService) Delete(ctx context.Context, id string) error {
	return s.bookingRepo.Delete(ctx, id)
}

// GetAvailabilityGrid loads the event's assigned entrepreneurs and current
// bookings, then derives the grid. Overrides mark externally blocked slots
// and come from the caller; they are never inferred here.
func (s *bookingService) GetAvailabilityGrid(ctx context.Context, eventID string, overrides domain.SlotOverrides) (*domain.AvailabilityGrid, error) {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	entrepreneurs, err := s.eventRepo.ListEntrepreneurs(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list event entrepreneurs: %w", err)
	}
	bookings, err := s.bookingRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list event bookings: %w", err)
	}
	return DeriveAvailability(eventID, entrepreneurs, bookings, overrides), nil
}
