package services

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bizmeet/internal/domain"
	"bizmeet/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

const (
	testEventID        = "11111111-1111-4111-8111-111111111111"
	testEntrepreneurID = "22222222-2222-4222-8222-222222222222"
	testParticipantID  = "33333333-3333-4333-8333-333333333333"
)

func bookingFixtures() (*mockBookingRepository, *mockEventRepository, *mockEntrepreneurRepository, *mockParticipantRepository) {
	bookingRepo := &mockBookingRepository{existing: map[string]bool{}}
	eventRepo := &mockEventRepository{
		events: map[string]*domain.Event{
			testEventID: {ID: testEventID, Name: "Spring Networking Day"},
		},
	}
	entRepo := &mockEntrepreneurRepository{
		entrepreneurs: map[string]*domain.Entrepreneur{
			testEntrepreneurID: {ID: testEntrepreneurID, CompanyName: "Acme"},
		},
	}
	parRepo := &mockParticipantRepository{
		participants: map[string]*domain.Participant{
			testParticipantID: {ID: testParticipantID, Name: "John Doe", Email: "john@example.com"},
		},
	}
	return bookingRepo, eventRepo, entRepo, parRepo
}

func validBookingInput() domain.BookingInput {
	return domain.BookingInput{
		EventID:        testEventID,
		EntrepreneurID: testEntrepreneurID,
		ParticipantID:  testParticipantID,
		TimeSlot:       "11:00-12:00",
	}
}

func TestBookingService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success sends confirmation email", func(t *testing.T) {
		bookingRepo, eventRepo, entRepo, parRepo := bookingFixtures()
		emails := &mockEmailService{}
		svc := NewBookingService(bookingRepo, eventRepo, entRepo, parRepo, emails, testLogger)

		booking, err := svc.Create(ctx, validBookingInput())
		require.NoError(t, err)
		require.NotNil(t, booking)
		assert.Equal(t, "bk-new", booking.ID)
		assert.Equal(t, domain.Slot1100, booking.TimeSlot)
		assert.Equal(t, "Acme", booking.Entrepreneur.CompanyName)

		require.Len(t, emails.sent, 1)
		assert.Equal(t, "john@example.com", emails.sent[0].ParticipantEmail)
		assert.Equal(t, "11:00 AM - 12:00 PM", emails.sent[0].SlotDisplayName)
	})

	t.Run("invalid form returns field errors", func(t *testing.T) {
		bookingRepo, eventRepo, entRepo, parRepo := bookingFixtures()
		svc := NewBookingService(bookingRepo, eventRepo, entRepo, parRepo, nil, testLogger)

		input := validBookingInput()
		input.TimeSlot = "09:00-10:00"
		input.EventID = "nope"
		booking, err := svc.Create(ctx, input)
		require.Nil(t, booking)

		var verr *validation.Error
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "time_slot")
		assert.Contains(t, verr.Fields, "event_id")
		assert.Nil(t, bookingRepo.lastCreated)
	})

	t.Run("occupied slot is rejected as conflict before insert", func(t *testing.T) {
		bookingRepo, eventRepo, entRepo, parRepo := bookingFixtures()
		bookingRepo.existing[slotKey(testEventID, testEntrepreneurID, domain.Slot1100)] = true
		svc := NewBookingService(bookingRepo, eventRepo, entRepo, parRepo, nil, testLogger)

		booking, err := svc.Create(ctx, validBookingInput())
		require.ErrorIs(t, err, domain.ErrBookingConflict)
		assert.Nil(t, booking)
		assert.Nil(t, bookingRepo.lastCreated)
	})

	t.Run("constraint violation at insert surfaces as conflict", func(t *testing.T) {
		bookingRepo, eventRepo, entRepo, parRepo := bookingFixtures()
		bookingRepo.createErr = domain.ErrBookingConflict
		svc := NewBookingService(bookingRepo, eventRepo, entRepo, parRepo, nil, testLogger)

		_, err := svc.Create(ctx, validBookingInput())
		require.ErrorIs(t, err, domain.ErrBookingConflict)
	})

	t.Run("unknown event returns not found", func(t *testing.T) {
		bookingRepo, eventRepo, entRepo, parRepo := bookingFixtures()
		delete(eventRepo.events, testEventID)
		svc := NewBookingService(bookingRepo, eventRepo, entRepo, parRepo, nil, testLogger)

		_, err := svc.Create(ctx, validBookingInput())
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("email failure does not fail the booking", func(t *testing.T) {
		bookingRepo, eventRepo, entRepo, parRepo := bookingFixtures()
		emails := &mockEmailService{sendErr: assert.AnError}
		svc := NewBookingService(bookingRepo, eventRepo, entRepo, parRepo, emails, testLogger)

		booking, err := svc.Create(ctx, validBookingInput())
		require.NoError(t, err)
		require.NotNil(t, booking)
	})
}

func TestBookingService_GetAvailabilityGrid(t *testing.T) {
	ctx := context.Background()

	bookingRepo, eventRepo, entRepo, parRepo := bookingFixtures()
	eventRepo.entsByEvent = map[string][]*domain.Entrepreneur{
		testEventID: {
			{ID: "ent-a", CompanyName: "Acme"},
			{ID: "ent-b", CompanyName: "Globex"},
		},
	}
	bookingRepo.byEvent = map[string][]*domain.MeetingBooking{
		testEventID: {
			{ID: "bk-1", EventID: testEventID, EntrepreneurID: "ent-a", TimeSlot: domain.Slot1300},
		},
	}
	svc := NewBookingService(bookingRepo, eventRepo, entRepo, parRepo, nil, testLogger)

	grid, err := svc.GetAvailabilityGrid(ctx, testEventID, nil)
	require.NoError(t, err)
	require.Len(t, grid.Entrepreneurs, 2)

	var statuses []domain.BookingStatus
	for _, sa := range grid.Entrepreneurs[0].TimeSlots {
		statuses = append(statuses, sa.Status)
	}
	assert.Equal(t, []domain.BookingStatus{
		domain.StatusAvailable, domain.StatusAvailable, domain.StatusBooked,
		domain.StatusAvailable, domain.StatusAvailable,
	}, statuses)

	t.Run("unknown event", func(t *testing.T) {
		_, err := svc.GetAvailabilityGrid(ctx, "missing", nil)
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}
