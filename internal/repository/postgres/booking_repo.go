package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/lib/pq"

	"bizmeet/internal/domain"
)

// bookingChannel is the postgres NOTIFY channel for booking changes.
// BookingListener listens on it; the repository publishes after writes.
const bookingChannel = "booking_changes"

type bookingRepository struct {
	DB *sql.DB
}

func NewBookingRepository(db *sql.DB) domain.BookingRepository {
	return &bookingRepository{
		DB: db,
	}
}

// Create inserts the booking. The meeting_bookings table has a unique
// constraint on (event_id, entrepreneur_id, time_slot), so a concurrent
// writer that slips past the service-level availability check still gets
// ErrBookingConflict instead of a duplicate row.
func (r *bookingRepository) Create(ctx context.Context, b *domain.MeetingBooking) error {
	query := `
		INSERT INTO meeting_bookings (event_id, entrepreneur_id, participant_id, time_slot, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		b.EventID, b.EntrepreneurID, b.ParticipantID, string(b.TimeSlot), b.CreatedAt,
	).Scan(&b.ID)
	if err != nil {
		var perr *pq.Error
		if errors.As(err, &perr) && perr.Code == "23505" {
			return domain.ErrBookingConflict
		}
		return err
	}
	r.notify(ctx, domain.BookingChange{EventID: b.EventID, BookingID: b.ID, Action: domain.BookingCreated})
	return nil
}

func (r *bookingRepository) GetByID(ctx context.Context, id string) (*domain.MeetingBooking, error) {
	query := `
		SELECT id, event_id, entrepreneur_id, participant_id, time_slot, created_at
		FROM meeting_bookings
		WHERE id = $1
	`
	b := &domain.MeetingBooking{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&b.ID, &b.EventID, &b.EntrepreneurID, &b.ParticipantID, &b.TimeSlot, &b.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

// ListByEventID returns the event's bookings ordered by time slot, with the
// entrepreneur and participant rows attached.
func (r *bookingRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.MeetingBooking, error) {
	query := `
		SELECT b.id, b.event_id, b.entrepreneur_id, b.participant_id, b.time_slot, b.created_at,
		       e.id, e.company_name, e.registration_number, e.business_category, e.is_active, e.created_at, e.updated_at,
		       p.id, p.name, p.phone, p.email, p.created_at, p.updated_at
		FROM meeting_bookings b
		JOIN entrepreneurs e ON e.id = b.entrepreneur_id
		JOIN participants p ON p.id = b.participant_id
		WHERE b.event_id = $1
		ORDER BY b.time_slot
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]*domain.MeetingBooking, 0)
	for rows.Next() {
		b := &domain.MeetingBooking{
			Entrepreneur: &domain.Entrepreneur{},
			Participant:  &domain.Participant{},
		}
		if err := rows.Scan(
			&b.ID, &b.EventID, &b.EntrepreneurID, &b.ParticipantID, &b.TimeSlot, &b.CreatedAt,
			&b.Entrepreneur.ID, &b.Entrepreneur.CompanyName, &b.Entrepreneur.RegistrationNumber,
			&b.Entrepreneur.BusinessCategory, &b.Entrepreneur.IsActive, &b.Entrepreneur.CreatedAt, &b.Entrepreneur.UpdatedAt,
			&b.Participant.ID, &b.Participant.Name, &b.Participant.Phone, &b.Participant.Email,
			&b.Participant.CreatedAt, &b.Participant.UpdatedAt,
		); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (r *bookingRepository) ExistsForSlot(ctx context.Context, eventID, entrepreneurID string, slot domain.TimeSlot) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM meeting_bookings
			WHERE event_id = $1 AND entrepreneur_id = $2 AND time_slot = $3
		)
	`
	var exists bool
	if err := r.DB.QueryRowContext(ctx, query, eventID, entrepreneurID, string(slot)).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *bookingRepository) Delete(ctx context.Context, id string) error {
	var eventID string
	err := r.DB.QueryRowContext(ctx, `DELETE FROM meeting_bookings WHERE id = $1 RETURNING event_id`, id).Scan(&eventID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNotFound
		}
		return err
	}
	r.notify(ctx, domain.BookingChange{EventID: eventID, BookingID: id, Action: domain.BookingDeleted})
	return nil
}

// notify publishes the change on the booking channel. Best-effort: a lost
// notification only delays the next grid refresh, so failures are ignored.
func (r *bookingRepository) notify(ctx context.Context, change domain.BookingChange) {
	payload, err := json.Marshal(change)
	if err != nil {
		return
	}
	_, _ = r.DB.ExecContext(ctx, `SELECT pg_notify($1, $2)`, bookingChannel, string(payload))
}
