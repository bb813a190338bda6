package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"bizmeet/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (name, event_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, e.Name, e.EventDate, e.CreatedAt, e.UpdatedAt).Scan(&e.ID)
}

// GetByID returns the event with its assigned entrepreneurs attached.
func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `
		SELECT id, name, event_date, created_at, updated_at
		FROM events
		WHERE id = $1
	`
	e := &domain.Event{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&e.ID, &e.Name, &e.EventDate, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	entrepreneurs, err := r.ListEntrepreneurs(ctx, id)
	if err != nil {
		return nil, err
	}
	e.Entrepreneurs = entrepreneurs
	return e, nil
}

func (r *eventRepository) List(ctx context.Context, params domain.PaginationParams) ([]*domain.Event, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM events`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT id, name, event_date, created_at, updated_at
		FROM events
		ORDER BY event_date DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.DB.QueryContext(ctx, query, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	events := make([]*domain.Event, 0)
	for rows.Next() {
		e := &domain.Event{}
		if err := rows.Scan(&e.ID, &e.Name, &e.EventDate, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, 0, err
		}
		events = append(events, e)
	}
	return events, total, rows.Err()
}

func (r *eventRepository) Update(ctx context.Context, e *domain.Event) error {
	query := `
		UPDATE events
		SET name = $1, event_date = $2, updated_at = $3
		WHERE id = $4
	`
	result, err := r.DB.ExecContext(ctx, query, e.Name, e.EventDate, e.UpdatedAt, e.ID)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *eventRepository) AssignEntrepreneur(ctx context.Context, link *domain.EventEntrepreneur) error {
	query := `
		INSERT INTO event_entrepreneurs (event_id, entrepreneur_id, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, link.EventID, link.EntrepreneurID, link.CreatedAt).Scan(&link.ID)
	if err != nil {
		var perr *pq.Error
		if errors.As(err, &perr) && perr.Code == "23505" {
			return domain.ErrAlreadyAssigned
		}
		return err
	}
	return nil
}

func (r *eventRepository) RemoveEntrepreneur(ctx context.Context, eventID, entrepreneurID string) error {
	query := `DELETE FROM event_entrepreneurs WHERE event_id = $1 AND entrepreneur_id = $2`
	result, err := r.DB.ExecContext(ctx, query, eventID, entrepreneurID)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *eventRepository) ListEntrepreneurs(ctx context.Context, eventID string) ([]*domain.Entrepreneur, error) {
	query := `
		SELECT e.id, e.company_name, e.registration_number, e.business_category, e.is_active, e.created_at, e.updated_at
		FROM entrepreneurs e
		JOIN event_entrepreneurs ee ON ee.entrepreneur_id = e.id
		WHERE ee.event_id = $1
		ORDER BY e.company_name
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entrepreneurs := make([]*domain.Entrepreneur, 0)
	for rows.Next() {
		e := &domain.Entrepreneur{}
		if err := rows.Scan(&e.ID, &e.CompanyName, &e.RegistrationNumber, &e.BusinessCategory, &e.IsActive, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		entrepreneurs = append(entrepreneurs, e)
	}
	return entrepreneurs, rows.Err()
}
