package postgres

import (
	"context"
	"database/sql"
	"errors"

	"bizmeet/internal/domain"
)

type participantRepository struct {
	DB *sql.DB
}

func NewParticipantRepository(db *sql.DB) domain.ParticipantRepository {
	return &participantRepository{
		DB: db,
	}
}

func (r *participantRepository) Create(ctx context.Context, p *domain.Participant) error {
	query := `
		INSERT INTO participants (name, phone, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, p.Name, p.Phone, p.Email, p.CreatedAt, p.UpdatedAt).Scan(&p.ID)
}

func (r *participantRepository) GetByID(ctx context.Context, id string) (*domain.Participant, error) {
	query := `
		SELECT id, name, phone, email, created_at, updated_at
		FROM participants
		WHERE id = $1
	`
	p := &domain.Participant{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Name, &p.Phone, &p.Email, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *participantRepository) List(ctx context.Context, params domain.PaginationParams) ([]*domain.Participant, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM participants`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT id, name, phone, email, created_at, updated_at
		FROM participants
		ORDER BY name
		LIMIT $1 OFFSET $2
	`
	rows, err := r.DB.QueryContext(ctx, query, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	participants := make([]*domain.Participant, 0)
	for rows.Next() {
		p := &domain.Participant{}
		if err := rows.Scan(&p.ID, &p.Name, &p.Phone, &p.Email, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, 0, err
		}
		participants = append(participants, p)
	}
	return participants, total, rows.Err()
}

func (r *participantRepository) Update(ctx context.Context, p *domain.Participant) error {
	query := `
		UPDATE participants
		SET name = $1, phone = $2, email = $3, updated_at = $4
		WHERE id = $5
	`
	result, err := r.DB.ExecContext(ctx, query, p.Name, p.Phone, p.Email, p.UpdatedAt, p.ID)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *participantRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM participants WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
