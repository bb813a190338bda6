package postgres

import (
	"context"
	"database/sql"
	"errors"

	"bizmeet/internal/domain"
)

type entrepreneurRepository struct {
	DB *sql.DB
}

func NewEntrepreneurRepository(db *sql.DB) domain.EntrepreneurRepository {
	return &entrepreneurRepository{
		DB: db,
	}
}

func (r *entrepreneurRepository) Create(ctx context.Context, e *domain.Entrepreneur) error {
	query := `
		INSERT INTO entrepreneurs (company_name, registration_number, business_category, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		e.CompanyName, e.RegistrationNumber, e.BusinessCategory, e.IsActive, e.CreatedAt, e.UpdatedAt,
	).Scan(&e.ID)
}

func (r *entrepreneurRepository) GetByID(ctx context.Context, id string) (*domain.Entrepreneur, error) {
	query := `
		SELECT id, company_name, registration_number, business_category, is_active, created_at, updated_at
		FROM entrepreneurs
		WHERE id = $1
	`
	e := &domain.Entrepreneur{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&e.ID, &e.CompanyName, &e.RegistrationNumber, &e.BusinessCategory, &e.IsActive, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *entrepreneurRepository) List(ctx context.Context, params domain.PaginationParams) ([]*domain.Entrepreneur, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM entrepreneurs`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT id, company_name, registration_number, business_category, is_active, created_at, updated_at
		FROM entrepreneurs
		ORDER BY company_name
		LIMIT $1 OFFSET $2
	`
	rows, err := r.DB.QueryContext(ctx, query, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	entrepreneurs := make([]*domain.Entrepreneur, 0)
	for rows.Next() {
		e := &domain.Entrepreneur{}
		if err := rows.Scan(&e.ID, &e.CompanyName, &e.RegistrationNumber, &e.BusinessCategory, &e.IsActive, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, 0, err
		}
		entrepreneurs = append(entrepreneurs, e)
	}
	return entrepreneurs, total, rows.Err()
}

func (r *entrepreneurRepository) ListActive(ctx context.Context) ([]*domain.Entrepreneur, error) {
	query := `
		SELECT id, company_name, registration_number, business_category, is_active, created_at, updated_at
		FROM entrepreneurs
		WHERE is_active = TRUE
		ORDER BY company_name
	`
	rows, err := r.DB.QueryContext(ctx, query)
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

func (r *entrepreneurRepository) Update(ctx context.Context, e *domain.Entrepreneur) error {
	query := `
		UPDATE entrepreneurs
		SET company_name = $1, registration_number = $2, business_category = $3, is_active = $4, updated_at = $5
		WHERE id = $6
	`
	result, err := r.DB.ExecContext(ctx, query,
		e.CompanyName, e.RegistrationNumber, e.BusinessCategory, e.IsActive, e.UpdatedAt, e.ID,
	)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *entrepreneurRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM entrepreneurs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
