package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"bizmeet/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

var entrepreneurCols = []string{"id", "company_name", "registration_number", "business_category", "is_active", "created_at", "updated_at"}

func TestEntrepreneurRepository_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name         string
		entrepreneur *domain.Entrepreneur
		mock         func(mock sqlmock.Sqlmock)
		wantID       string
		wantErr      bool
	}{
		{
			name: "success",
			entrepreneur: &domain.Entrepreneur{
				CompanyName:        "Acme",
				RegistrationNumber: "REG-123",
				BusinessCategory:   "Technology",
				IsActive:           true,
				CreatedAt:          time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
				UpdatedAt:          time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO entrepreneurs \(company_name, registration_number, business_category, is_active, created_at, updated_at\)`).
					WithArgs("Acme", "REG-123", "Technology", true, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("ent-uuid-1"))
			},
			wantID: "ent-uuid-1",
		},
		{
			name: "db error",
			entrepreneur: &domain.Entrepreneur{
				CompanyName:        "Acme",
				RegistrationNumber: "REG-123",
				BusinessCategory:   "Technology",
				CreatedAt:          time.Now(),
				UpdatedAt:          time.Now(),
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO entrepreneurs`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewEntrepreneurRepository(db)
			err = repo.Create(ctx, tt.entrepreneur)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, tt.entrepreneur.ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEntrepreneurRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT id, company_name, registration_number, business_category, is_active, created_at, updated_at`).
			WithArgs("ent-1").
			WillReturnRows(sqlmock.NewRows(entrepreneurCols).
				AddRow("ent-1", "Acme", "REG-123", "Technology", true, created, created))

		repo := NewEntrepreneurRepository(db)
		got, err := repo.GetByID(ctx, "ent-1")
		require.NoError(t, err)
		require.Equal(t, "Acme", got.CompanyName)
		require.True(t, got.IsActive)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT id, company_name`).
			WithArgs("ent-missing").
			WillReturnError(sql.ErrNoRows)

		repo := NewEntrepreneurRepository(db)
		got, err := repo.GetByID(ctx, "ent-missing")
		require.ErrorIs(t, err, domain.ErrNotFound)
		require.Nil(t, got)
	})
}

func TestEntrepreneurRepository_List(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM entrepreneurs`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))
	mock.ExpectQuery(`SELECT id, company_name, registration_number, business_category, is_active, created_at, updated_at`).
		WithArgs(2, 2).
		WillReturnRows(sqlmock.NewRows(entrepreneurCols).
			AddRow("ent-1", "Acme", "REG-1", "Technology", true, created, created).
			AddRow("ent-2", "Globex", "REG-2", "Retail", false, created, created))

	repo := NewEntrepreneurRepository(db)
	got, total, err := repo.List(ctx, domain.PaginationParams{Page: 2, PageSize: 2})
	require.NoError(t, err)
	require.Equal(t, 12, total)
	require.Len(t, got, 2)
	require.Equal(t, "Globex", got[1].CompanyName)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEntrepreneurRepository_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		now := time.Now()
		mock.ExpectExec(`UPDATE entrepreneurs`).
			WithArgs("Acme", "REG-123", "Technology", false, now, "ent-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewEntrepreneurRepository(db)
		err = repo.Update(ctx, &domain.Entrepreneur{
			ID: "ent-1", CompanyName: "Acme", RegistrationNumber: "REG-123",
			BusinessCategory: "Technology", IsActive: false, UpdatedAt: now,
		})
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row returns not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`UPDATE entrepreneurs`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		repo := NewEntrepreneurRepository(db)
		err = repo.Update(ctx, &domain.Entrepreneur{ID: "ent-missing"})
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestEntrepreneurRepository_Delete(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM entrepreneurs WHERE id = \$1`).
		WithArgs("ent-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewEntrepreneurRepository(db)
	require.NoError(t, repo.Delete(ctx, "ent-1"))
	require.NoError(t, mock.ExpectationsWereMet())
}
