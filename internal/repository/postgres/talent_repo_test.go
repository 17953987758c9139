package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"venuehub/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

var talentCols = []string{"id", "name", "email", "domain", "status", "description", "is_talent", "credential_hash", "created_at", "updated_at"}

func TestTalentRepository_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "success lowercases email",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO talents`).
					WithArgs("Sam Drummer", "sam@example.com", "percussion", domain.TalentPendingValidation,
						"plays things", true, "hash-abc").
					WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
						AddRow("tal-1", now, now))
			},
		},
		{
			name: "duplicate email",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO talents`).
					WillReturnError(&pq.Error{Code: "23505"})
			},
			wantErr: domain.ErrDuplicateEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewTalentRepository(db)
			talent := &domain.Talent{
				Name:           "Sam Drummer",
				Email:          "Sam@Example.com",
				Domain:         "percussion",
				Status:         domain.TalentPendingValidation,
				Description:    "plays things",
				IsTalent:       true,
				CredentialHash: "hash-abc",
			}
			err = repo.Create(ctx, talent)
			if tt.wantErr != nil {
				require.True(t, errors.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
			require.Equal(t, "tal-1", talent.ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTalentRepository_GetByEmail(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT (.+) FROM talents WHERE email = \$1`).
		WithArgs("sam@example.com").
		WillReturnRows(sqlmock.NewRows(talentCols).
			AddRow("tal-1", "Sam Drummer", "sam@example.com", "percussion", "active", "", true, "hash-abc", now, now))

	repo := NewTalentRepository(db)
	got, err := repo.GetByEmail(ctx, "  Sam@Example.com ")
	require.NoError(t, err)
	require.Equal(t, "tal-1", got.ID)
	require.Equal(t, "hash-abc", got.CredentialHash)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTalentRepository_Delete_NotFound(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM talents WHERE id = \$1`).
		WithArgs("tal-missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewTalentRepository(db)
	err = repo.Delete(ctx, "tal-missing")
	require.True(t, errors.Is(err, domain.ErrNotFound))
	require.NoError(t, mock.ExpectationsWereMet())
}
