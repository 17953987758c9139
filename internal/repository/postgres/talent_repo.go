package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"venuehub/internal/domain"
)

type talentRepository struct {
	DB *sql.DB
}

// NewTalentRepository returns a TalentRepository backed by Postgres.
func NewTalentRepository(db *sql.DB) domain.TalentRepository {
	return &talentRepository{DB: db}
}

const talentColumns = "id, name, email, domain, status, description, is_talent, credential_hash, created_at, updated_at"

func scanTalent(row interface{ Scan(...any) error }) (*domain.Talent, error) {
	t := &domain.Talent{}
	err := row.Scan(
		&t.ID, &t.Name, &t.Email, &t.Domain, &t.Status, &t.Description,
		&t.IsTalent, &t.CredentialHash, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// isUniqueViolation reports whether err is the Postgres unique_violation
// error (code 23505), used to surface duplicate emails.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

func (r *talentRepository) Create(ctx context.Context, t *domain.Talent) error {
	query := `
		INSERT INTO talents (name, email, domain, status, description, is_talent, credential_hash)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`
	err := r.DB.QueryRowContext(ctx, query,
		t.Name, strings.ToLower(t.Email), t.Domain, t.Status, t.Description, t.IsTalent, t.CredentialHash,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *talentRepository) GetByID(ctx context.Context, id string) (*domain.Talent, error) {
	query := fmt.Sprintf(`SELECT %s FROM talents WHERE id = $1`, talentColumns)
	t, err := scanTalent(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func (r *talentRepository) GetByEmail(ctx context.Context, email string) (*domain.Talent, error) {
	query := fmt.Sprintf(`SELECT %s FROM talents WHERE email = $1`, talentColumns)
	t, err := scanTalent(r.DB.QueryRowContext(ctx, query, strings.ToLower(strings.TrimSpace(email))))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func (r *talentRepository) List(ctx context.Context) ([]*domain.Talent, error) {
	query := fmt.Sprintf(`SELECT %s FROM talents ORDER BY created_at, id`, talentColumns)
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	talents := make([]*domain.Talent, 0)
	for rows.Next() {
		t, err := scanTalent(rows)
		if err != nil {
			return nil, err
		}
		talents = append(talents, t)
	}
	return talents, rows.Err()
}

func (r *talentRepository) Update(ctx context.Context, t *domain.Talent) (*domain.Talent, error) {
	query := fmt.Sprintf(`
		UPDATE talents
		SET name = $1, email = $2, domain = $3, status = $4, description = $5,
		    is_talent = $6, credential_hash = $7, updated_at = NOW()
		WHERE id = $8
		RETURNING %s
	`, talentColumns)
	updated, err := scanTalent(r.DB.QueryRowContext(ctx, query,
		t.Name, strings.ToLower(t.Email), t.Domain, t.Status, t.Description,
		t.IsTalent, t.CredentialHash, t.ID,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, err
	}
	return updated, nil
}

func (r *talentRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM talents WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
