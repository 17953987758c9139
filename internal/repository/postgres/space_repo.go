package postgres

import (
	"context"
	"database/sql"
	"errors"

	"venuehub/internal/domain"
)

type spaceRepository struct {
	DB *sql.DB
}

// NewSpaceRepository returns a read-only SpaceRepository backed by Postgres.
func NewSpaceRepository(db *sql.DB) domain.SpaceRepository {
	return &spaceRepository{DB: db}
}

func (r *spaceRepository) List(ctx context.Context) ([]*domain.Space, error) {
	query := `SELECT id, name, capacity, description FROM spaces ORDER BY name, id`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	spaces := make([]*domain.Space, 0)
	for rows.Next() {
		s := &domain.Space{}
		if err := rows.Scan(&s.ID, &s.Name, &s.Capacity, &s.Description); err != nil {
			return nil, err
		}
		spaces = append(spaces, s)
	}
	return spaces, rows.Err()
}

func (r *spaceRepository) GetByID(ctx context.Context, id string) (*domain.Space, error) {
	query := `SELECT id, name, capacity, description FROM spaces WHERE id = $1`
	s := &domain.Space{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&s.ID, &s.Name, &s.Capacity, &s.Description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}
