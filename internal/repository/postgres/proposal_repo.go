package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"venuehub/internal/domain"
)

type proposalRepository struct {
	DB *sql.DB
}

// NewProposalRepository returns a ProposalRepository backed by Postgres.
func NewProposalRepository(db *sql.DB) domain.ProposalRepository {
	return &proposalRepository{DB: db}
}

const proposalColumns = "id, title, type, starts_at, ends_at, description, price, space_id, proposer_name, proposer_email, proposer_phone, status, comments, poster_ref, created_at, decided_at"

func scanProposal(row interface{ Scan(...any) error }) (*domain.EventProposal, error) {
	p := &domain.EventProposal{}
	var decidedAt sql.NullTime
	err := row.Scan(
		&p.ID, &p.Title, &p.Type, &p.StartsAt, &p.EndsAt, &p.Description, &p.Price,
		&p.SpaceID, &p.ProposerName, &p.ProposerEmail, &p.ProposerPhone,
		&p.Status, &p.Comments, &p.PosterRef, &p.CreatedAt, &decidedAt,
	)
	if err != nil {
		return nil, err
	}
	if decidedAt.Valid {
		p.DecidedAt = &decidedAt.Time
	}
	return p, nil
}

func (r *proposalRepository) Create(ctx context.Context, p *domain.EventProposal) error {
	query := `
		INSERT INTO event_proposals (title, type, starts_at, ends_at, description, price, space_id,
			proposer_name, proposer_email, proposer_phone, status, comments, poster_ref)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at
	`
	return r.DB.QueryRowContext(ctx, query,
		p.Title, p.Type, p.StartsAt, p.EndsAt, p.Description, p.Price, p.SpaceID,
		p.ProposerName, p.ProposerEmail, p.ProposerPhone, p.Status, p.Comments, p.PosterRef,
	).Scan(&p.ID, &p.CreatedAt)
}

func (r *proposalRepository) GetByID(ctx context.Context, id string) (*domain.EventProposal, error) {
	query := fmt.Sprintf(`SELECT %s FROM event_proposals WHERE id = $1`, proposalColumns)
	p, err := scanProposal(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *proposalRepository) List(ctx context.Context) ([]*domain.EventProposal, error) {
	query := fmt.Sprintf(`SELECT %s FROM event_proposals ORDER BY created_at, id`, proposalColumns)
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	proposals := make([]*domain.EventProposal, 0)
	for rows.Next() {
		p, err := scanProposal(rows)
		if err != nil {
			return nil, err
		}
		proposals = append(proposals, p)
	}
	return proposals, rows.Err()
}

// Decide mirrors the reservation decide contract: a single conditional update
// so replayed or concurrent decisions fail with ErrInvalidTransition.
func (r *proposalRepository) Decide(ctx context.Context, id string, status domain.ReservationStatus, decidedAt time.Time) (*domain.EventProposal, error) {
	query := fmt.Sprintf(`
		UPDATE event_proposals
		SET status = $1, decided_at = $2
		WHERE id = $3 AND status = $4
		RETURNING %s
	`, proposalColumns)
	p, err := scanProposal(r.DB.QueryRowContext(ctx, query, status, decidedAt, id, domain.ReservationPending))
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if _, getErr := r.GetByID(ctx, id); getErr != nil {
		return nil, getErr
	}
	return nil, domain.ErrInvalidTransition
}
