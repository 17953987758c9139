package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"venuehub/internal/domain"
)

type reservationRepository struct {
	DB *sql.DB
}

// NewReservationRepository returns a ReservationRepository backed by Postgres.
func NewReservationRepository(db *sql.DB) domain.ReservationRepository {
	return &reservationRepository{DB: db}
}

const reservationColumns = "id, status, requester_name, requester_email, space_id, event_id, starts_at, ends_at, comment, created_at, decided_at"

func scanReservation(row interface{ Scan(...any) error }) (*domain.Reservation, error) {
	r := &domain.Reservation{}
	var eventID sql.NullString
	var decidedAt sql.NullTime
	err := row.Scan(
		&r.ID, &r.Status, &r.RequesterName, &r.RequesterEmail, &r.SpaceID,
		&eventID, &r.StartsAt, &r.EndsAt, &r.Comment, &r.CreatedAt, &decidedAt,
	)
	if err != nil {
		return nil, err
	}
	if eventID.Valid {
		r.EventID = &eventID.String
	}
	if decidedAt.Valid {
		r.DecidedAt = &decidedAt.Time
	}
	return r, nil
}

func (r *reservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	query := `
		INSERT INTO reservations (status, requester_name, requester_email, space_id, event_id, starts_at, ends_at, comment)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`
	var eventID any
	if res.EventID != nil {
		eventID = *res.EventID
	}
	return r.DB.QueryRowContext(ctx, query,
		res.Status, res.RequesterName, res.RequesterEmail, res.SpaceID,
		eventID, res.StartsAt, res.EndsAt, res.Comment,
	).Scan(&res.ID, &res.CreatedAt)
}

func (r *reservationRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	query := fmt.Sprintf(`SELECT %s FROM reservations WHERE id = $1`, reservationColumns)
	res, err := scanReservation(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return res, nil
}

func (r *reservationRepository) List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	where := []string{}
	args := []any{}
	n := 1
	if filter.Status != "" {
		where = append(where, fmt.Sprintf("status = $%d", n))
		args = append(args, filter.Status)
		n++
	}
	if filter.SpaceID != "" {
		where = append(where, fmt.Sprintf("space_id = $%d", n))
		args = append(args, filter.SpaceID)
		n++
	}
	query := fmt.Sprintf(`SELECT %s FROM reservations`, reservationColumns)
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	// Stable ordering: creation time, then id to break ties.
	query += " ORDER BY created_at, id"

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	reservations := make([]*domain.Reservation, 0)
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, res)
	}
	return reservations, rows.Err()
}

func (r *reservationRepository) Update(ctx context.Context, id string, upd domain.ReservationUpdate) (*domain.Reservation, error) {
	query := fmt.Sprintf(`
		UPDATE reservations
		SET requester_name = $1, requester_email = $2, space_id = $3, event_id = $4,
		    starts_at = $5, ends_at = $6, comment = $7
		WHERE id = $8
		RETURNING %s
	`, reservationColumns)
	var eventID any
	if upd.EventID != nil {
		eventID = *upd.EventID
	}
	res, err := scanReservation(r.DB.QueryRowContext(ctx, query,
		upd.RequesterName, upd.RequesterEmail, upd.SpaceID, eventID,
		upd.StartsAt, upd.EndsAt, upd.Comment, id,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return res, nil
}

func (r *reservationRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM reservations WHERE id = $1`
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Decide performs the pending -> terminal transition as a single conditional
// update. Two concurrent decisions on one pending reservation can never both
// succeed: only the statement that still sees status = 'pending' updates the
// row; the loser distinguishes replay from a missing record with a follow-up
// read.
func (r *reservationRepository) Decide(ctx context.Context, id string, status domain.ReservationStatus, decidedAt time.Time) (*domain.Reservation, error) {
	query := fmt.Sprintf(`
		UPDATE reservations
		SET status = $1, decided_at = $2
		WHERE id = $3 AND status = $4
		RETURNING %s
	`, reservationColumns)
	res, err := scanReservation(r.DB.QueryRowContext(ctx, query, status, decidedAt, id, domain.ReservationPending))
	if err == nil {
		return res, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if _, getErr := r.GetByID(ctx, id); getErr != nil {
		return nil, getErr
	}
	return nil, domain.ErrInvalidTransition
}
