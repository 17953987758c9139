package domain

import (
	"context"
	"time"
)

// ReservationStatus is the three-state lifecycle of a reservation.
type ReservationStatus string

const (
	ReservationPending  ReservationStatus = "pending"
	ReservationApproved ReservationStatus = "approved"
	ReservationRejected ReservationStatus = "rejected"
)

// Decision is the action taken on a pending reservation or proposal.
type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

// Status returns the terminal status a decision leads to, and whether the
// decision is one of the two known values.
func (d Decision) Status() (ReservationStatus, bool) {
	switch d {
	case DecisionApprove:
		return ReservationApproved, true
	case DecisionReject:
		return ReservationRejected, true
	}
	return "", false
}

// Reservation is a request to book a space, optionally tied to an event.
// A reservation starts pending and transitions exactly once to approved or
// rejected; DecidedAt is set if and only if the status is terminal.
// swagger:model Reservation
type Reservation struct {
	ID             string            `json:"id"`
	Status         ReservationStatus `json:"status"`
	RequesterName  string            `json:"requester_name"`
	RequesterEmail string            `json:"requester_email"`
	SpaceID        string            `json:"space_id"`
	EventID        *string           `json:"event_id,omitempty"`
	StartsAt       time.Time         `json:"starts_at"`
	EndsAt         time.Time         `json:"ends_at"`
	Comment        string            `json:"comment,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	DecidedAt      *time.Time        `json:"decided_at,omitempty"`
}

// NewReservation returns a pending Reservation. ID and CreatedAt are set by
// the repository on create.
func NewReservation(requesterName, requesterEmail, spaceID string, eventID *string, startsAt, endsAt time.Time, comment string) *Reservation {
	return &Reservation{
		Status:         ReservationPending,
		RequesterName:  requesterName,
		RequesterEmail: requesterEmail,
		SpaceID:        spaceID,
		EventID:        eventID,
		StartsAt:       startsAt,
		EndsAt:         endsAt,
		Comment:        comment,
	}
}

// ReservationFilter narrows List results. Zero values mean "no filter".
type ReservationFilter struct {
	Status  ReservationStatus
	SpaceID string
}

// ReservationUpdate carries the complete new state of a reservation's
// mutable fields. Update is full-record: every field is written.
type ReservationUpdate struct {
	RequesterName  string
	RequesterEmail string
	SpaceID        string
	EventID        *string
	StartsAt       time.Time
	EndsAt         time.Time
	Comment        string
}

// ReservationRepository defines the interface for reservation storage.
// Decide must be implemented as a single conditional update on the current
// status so that concurrent decisions on one pending reservation cannot
// both succeed.
type ReservationRepository interface {
	Create(ctx context.Context, r *Reservation) error
	GetByID(ctx context.Context, id string) (*Reservation, error)
	List(ctx context.Context, filter ReservationFilter) ([]*Reservation, error)
	Update(ctx context.Context, id string, upd ReservationUpdate) (*Reservation, error)
	Delete(ctx context.Context, id string) error
	Decide(ctx context.Context, id string, status ReservationStatus, decidedAt time.Time) (*Reservation, error)
}

// ReservationService defines the reservation lifecycle business logic.
type ReservationService interface {
	Create(ctx context.Context, r *Reservation) error
	List(ctx context.Context, filter ReservationFilter) ([]*Reservation, error)
	Update(ctx context.Context, id string, upd ReservationUpdate, actorID string) (*Reservation, error)
	Delete(ctx context.Context, id string, actor Actor) error
	Decide(ctx context.Context, id string, decision Decision, actorID string) (*Reservation, error)
}

// Actor identifies an authenticated caller and the roles attached to its token.
type Actor struct {
	ID    string
	Roles []string
}

// RoleSuperAdmin is the elevated privilege required for destructive operations.
const RoleSuperAdmin = "super_admin"

// IsSuperAdmin reports whether the actor holds the elevated role.
func (a Actor) IsSuperAdmin() bool {
	for _, r := range a.Roles {
		if r == RoleSuperAdmin {
			return true
		}
	}
	return false
}
