package domain

import (
	"context"
	"time"
)

// EventProposal is a visitor-submitted event idea awaiting programming review.
// It shares the event shape plus proposer contact details and the same
// pending/approved/rejected decision workflow as reservations.
// swagger:model EventProposal
type EventProposal struct {
	ID            string            `json:"id"`
	Title         string            `json:"title"`
	Type          EventType         `json:"type"`
	StartsAt      time.Time         `json:"starts_at"`
	EndsAt        time.Time         `json:"ends_at"`
	Description   string            `json:"description"`
	Price         float64           `json:"price"`
	SpaceID       string            `json:"space_id"`
	ProposerName  string            `json:"proposer_name"`
	ProposerEmail string            `json:"proposer_email"`
	ProposerPhone string            `json:"proposer_phone,omitempty"`
	Status        ReservationStatus `json:"status"`
	Comments      string            `json:"comments,omitempty"`
	PosterRef     string            `json:"poster_ref,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	DecidedAt     *time.Time        `json:"decided_at,omitempty"`
}

// Validate enforces the proposal invariants. minLeadTime is the configured
// minimum delay between now and the proposed start; zero disables the check.
func (p *EventProposal) Validate(now time.Time, minLeadTime time.Duration) error {
	if err := ValidateRequired(map[string]string{
		"title":          p.Title,
		"description":    p.Description,
		"space_id":       p.SpaceID,
		"proposer_name":  p.ProposerName,
		"proposer_email": p.ProposerEmail,
	}, []string{"title", "description", "space_id", "proposer_name", "proposer_email"}); err != nil {
		return err
	}
	if !ValidEventType(p.Type) {
		return &InvalidFieldError{Field: "type", Reason: "unknown event type"}
	}
	if err := ValidateDateRange(p.StartsAt, p.EndsAt); err != nil {
		return err
	}
	if err := ValidateEmail(p.ProposerEmail); err != nil {
		return err
	}
	if minLeadTime > 0 && p.StartsAt.Before(now.Add(minLeadTime)) {
		return &InvalidFieldError{Field: "starts_at", Reason: "proposal must be submitted ahead of the minimum lead time"}
	}
	if p.Price < 0 {
		return &InvalidFieldError{Field: "price", Reason: "must not be negative"}
	}
	return nil
}

// PosterStore persists uploaded poster attachments and returns an opaque
// reference to the stored file. Implementations own naming and layout.
type PosterStore interface {
	Save(ctx context.Context, filename string, data []byte) (ref string, err error)
}

// ProposalRepository defines the interface for proposal storage. Decide has
// the same conditional-update contract as ReservationRepository.Decide.
type ProposalRepository interface {
	Create(ctx context.Context, p *EventProposal) error
	GetByID(ctx context.Context, id string) (*EventProposal, error)
	List(ctx context.Context) ([]*EventProposal, error)
	Decide(ctx context.Context, id string, status ReservationStatus, decidedAt time.Time) (*EventProposal, error)
}

// ProposalService defines the proposal submission and review business logic.
type ProposalService interface {
	Create(ctx context.Context, p *EventProposal, poster *PosterUpload) error
	List(ctx context.Context) ([]*EventProposal, error)
	Decide(ctx context.Context, id string, decision Decision, actorID string) (*EventProposal, error)
}

// PosterUpload carries an optional poster attachment received with a
// proposal submission.
type PosterUpload struct {
	Filename string
	Data     []byte
}
