package domain

import (
	"context"
	"time"
)

// DecisionEvent is published when a reservation or proposal leaves the
// pending state. It carries enough for downstream consumers to notify the
// requester without querying the primary database.
type DecisionEvent struct {
	Kind           string    `json:"kind"` // "reservation" or "proposal"
	ID             string    `json:"id"`
	Status         string    `json:"status"`
	RequesterName  string    `json:"requester_name"`
	RequesterEmail string    `json:"requester_email"`
	SpaceID        string    `json:"space_id"`
	StartsAt       time.Time `json:"starts_at"`
	EndsAt         time.Time `json:"ends_at"`
	DecidedAt      time.Time `json:"decided_at"`
}

// DecisionPublisher emits decision-made events. Publishing is best-effort:
// services log failures but never fail the originating request on one.
type DecisionPublisher interface {
	PublishDecision(ctx context.Context, event DecisionEvent) error
}

// Mailer sends a single email. Implementations may use SES or a no-op
// development mailer.
type Mailer interface {
	Send(to, subject, html, text string) error
}
