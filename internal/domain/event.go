package domain

import (
	"context"
	"time"
)

// EventType is the closed set of programmable event categories.
type EventType string

const (
	EventSpectacle  EventType = "spectacle"
	EventAtelier    EventType = "atelier"
	EventConference EventType = "conference"
	EventExposition EventType = "exposition"
	EventRencontre  EventType = "rencontre"
)

// ValidEventType reports whether t is one of the known event types.
func ValidEventType(t EventType) bool {
	switch t {
	case EventSpectacle, EventAtelier, EventConference, EventExposition, EventRencontre:
		return true
	}
	return false
}

// Event represents a scheduled event in one of the venue's spaces.
// swagger:model Event
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Type        EventType `json:"type"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	SpaceID     string    `json:"space_id"`
	CreatorID   string    `json:"creator_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewEvent returns a new Event. ID and timestamps are set by the repository
// on create.
func NewEvent(title string, typ EventType, startsAt, endsAt time.Time, description string, price float64, spaceID, creatorID string) *Event {
	return &Event{
		Title:       title,
		Type:        typ,
		StartsAt:    startsAt,
		EndsAt:      endsAt,
		Description: description,
		Price:       price,
		SpaceID:     spaceID,
		CreatorID:   creatorID,
	}
}

// Validate enforces the event invariants: required title, known type,
// end after start, non-negative price.
func (e *Event) Validate() error {
	if err := ValidateRequired(map[string]string{
		"title":    e.Title,
		"space_id": e.SpaceID,
	}, []string{"title", "space_id"}); err != nil {
		return err
	}
	if !ValidEventType(e.Type) {
		return &InvalidFieldError{Field: "type", Reason: "unknown event type"}
	}
	if err := ValidateDateRange(e.StartsAt, e.EndsAt); err != nil {
		return err
	}
	if e.Price < 0 {
		return &InvalidFieldError{Field: "price", Reason: "must not be negative"}
	}
	return nil
}

// InvalidFieldError reports a field whose value violates a domain rule.
type InvalidFieldError struct {
	Field  string
	Reason string
}

func (e *InvalidFieldError) Error() string { return e.Field + ": " + e.Reason }

func (e *InvalidFieldError) Is(target error) bool { return target == ErrInvalidInput }

// EventRepository defines the interface for event storage.
type EventRepository interface {
	Create(ctx context.Context, e *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	List(ctx context.Context) ([]*Event, error)
	Update(ctx context.Context, e *Event) (*Event, error)
	Delete(ctx context.Context, id string) error
}

// EventService defines the event management business logic.
type EventService interface {
	Create(ctx context.Context, e *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	List(ctx context.Context) ([]*Event, error)
	Update(ctx context.Context, e *Event, actorID string) (*Event, error)
	Delete(ctx context.Context, id string, actor Actor) error
}
