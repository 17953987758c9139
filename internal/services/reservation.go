package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"venuehub/internal/domain"
)

type reservationService struct {
	repo           domain.ReservationRepository
	spaceRepo      domain.SpaceRepository
	publisher      domain.DecisionPublisher
	logger         *slog.Logger
	contextTimeout time.Duration
	now            func() time.Time
}

// NewReservationService wires the reservation lifecycle. publisher may be nil
// when no broker is configured; decisions are then simply not announced.
func NewReservationService(repo domain.ReservationRepository, spaceRepo domain.SpaceRepository, publisher domain.DecisionPublisher, logger *slog.Logger, timeout time.Duration) domain.ReservationService {
	return &reservationService{
		repo:           repo,
		spaceRepo:      spaceRepo,
		publisher:      publisher,
		logger:         logger,
		contextTimeout: timeout,
		now:            time.Now,
	}
}

func validateReservationFields(name, email, spaceID string, startsAt, endsAt time.Time) error {
	if err := domain.ValidateRequired(map[string]string{
		"requester_name":  name,
		"requester_email": email,
		"space_id":        spaceID,
	}, []string{"requester_name", "requester_email", "space_id"}); err != nil {
		return err
	}
	if err := domain.ValidateEmail(email); err != nil {
		return err
	}
	return domain.ValidateDateRange(startsAt, endsAt)
}

// Create persists a new reservation in pending status. The endpoint is open:
// the requester identity is self-declared and must not be trusted.
func (s *reservationService) Create(ctx context.Context, r *domain.Reservation) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	r.RequesterName = strings.TrimSpace(r.RequesterName)
	r.RequesterEmail = strings.TrimSpace(strings.ToLower(r.RequesterEmail))
	if err := validateReservationFields(r.RequesterName, r.RequesterEmail, r.SpaceID, r.StartsAt, r.EndsAt); err != nil {
		return err
	}
	if _, err := s.spaceRepo.GetByID(ctx, r.SpaceID); err != nil {
		return err
	}
	r.Status = domain.ReservationPending
	r.DecidedAt = nil
	return s.repo.Create(ctx, r)
}

func (s *reservationService) List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.repo.List(ctx, filter)
}

// Update replaces the mutable fields of a reservation. Full-record semantics:
// the caller supplies the complete new state.
func (s *reservationService) Update(ctx context.Context, id string, upd domain.ReservationUpdate, actorID string) (*domain.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	upd.RequesterName = strings.TrimSpace(upd.RequesterName)
	upd.RequesterEmail = strings.TrimSpace(strings.ToLower(upd.RequesterEmail))
	if err := validateReservationFields(upd.RequesterName, upd.RequesterEmail, upd.SpaceID, upd.StartsAt, upd.EndsAt); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, upd)
}

// Delete removes a reservation. Only a super admin may delete; any other
// actor is rejected before the record is touched.
func (s *reservationService) Delete(ctx context.Context, id string, actor domain.Actor) error {
	if !actor.IsSuperAdmin() {
		return domain.ErrForbidden
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.repo.Delete(ctx, id)
}

// Decide transitions a pending reservation to its terminal state. The check
// and the write happen in one conditional update at the repository, so a
// replayed or concurrent decision fails with ErrInvalidTransition.
func (s *reservationService) Decide(ctx context.Context, id string, decision domain.Decision, actorID string) (*domain.Reservation, error) {
	status, ok := decision.Status()
	if !ok {
		return nil, &domain.InvalidFieldError{Field: "decision", Reason: "must be approve or reject"}
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	decided, err := s.repo.Decide(ctx, id, status, s.now().UTC())
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		event := domain.DecisionEvent{
			Kind:           "reservation",
			ID:             decided.ID,
			Status:         string(decided.Status),
			RequesterName:  decided.RequesterName,
			RequesterEmail: decided.RequesterEmail,
			SpaceID:        decided.SpaceID,
			StartsAt:       decided.StartsAt,
			EndsAt:         decided.EndsAt,
			DecidedAt:      *decided.DecidedAt,
		}
		if err := s.publisher.PublishDecision(ctx, event); err != nil {
			s.logger.ErrorContext(ctx, "failed to publish reservation decision", "reservation_id", decided.ID, "err", err)
		}
	}
	return decided, nil
}
