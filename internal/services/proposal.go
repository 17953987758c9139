package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"venuehub/internal/domain"
)

type proposalService struct {
	repo           domain.ProposalRepository
	spaceRepo      domain.SpaceRepository
	posterStore    domain.PosterStore
	publisher      domain.DecisionPublisher
	logger         *slog.Logger
	minLeadTime    time.Duration
	contextTimeout time.Duration
	now            func() time.Time
}

// NewProposalService wires proposal submission and review. minLeadTime is the
// minimum delay between submission and the proposed start; zero disables it.
func NewProposalService(repo domain.ProposalRepository, spaceRepo domain.SpaceRepository, posterStore domain.PosterStore, publisher domain.DecisionPublisher, logger *slog.Logger, minLeadTime, timeout time.Duration) domain.ProposalService {
	return &proposalService{
		repo:           repo,
		spaceRepo:      spaceRepo,
		posterStore:    posterStore,
		publisher:      publisher,
		logger:         logger,
		minLeadTime:    minLeadTime,
		contextTimeout: timeout,
		now:            time.Now,
	}
}

// Create validates and persists a proposal in pending status, storing the
// optional poster first so the stored reference lands in the same insert.
func (s *proposalService) Create(ctx context.Context, p *domain.EventProposal, poster *domain.PosterUpload) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	p.Title = strings.TrimSpace(p.Title)
	p.ProposerName = strings.TrimSpace(p.ProposerName)
	p.ProposerEmail = strings.TrimSpace(strings.ToLower(p.ProposerEmail))
	if err := p.Validate(s.now(), s.minLeadTime); err != nil {
		return err
	}
	if _, err := s.spaceRepo.GetByID(ctx, p.SpaceID); err != nil {
		return err
	}

	if poster != nil && len(poster.Data) > 0 {
		ref, err := s.posterStore.Save(ctx, poster.Filename, poster.Data)
		if err != nil {
			return err
		}
		p.PosterRef = ref
	}

	p.Status = domain.ReservationPending
	p.DecidedAt = nil
	return s.repo.Create(ctx, p)
}

func (s *proposalService) List(ctx context.Context) ([]*domain.EventProposal, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.repo.List(ctx)
}

// Decide applies the same single-shot decision contract as reservations.
func (s *proposalService) Decide(ctx context.Context, id string, decision domain.Decision, actorID string) (*domain.EventProposal, error) {
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
			Kind:           "proposal",
			ID:             decided.ID,
			Status:         string(decided.Status),
			RequesterName:  decided.ProposerName,
			RequesterEmail: decided.ProposerEmail,
			SpaceID:        decided.SpaceID,
			StartsAt:       decided.StartsAt,
			EndsAt:         decided.EndsAt,
			DecidedAt:      *decided.DecidedAt,
		}
		if err := s.publisher.PublishDecision(ctx, event); err != nil {
			s.logger.ErrorContext(ctx, "failed to publish proposal decision", "proposal_id", decided.ID, "err", err)
		}
	}
	return decided, nil
}
