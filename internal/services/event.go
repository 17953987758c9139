package services

import (
	"context"
	"strings"
	"time"

	"venuehub/internal/domain"
)

type eventService struct {
	repo           domain.EventRepository
	spaceRepo      domain.SpaceRepository
	contextTimeout time.Duration
}

// NewEventService wires event management over its repositories.
func NewEventService(repo domain.EventRepository, spaceRepo domain.SpaceRepository, timeout time.Duration) domain.EventService {
	return &eventService{
		repo:           repo,
		spaceRepo:      spaceRepo,
		contextTimeout: timeout,
	}
}

func (s *eventService) Create(ctx context.Context, e *domain.Event) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	e.Title = strings.TrimSpace(e.Title)
	if e.CreatorID == "" {
		return &domain.InvalidFieldError{Field: "creator_id", Reason: "is required"}
	}
	if err := e.Validate(); err != nil {
		return err
	}
	if _, err := s.spaceRepo.GetByID(ctx, e.SpaceID); err != nil {
		return err
	}
	return s.repo.Create(ctx, e)
}

func (s *eventService) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.repo.GetByID(ctx, id)
}

func (s *eventService) List(ctx context.Context) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.repo.List(ctx)
}

func (s *eventService) Update(ctx context.Context, e *domain.Event, actorID string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	e.Title = strings.TrimSpace(e.Title)
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, e)
}

func (s *eventService) Delete(ctx context.Context, id string, actor domain.Actor) error {
	if !actor.IsSuperAdmin() {
		return domain.ErrForbidden
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.repo.Delete(ctx, id)
}
