package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"venuehub/internal/domain"
)

type talentService struct {
	repo           domain.TalentRepository
	hasher         domain.PasswordHasher
	tokenIssuer    domain.TokenIssuer
	tokenExpiry    time.Duration
	contextTimeout time.Duration
}

// NewTalentService wires talent account management and authentication.
func NewTalentService(repo domain.TalentRepository, hasher domain.PasswordHasher, tokenIssuer domain.TokenIssuer, tokenExpiry, timeout time.Duration) domain.TalentService {
	return &talentService{
		repo:           repo,
		hasher:         hasher,
		tokenIssuer:    tokenIssuer,
		tokenExpiry:    tokenExpiry,
		contextTimeout: timeout,
	}
}

// Create registers a talent account. The credential is required here and only
// here; it is hashed before anything touches storage.
func (s *talentService) Create(ctx context.Context, t *domain.Talent, credential string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	t.Name = strings.TrimSpace(t.Name)
	t.Email = strings.TrimSpace(strings.ToLower(t.Email))
	if err := domain.ValidateRequired(map[string]string{
		"name":       t.Name,
		"email":      t.Email,
		"domain":     t.Domain,
		"credential": credential,
	}, []string{"name", "email", "domain", "credential"}); err != nil {
		return err
	}
	if err := domain.ValidateEmail(t.Email); err != nil {
		return err
	}
	if t.Status == "" {
		t.Status = domain.TalentPendingValidation
	}
	if !domain.ValidTalentStatus(t.Status) {
		return &domain.InvalidFieldError{Field: "status", Reason: "unknown talent status"}
	}

	hash, err := s.hasher.Hash(credential)
	if err != nil {
		return err
	}
	t.CredentialHash = hash
	return s.repo.Create(ctx, t)
}

func (s *talentService) GetByID(ctx context.Context, id string) (*domain.Talent, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.repo.GetByID(ctx, id)
}

func (s *talentService) List(ctx context.Context) ([]*domain.Talent, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.repo.List(ctx)
}

// Patch applies a partial update: nil fields keep their stored value, and the
// credential is only re-hashed when a new one is supplied.
func (s *talentService) Patch(ctx context.Context, id string, patch domain.TalentPatch, actorID string) (*domain.Talent, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Empty() {
		return current, nil
	}

	if patch.Name != nil {
		current.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Email != nil {
		email := strings.TrimSpace(strings.ToLower(*patch.Email))
		if err := domain.ValidateEmail(email); err != nil {
			return nil, err
		}
		current.Email = email
	}
	if patch.Domain != nil {
		current.Domain = *patch.Domain
	}
	if patch.Status != nil {
		if !domain.ValidTalentStatus(*patch.Status) {
			return nil, &domain.InvalidFieldError{Field: "status", Reason: "unknown talent status"}
		}
		current.Status = *patch.Status
	}
	if patch.Description != nil {
		current.Description = *patch.Description
	}
	if patch.IsTalent != nil {
		current.IsTalent = *patch.IsTalent
	}
	if patch.Credential != nil {
		if *patch.Credential == "" {
			return nil, &domain.InvalidFieldError{Field: "credential", Reason: "must not be empty when supplied"}
		}
		hash, err := s.hasher.Hash(*patch.Credential)
		if err != nil {
			return nil, err
		}
		current.CredentialHash = hash
	}

	return s.repo.Update(ctx, current)
}

func (s *talentService) Delete(ctx context.Context, id string, actor domain.Actor) error {
	if !actor.IsSuperAdmin() {
		return domain.ErrForbidden
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.repo.Delete(ctx, id)
}

// Authenticate checks the credential and issues a token carrying the talent
// role. Unknown emails and bad credentials are indistinguishable to callers.
func (s *talentService) Authenticate(ctx context.Context, email, credential string) (string, *domain.Talent, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	talent, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}
	if err := s.hasher.Compare(talent.CredentialHash, credential); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	roles := []string{"talent"}
	token, err := s.tokenIssuer.Issue(talent.ID, talent.Email, roles, s.tokenExpiry)
	if err != nil {
		return "", nil, err
	}
	return token, talent, nil
}
