package domain

import (
	"context"
	"time"
)

// TalentStatus is the account lifecycle of a performer profile.
type TalentStatus string

const (
	TalentPendingValidation TalentStatus = "pending_validation"
	TalentActive            TalentStatus = "active"
	TalentInactive          TalentStatus = "inactive"
)

// ValidTalentStatus reports whether s is one of the known talent statuses.
func ValidTalentStatus(s TalentStatus) bool {
	switch s {
	case TalentPendingValidation, TalentActive, TalentInactive:
		return true
	}
	return false
}

// Talent is a performer account. CredentialHash is write-only: it is never
// serialized and read operations must never return it to callers.
// swagger:model Talent
type Talent struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Email          string       `json:"email"`
	Domain         string       `json:"domain"`
	Status         TalentStatus `json:"status"`
	Description    string       `json:"description,omitempty"`
	IsTalent       bool         `json:"is_talent"`
	CredentialHash string       `json:"-"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// TalentPatch carries a partial update. Nil fields are structurally omitted
// and leave the stored value unchanged; Credential, when set, is the new
// plaintext credential to hash.
type TalentPatch struct {
	Name        *string
	Email       *string
	Domain      *string
	Status      *TalentStatus
	Description *string
	IsTalent    *bool
	Credential  *string
}

// Empty reports whether the patch carries no change at all.
func (p TalentPatch) Empty() bool {
	return p.Name == nil && p.Email == nil && p.Domain == nil &&
		p.Status == nil && p.Description == nil && p.IsTalent == nil && p.Credential == nil
}

// PasswordHasher hashes and verifies talent credentials.
type PasswordHasher interface {
	Hash(credential string) (string, error)
	Compare(hash, credential string) error
}

// TokenIssuer issues tokens (e.g. JWT) for an authenticated actor.
type TokenIssuer interface {
	Issue(actorID, email string, roles []string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the authenticated actor.
type TokenVerifier interface {
	Verify(token string) (Actor, error)
}

// TalentRepository defines the interface for talent account storage.
type TalentRepository interface {
	Create(ctx context.Context, t *Talent) error
	GetByID(ctx context.Context, id string) (*Talent, error)
	GetByEmail(ctx context.Context, email string) (*Talent, error)
	List(ctx context.Context) ([]*Talent, error)
	Update(ctx context.Context, t *Talent) (*Talent, error)
	Delete(ctx context.Context, id string) error
}

// TalentService defines talent account management and authentication.
type TalentService interface {
	Create(ctx context.Context, t *Talent, credential string) error
	GetByID(ctx context.Context, id string) (*Talent, error)
	List(ctx context.Context) ([]*Talent, error)
	Patch(ctx context.Context, id string, patch TalentPatch, actorID string) (*Talent, error)
	Delete(ctx context.Context, id string, actor Actor) error
	Authenticate(ctx context.Context, email, credential string) (token string, talent *Talent, err error)
}
