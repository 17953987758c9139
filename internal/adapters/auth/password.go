package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"venuehub/internal/domain"
)

type bcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a PasswordHasher backed by bcrypt with the given
// cost. bcrypt salts internally, so no separate salt is stored.
func NewBcryptHasher(cost int) domain.PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &bcryptHasher{cost: cost}
}

func (h *bcryptHasher) Hash(credential string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(credential), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash credential: %w", err)
	}
	return string(hash), nil
}

func (h *bcryptHasher) Compare(hash, credential string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(credential))
}
