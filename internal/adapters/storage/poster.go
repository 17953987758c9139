// Package storage persists uploaded poster attachments on local disk and
// hands back opaque references. Swapping in an object store only requires
// another implementation of domain.PosterStore.
package storage

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"venuehub/internal/domain"
)

type diskPosterStore struct {
	dir string
}

// NewDiskPosterStore returns a PosterStore writing under dir, creating the
// directory if needed.
func NewDiskPosterStore(dir string) (domain.PosterStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create poster dir: %w", err)
	}
	return &diskPosterStore{dir: dir}, nil
}

// Save writes data to a randomly named file preserving the original
// extension and returns the file name as the stored reference.
func (s *diskPosterStore) Save(ctx context.Context, filename string, data []byte) (string, error) {
	var randPart [16]byte
	if _, err := rand.Read(randPart[:]); err != nil {
		return "", fmt.Errorf("generate poster name: %w", err)
	}
	ext := strings.ToLower(filepath.Ext(filename))
	name := hex.EncodeToString(randPart[:]) + ext
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write poster: %w", err)
	}
	return name, nil
}
