package assets

import (
	"fmt"
	"os"
	"path/filepath"

	"learnalert/internal/pkg/logger"

	"github.com/google/uuid"
)

// Store writes rendered card images to a scratch directory and hands back
// their paths. Entries are not tracked for cleanup: ownership of a written
// file transfers to whatever attaches it to a notification.
type Store struct {
	dir string
	log logger.Logger
}

// NewStore creates a Store rooted at dir, creating it if needed.
// An empty dir falls back to the OS temp directory.
func NewStore(dir string, log logger.Logger) (*Store, error) {
	if dir == "" {
		dir = filepath.Join(os.TempDir(), "learnalert")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create asset directory %s: %w", dir, err)
	}
	return &Store{dir: dir, log: log}, nil
}

// Persist writes the PNG bytes under a fresh unique name and returns the
// absolute path of the written file.
func (s *Store) Persist(png []byte) (string, error) {
	path := filepath.Join(s.dir, uuid.NewString()+".png")
	if err := os.WriteFile(path, png, 0o644); err != nil {
		return "", fmt.Errorf("failed to write asset %s: %w", path, err)
	}
	s.log.Debug(fmt.Sprintf("Persisted card image to %s", path))
	return path, nil
}
