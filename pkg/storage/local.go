package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Local implements Store on the local filesystem under a single base
// directory.
type Local struct {
	basePath string
}

// NewLocal creates the base directory if needed and returns a local store.
func NewLocal(basePath string) (*Local, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}
	return &Local{basePath: basePath}, nil
}

// Save writes the upload under a random name that preserves the original
// extension.
func (s *Local) Save(filename string, r io.Reader) (string, error) {
	name := uuid.New().String() + filepath.Ext(filename)
	path := filepath.Join(s.basePath, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write upload file: %w", err)
	}
	return path, nil
}

// Remove deletes a stored file, tolerating files that are already gone.
func (s *Local) Remove(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove upload file: %w", err)
	}
	return nil
}

// Sweep deletes files older than the given age and reports how many went.
// Crashed requests can leave uploads (and preprocessed copies) behind; the
// janitor calls this periodically.
func (s *Local) Sweep(olderThan time.Duration) (int, error) {
	entries, err := os.ReadDir(s.basePath)
	if err != nil {
		return 0, fmt.Errorf("read upload directory: %w", err)
	}

	cutoff := time.Now().Add(-olderThan)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if os.Remove(filepath.Join(s.basePath, entry.Name())) == nil {
				removed++
			}
		}
	}
	return removed, nil
}
