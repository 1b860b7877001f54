// Package storage holds uploaded documents on disk for the lifetime of one
// extraction request. Files are transient: every pipeline exit path deletes
// the upload, and a janitor sweeps anything left behind by crashes.
package storage

import (
	"io"
	"time"
)

// Store is the upload file store consumed by the extraction pipeline.
type Store interface {
	// Save persists an upload and returns its filesystem path. The stored
	// name keeps the original extension, since classification is by
	// extension.
	Save(filename string, r io.Reader) (string, error)

	// Remove deletes a stored file. Removing a file that is already gone is
	// not an error.
	Remove(path string) error
}

// Sweeper is implemented by stores that can purge stale files.
type Sweeper interface {
	Sweep(olderThan time.Duration) (int, error)
}
