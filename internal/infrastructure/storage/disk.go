// Package storage persists uploaded blobs on the local filesystem under a
// single configured directory, which is also served read-only over HTTP.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// DiskStore implements ports.BlobStore on the local filesystem.
type DiskStore struct {
	dir string
}

// NewDiskStore creates the upload directory when missing.
func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskStore{dir: dir}, nil
}

// Save writes the blob under the stored filename and returns its path.
func (s *DiskStore) Save(filename string, data []byte) (string, error) {
	path := filepath.Join(s.dir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write blob: %w", err)
	}
	return path, nil
}

// Remove deletes the stored bytes. Callers decide whether a failure blocks
// the metadata delete.
func (s *DiskStore) Remove(path string) error {
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("remove blob: %w", err)
	}
	return nil
}

// Dir returns the root directory blobs are stored under.
func (s *DiskStore) Dir() string {
	return s.dir
}
