package ports

import (
	"context"

	"github.com/devnews/devnews-api/internal/core/domain"
)

// FileRepository defines persistence operations for upload metadata.
type FileRepository interface {
	Create(ctx context.Context, file *domain.File) (*domain.File, error)
	FindByID(ctx context.Context, id string) (*domain.File, error)
	Delete(ctx context.Context, id string) error
}

// BlobStore persists and removes the uploaded bytes themselves.
type BlobStore interface {
	// Save writes the blob under the given stored filename and returns the
	// absolute path of the written file.
	Save(filename string, data []byte) (string, error)
	Remove(path string) error
}
