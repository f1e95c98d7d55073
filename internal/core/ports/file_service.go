package ports

import (
	"context"

	"github.com/devnews/devnews-api/internal/core/domain"
)

// UploadInput carries one uploaded blob and its client-reported metadata.
type UploadInput struct {
	OriginalName string
	MimeType     string
	Data         []byte
}

// FileService defines upload operations.
type FileService interface {
	Upload(ctx context.Context, identity domain.Identity, input UploadInput) (*domain.File, error)
	Get(ctx context.Context, id string) (*domain.File, error)
	// Delete is owner-only with no admin override. The stored bytes are
	// removed before the metadata record; when byte removal fails the record
	// is kept.
	Delete(ctx context.Context, identity domain.Identity, id string) error
}
