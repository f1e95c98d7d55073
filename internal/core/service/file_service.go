package service

import (
	"context"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/devnews/devnews-api/internal/core/domain"
	"github.com/devnews/devnews-api/internal/core/ports"
)

// FileService handles uploads: blob storage plus the metadata record.
type FileService struct {
	files  ports.FileRepository
	blobs  ports.BlobStore
	logger zerolog.Logger
}

func NewFileService(files ports.FileRepository, blobs ports.BlobStore, logger zerolog.Logger) *FileService {
	return &FileService{files: files, blobs: blobs, logger: logger}
}

// Upload stores the bytes under a server-generated filename, then persists
// the metadata record owned by the uploader.
func (s *FileService) Upload(ctx context.Context, identity domain.Identity, input ports.UploadInput) (*domain.File, error) {
	filename := uuid.NewString() + filepath.Ext(input.OriginalName)

	path, err := s.blobs.Save(filename, input.Data)
	if err != nil {
		return nil, err
	}

	file := &domain.File{
		Filename:     filename,
		OriginalName: input.OriginalName,
		MimeType:     input.MimeType,
		Size:         int64(len(input.Data)),
		Path:         path,
		UserID:       identity.UserID,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.files.Create(ctx, file)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("file_id", created.ID).Str("user_id", identity.UserID).Int64("size", created.Size).Msg("file uploaded")
	return created, nil
}

func (s *FileService) Get(ctx context.Context, id string) (*domain.File, error) {
	return s.files.FindByID(ctx, id)
}

// Delete removes the stored bytes first; if that fails the metadata record is
// kept so the file can still be found and retried. Owner-only, no admin
// override.
func (s *FileService) Delete(ctx context.Context, identity domain.Identity, id string) error {
	file, err := s.files.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !domain.CanMutate(identity, file.UserID, false) {
		return domain.ErrForbidden
	}

	if err := s.blobs.Remove(file.Path); err != nil {
		return err
	}

	if err := s.files.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("file_id", id).Str("user_id", identity.UserID).Msg("file deleted")
	return nil
}
