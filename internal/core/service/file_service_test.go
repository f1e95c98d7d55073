package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/devnews/devnews-api/internal/core/domain"
	"github.com/devnews/devnews-api/internal/core/ports"
)

func newFileFixture() (*FileService, *memFileRepo, *memBlobStore) {
	files := newMemFileRepo()
	blobs := newMemBlobStore()
	return NewFileService(files, blobs, zerolog.Nop()), files, blobs
}

func TestFileService_Upload(t *testing.T) {
	svc, _, blobs := newFileFixture()

	file, err := svc.Upload(context.Background(), asOwner, ports.UploadInput{
		OriginalName: "photo.png",
		MimeType:     "image/png",
		Data:         []byte{1, 2, 3},
	})
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}

	if file.Filename == "photo.png" {
		t.Fatalf("stored filename must be server-generated")
	}
	if !strings.HasSuffix(file.Filename, ".png") {
		t.Fatalf("stored filename must keep the extension, got %s", file.Filename)
	}
	if file.Size != 3 || file.UserID != asOwner.UserID {
		t.Fatalf("unexpected metadata: %+v", file)
	}
	if _, ok := blobs.saved[file.Filename]; !ok {
		t.Fatalf("bytes were not written to the blob store")
	}
}

func TestFileService_Delete_OwnerOnly(t *testing.T) {
	svc, files, blobs := newFileFixture()
	file, _ := svc.Upload(context.Background(), asOwner, ports.UploadInput{OriginalName: "doc.pdf", Data: []byte("x")})

	// No admin override for uploads.
	if err := svc.Delete(context.Background(), asAdmin, file.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("admin delete must be forbidden, got %v", err)
	}

	if err := svc.Delete(context.Background(), asOwner, file.ID); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if len(blobs.removed) != 1 {
		t.Fatalf("expected the blob to be removed")
	}
	if _, err := files.FindByID(context.Background(), file.ID); !errors.Is(err, domain.ErrFileNotFound) {
		t.Fatalf("metadata should be gone, got %v", err)
	}
}

func TestFileService_Delete_KeepsMetadataOnBlobFailure(t *testing.T) {
	svc, files, blobs := newFileFixture()
	file, _ := svc.Upload(context.Background(), asOwner, ports.UploadInput{OriginalName: "doc.pdf", Data: []byte("x")})

	blobs.removeErr = errors.New("disk error")
	if err := svc.Delete(context.Background(), asOwner, file.ID); err == nil {
		t.Fatalf("expected the blob failure to surface")
	}

	// The record survives so the delete can be retried.
	if _, err := files.FindByID(context.Background(), file.ID); err != nil {
		t.Fatalf("metadata must be kept when the blob removal fails: %v", err)
	}
}
