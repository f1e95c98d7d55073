package domain

import (
	"errors"
	"time"
)

var ErrFileNotFound = errors.New("file not found")

// File is the metadata record for an uploaded blob. The stored filename is
// server-generated; OriginalName preserves what the client sent.
type File struct {
	ID           string    `json:"id"`
	Filename     string    `json:"filename"`
	OriginalName string    `json:"original_name"`
	MimeType     string    `json:"mime_type"`
	Size         int64     `json:"size"`
	Path         string    `json:"-"`
	UserID       string    `json:"user_id"`
	CreatedAt    time.Time `json:"created_at"`
}
