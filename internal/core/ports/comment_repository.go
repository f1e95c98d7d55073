package ports

import (
	"context"

	"github.com/devnews/devnews-api/internal/core/domain"
)

// CommentRepository defines persistence operations for comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	FindByID(ctx context.Context, id string) (*domain.Comment, error)
	// FindByPost returns the post's top-level comments newest first, each
	// carrying its direct replies with authors resolved.
	FindByPost(ctx context.Context, postID string) ([]*domain.Comment, error)
	UpdateContent(ctx context.Context, id, content string) (*domain.Comment, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
