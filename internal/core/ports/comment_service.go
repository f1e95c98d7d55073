package ports

import (
	"context"

	"github.com/devnews/devnews-api/internal/core/domain"
)

// CreateCommentInput carries the data for a new comment. A non-empty ParentID
// makes the comment a reply.
type CreateCommentInput struct {
	Content  string
	PostID   string
	ParentID string
}

// CommentService defines use-case operations for comments.
type CommentService interface {
	ListByPost(ctx context.Context, postID string) ([]*domain.Comment, error)
	Create(ctx context.Context, identity domain.Identity, input CreateCommentInput) (*domain.Comment, error)
	// Update is owner-only; admins have no override for edits.
	Update(ctx context.Context, identity domain.Identity, id, content string) (*domain.Comment, error)
	// Delete is permitted for the owner or an admin.
	Delete(ctx context.Context, identity domain.Identity, id string) error
}
