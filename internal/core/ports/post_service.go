package ports

import (
	"context"

	"github.com/devnews/devnews-api/internal/core/domain"
)

// CreatePostInput carries the data for a new post. TagNames are resolved
// through get-or-create before the post is written.
type CreatePostInput struct {
	Title      string
	Content    string
	CategoryID string
	TagNames   []string
}

// UpdatePostInput carries a full post update. The tag association is replaced
// with the resolved TagNames set, not diffed.
type UpdatePostInput struct {
	Title      string
	Content    string
	Published  *bool
	CategoryID string
	TagNames   []string
}

// PostService defines use-case operations for posts.
type PostService interface {
	ListPublished(ctx context.Context) ([]*domain.Post, error)
	Get(ctx context.Context, id string) (*domain.Post, error)
	Create(ctx context.Context, identity domain.Identity, input CreatePostInput) (*domain.Post, error)
	Update(ctx context.Context, identity domain.Identity, id string, input UpdatePostInput) (*domain.Post, error)
	Delete(ctx context.Context, identity domain.Identity, id string) error
}
