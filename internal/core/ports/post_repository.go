package ports

import (
	"context"

	"github.com/devnews/devnews-api/internal/core/domain"
)

// PostUpdate carries the mutable post fields. The tag association is fully
// replaced with TagIDs on every update, never diffed incrementally.
type PostUpdate struct {
	Title      string
	Content    string
	Published  *bool
	CategoryID string
	TagIDs     []string
}

// PostRepository defines persistence operations for posts. Find methods
// resolve the author, category and tags eagerly.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) (*domain.Post, error)
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	// FindPublished returns published posts, newest first.
	FindPublished(ctx context.Context) ([]*domain.Post, error)
	Update(ctx context.Context, id string, update PostUpdate) (*domain.Post, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	FindRecent(ctx context.Context, n int) ([]*domain.Post, error)
}

// TagRepository handles the lazily created tag reference data.
type TagRepository interface {
	// GetOrCreate looks a tag up by its unique name and inserts it when absent.
	GetOrCreate(ctx context.Context, name string) (*domain.Tag, error)
}
