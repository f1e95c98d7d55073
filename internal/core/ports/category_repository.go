package ports

import (
	"context"

	"github.com/devnews/devnews-api/internal/core/domain"
)

// CategoryUpdate carries the mutable category fields.
type CategoryUpdate struct {
	Name        string
	Description string
}

// CategoryRepository defines persistence operations for categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) (*domain.Category, error)
	// FindAll returns every category with a summary of its posts.
	FindAll(ctx context.Context) ([]*domain.Category, error)
	FindByID(ctx context.Context, id string) (*domain.Category, error)
	Update(ctx context.Context, id string, update CategoryUpdate) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
