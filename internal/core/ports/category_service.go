package ports

import (
	"context"

	"github.com/devnews/devnews-api/internal/core/domain"
)

// CategoryService defines use-case operations for categories. Mutations are
// admin-gated by the route, not re-checked here.
type CategoryService interface {
	List(ctx context.Context) ([]*domain.Category, error)
	Get(ctx context.Context, id string) (*domain.Category, error)
	Create(ctx context.Context, name, description string) (*domain.Category, error)
	Update(ctx context.Context, id, name, description string) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
}
