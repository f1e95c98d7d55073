package service

import (
	"context"

	"github.com/devnews/devnews-api/internal/core/domain"
	"github.com/devnews/devnews-api/internal/core/ports"
)

// CategoryService implements category CRUD. Role gating happens at the route;
// there is no per-resource ownership for categories.
type CategoryService struct {
	categories ports.CategoryRepository
}

func NewCategoryService(categories ports.CategoryRepository) *CategoryService {
	return &CategoryService{categories: categories}
}

func (s *CategoryService) List(ctx context.Context) ([]*domain.Category, error) {
	return s.categories.FindAll(ctx)
}

func (s *CategoryService) Get(ctx context.Context, id string) (*domain.Category, error) {
	return s.categories.FindByID(ctx, id)
}

func (s *CategoryService) Create(ctx context.Context, name, description string) (*domain.Category, error) {
	return s.categories.Create(ctx, &domain.Category{Name: name, Description: description})
}

func (s *CategoryService) Update(ctx context.Context, id, name, description string) (*domain.Category, error) {
	if _, err := s.categories.FindByID(ctx, id); err != nil {
		return nil, err
	}
	return s.categories.Update(ctx, id, ports.CategoryUpdate{Name: name, Description: description})
}

func (s *CategoryService) Delete(ctx context.Context, id string) error {
	if _, err := s.categories.FindByID(ctx, id); err != nil {
		return err
	}
	return s.categories.Delete(ctx, id)
}
