package service

import (
	"context"
	"errors"
	"testing"

	"github.com/devnews/devnews-api/internal/core/domain"
)

func TestCategoryService_CRUD(t *testing.T) {
	ctx := context.Background()
	svc := NewCategoryService(newMemCategoryRepo())

	created, err := svc.Create(ctx, "golang", "all things go")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := svc.Create(ctx, "golang", "dup"); !errors.Is(err, domain.ErrCategoryExists) {
		t.Fatalf("expected ErrCategoryExists, got %v", err)
	}

	updated, err := svc.Update(ctx, created.ID, "go", "renamed")
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Name != "go" || updated.Description != "renamed" {
		t.Fatalf("update not applied: %+v", updated)
	}

	all, err := svc.List(ctx)
	if err != nil || len(all) != 1 {
		t.Fatalf("expected one category, got %d (err %v)", len(all), err)
	}

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := svc.Get(ctx, created.ID); !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}
