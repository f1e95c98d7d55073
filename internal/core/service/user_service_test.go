package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/devnews/devnews-api/internal/core/domain"
	"github.com/devnews/devnews-api/internal/core/ports"
)

func newUserFixture(t *testing.T, n int) (*UserService, *memUserRepo) {
	t.Helper()
	users := newMemUserRepo()
	for i := 0; i < n; i++ {
		_, err := users.Create(context.Background(), &domain.User{
			Email:  fmt.Sprintf("u%d@example.com", i),
			Name:   fmt.Sprintf("u%d", i),
			Status: domain.StatusActive,
		})
		if err != nil {
			t.Fatalf("seed user %d: %v", i, err)
		}
	}
	return NewUserService(users, newMemRoleRepo(), zerolog.Nop()), users
}

func TestUserService_List_Defaults(t *testing.T) {
	svc, _ := newUserFixture(t, 4)

	page, err := svc.List(context.Background(), 0, 0)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if page.Page != 1 || page.Limit != defaultPageLimit {
		t.Fatalf("expected defaults page=1 limit=%d, got page=%d limit=%d", defaultPageLimit, page.Page, page.Limit)
	}
	if page.Total != 4 || page.TotalPages != 1 {
		t.Fatalf("unexpected totals: %+v", page)
	}
}

func TestUserService_List_Pagination(t *testing.T) {
	svc, _ := newUserFixture(t, 5)

	page, err := svc.List(context.Background(), 2, 2)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(page.Users) != 2 || page.TotalPages != 3 {
		t.Fatalf("expected 2 users over 3 pages, got %d users, %d pages", len(page.Users), page.TotalPages)
	}

	capped, err := svc.List(context.Background(), 1, 10000)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if capped.Limit != maxPageLimit {
		t.Fatalf("limit must be capped at %d, got %d", maxPageLimit, capped.Limit)
	}
}

func TestUserService_Get_SelfOrAdmin(t *testing.T) {
	svc, _ := newUserFixture(t, 2)

	self := domain.Identity{UserID: "user-1", Role: domain.RoleUser}
	if _, err := svc.Get(context.Background(), self, "user-1"); err != nil {
		t.Fatalf("self get failed: %v", err)
	}
	if _, err := svc.Get(context.Background(), self, "user-2"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("cross-user get must be forbidden, got %v", err)
	}
	admin := domain.Identity{UserID: "user-2", Role: domain.RoleAdmin}
	if _, err := svc.Get(context.Background(), admin, "user-1"); err != nil {
		t.Fatalf("admin get failed: %v", err)
	}
}

func TestUserService_Update_StatusAndRoleAreAdminOnly(t *testing.T) {
	svc, _ := newUserFixture(t, 1)
	self := domain.Identity{UserID: "user-1", Role: domain.RoleUser}

	name := "renamed"
	if _, err := svc.Update(context.Background(), self, "user-1", ports.UpdateUserInput{Name: &name}); err != nil {
		t.Fatalf("self rename failed: %v", err)
	}

	disabled := domain.StatusDisabled
	if _, err := svc.Update(context.Background(), self, "user-1", ports.UpdateUserInput{Status: &disabled}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("status change by non-admin must be forbidden, got %v", err)
	}

	roleID := "role-admin"
	if _, err := svc.Update(context.Background(), self, "user-1", ports.UpdateUserInput{RoleID: &roleID}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("role change by non-admin must be forbidden, got %v", err)
	}
}

func TestUserService_Update_RoleMustExist(t *testing.T) {
	svc, _ := newUserFixture(t, 1)
	admin := domain.Identity{UserID: "admin-1", Role: domain.RoleAdmin}

	bogus := "role-bogus"
	if _, err := svc.Update(context.Background(), admin, "user-1", ports.UpdateUserInput{RoleID: &bogus}); !errors.Is(err, domain.ErrRoleNotFound) {
		t.Fatalf("expected ErrRoleNotFound, got %v", err)
	}

	valid := "role-admin"
	updated, err := svc.Update(context.Background(), admin, "user-1", ports.UpdateUserInput{RoleID: &valid})
	if err != nil {
		t.Fatalf("role change failed: %v", err)
	}
	if updated.RoleID != "role-admin" {
		t.Fatalf("role not applied: %s", updated.RoleID)
	}
}

func TestUserService_Delete_IsSoft(t *testing.T) {
	svc, users := newUserFixture(t, 2)
	admin := domain.Identity{UserID: "user-2", Role: domain.RoleAdmin}

	if err := svc.Delete(context.Background(), admin, "user-1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	// The row survives, only the status flips.
	stored, err := users.FindByID(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("deleted user must still be on record: %v", err)
	}
	if stored.Status != domain.StatusDisabled {
		t.Fatalf("expected disabled status, got %q", stored.Status)
	}
}

func TestUserService_Delete_SelfGuard(t *testing.T) {
	svc, _ := newUserFixture(t, 1)
	admin := domain.Identity{UserID: "user-1", Role: domain.RoleAdmin}

	if err := svc.Delete(context.Background(), admin, "user-1"); !errors.Is(err, domain.ErrSelfDelete) {
		t.Fatalf("expected ErrSelfDelete, got %v", err)
	}
}

func TestUserService_Delete_MissingUser(t *testing.T) {
	svc, _ := newUserFixture(t, 1)
	admin := domain.Identity{UserID: "admin-9", Role: domain.RoleAdmin}

	if err := svc.Delete(context.Background(), admin, "user-404"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
