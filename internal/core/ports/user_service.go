package ports

import (
	"context"

	"github.com/devnews/devnews-api/internal/core/domain"
)

// UpdateUserInput carries a user-profile update request. Status and RoleID
// require the admin role.
type UpdateUserInput struct {
	Name   *string
	Status *domain.UserStatus
	RoleID *string
}

// UserPage is one page of the admin user listing.
type UserPage struct {
	Users      []*domain.User
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// UserService defines user-management operations.
type UserService interface {
	List(ctx context.Context, page, limit int) (*UserPage, error)
	// Get is permitted for the user themselves or an admin.
	Get(ctx context.Context, identity domain.Identity, id string) (*domain.User, error)
	Update(ctx context.Context, identity domain.Identity, id string, input UpdateUserInput) (*domain.User, error)
	// Delete soft-deletes by disabling the account. Admins cannot target
	// their own account.
	Delete(ctx context.Context, identity domain.Identity, id string) error
}
