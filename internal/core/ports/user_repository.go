package ports

import (
	"context"
	"time"

	"github.com/devnews/devnews-api/internal/core/domain"
)

// UserUpdate carries the mutable user fields. Nil means "leave unchanged".
// Status and RoleID are admin-only; the service layer enforces that.
type UserUpdate struct {
	Name   *string
	Status *domain.UserStatus
	RoleID *string
}

// UserRepository defines persistence operations for users. Find methods load
// the user's role alongside the user.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByName(ctx context.Context, name string) (*domain.User, error)
	// FindByResetToken matches only tokens that have not yet expired.
	FindByResetToken(ctx context.Context, token string) (*domain.User, error)
	Update(ctx context.Context, id string, update UserUpdate) (*domain.User, error)
	// SetResetToken stores a password-reset token and its expiry on the user.
	SetResetToken(ctx context.Context, id, token string, expires time.Time) error
	// ResetPassword replaces the password hash and clears any reset token.
	ResetPassword(ctx context.Context, id, passwordHash string) error
	// List returns a page of users (newest first) and the total count.
	List(ctx context.Context, page, limit int) ([]*domain.User, int64, error)
	Count(ctx context.Context) (int64, error)
	FindRecent(ctx context.Context, n int) ([]*domain.User, error)
}

// RoleRepository resolves the static role reference data.
type RoleRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Role, error)
	FindByName(ctx context.Context, name string) (*domain.Role, error)
	// EnsureDefaults creates the built-in roles when absent (get-or-create).
	EnsureDefaults(ctx context.Context) error
}
