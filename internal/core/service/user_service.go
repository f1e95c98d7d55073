package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/devnews/devnews-api/internal/core/domain"
	"github.com/devnews/devnews-api/internal/core/ports"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// UserService implements user management. Deletion is always soft: the
// account is disabled, never removed.
type UserService struct {
	users  ports.UserRepository
	roles  ports.RoleRepository
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, roles ports.RoleRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, roles: roles, logger: logger}
}

func (s *UserService) List(ctx context.Context, page, limit int) (*ports.UserPage, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	users, total, err := s.users.List(ctx, page, limit)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &ports.UserPage{
		Users:      users,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

// Get is permitted for the target user themselves or an admin.
func (s *UserService) Get(ctx context.Context, identity domain.Identity, id string) (*domain.User, error) {
	if !domain.CanMutate(identity, id, true) {
		return nil, domain.ErrForbidden
	}
	return s.users.FindByID(ctx, id)
}

// Update lets a user rename themselves; status and role changes require the
// admin role and a role change is validated against existing roles.
func (s *UserService) Update(ctx context.Context, identity domain.Identity, id string, input ports.UpdateUserInput) (*domain.User, error) {
	if !domain.CanMutate(identity, id, true) {
		return nil, domain.ErrForbidden
	}
	if (input.Status != nil || input.RoleID != nil) && !identity.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	if _, err := s.users.FindByID(ctx, id); err != nil {
		return nil, err
	}

	if input.RoleID != nil {
		if _, err := s.roles.FindByID(ctx, *input.RoleID); err != nil {
			return nil, domain.ErrRoleNotFound
		}
	}

	return s.users.Update(ctx, id, ports.UserUpdate{
		Name:   input.Name,
		Status: input.Status,
		RoleID: input.RoleID,
	})
}

// Delete disables the account (soft delete). The row stays; a disabled user
// can no longer log in or authenticate requests.
func (s *UserService) Delete(ctx context.Context, identity domain.Identity, id string) error {
	if id == identity.UserID {
		return domain.ErrSelfDelete
	}

	if _, err := s.users.FindByID(ctx, id); err != nil {
		return err
	}

	disabled := domain.StatusDisabled
	if _, err := s.users.Update(ctx, id, ports.UserUpdate{Status: &disabled}); err != nil {
		return err
	}

	s.logger.Info().Str("user_id", id).Str("disabled_by", identity.UserID).Msg("user disabled")
	return nil
}
