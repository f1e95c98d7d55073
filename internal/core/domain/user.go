package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// UserStatus is the explicit two-state account lifecycle. A disabled user is
// treated as non-existent for authentication purposes; rows are never removed.
type UserStatus string

const (
	StatusActive   UserStatus = "active"
	StatusDisabled UserStatus = "disabled"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrUserDisabled = errors.New("user disabled")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrRoleNotFound = errors.New("role not found")
var ErrResetTokenInvalid = errors.New("reset token invalid or expired")

// ErrSelfDelete guards admins from disabling their own account.
var ErrSelfDelete = errors.New("cannot delete the currently authenticated user")

// Role is static reference data referenced by users.
type Role struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// User models a registered account.
type User struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	Name         string     `json:"name"`
	PasswordHash string     `json:"-"`
	Status       UserStatus `json:"status"`
	RoleID       string     `json:"-"`
	Role         *Role      `json:"role,omitempty"`
	ResetToken   string     `json:"-"`
	ResetExpires time.Time  `json:"-"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Active reports whether the account may authenticate.
func (u *User) Active() bool {
	return u.Status == StatusActive
}

// RoleName returns the resolved role name, or "" when the role is not loaded.
func (u *User) RoleName() string {
	if u.Role == nil {
		return ""
	}
	return u.Role.Name
}

// UserSummary is the public author view embedded in posts and comments.
type UserSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// Summary strips a user down to its public author view.
func (u *User) Summary() *UserSummary {
	return &UserSummary{ID: u.ID, Name: u.Name, Email: u.Email}
}
