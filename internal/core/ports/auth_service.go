package ports

import (
	"context"

	"github.com/devnews/devnews-api/internal/core/domain"
)

// AuthService implements registration, login and the password-reset flow.
type AuthService interface {
	// Register creates a user with the default role and issues a session token.
	Register(ctx context.Context, email, password, name string) (*domain.User, string, error)
	// Login accepts an email address or a display name as the login identifier.
	Login(ctx context.Context, login, password string) (*domain.User, string, error)
	// ForgotPassword issues a reset token and emails a reset link. Mail
	// delivery is best-effort; a transport failure does not fail the request.
	ForgotPassword(ctx context.Context, email string) error
	// ResetPassword consumes an unexpired reset token and sets a new password.
	ResetPassword(ctx context.Context, token, password string) error
}

// TokenService issues and verifies signed session tokens binding a user id.
type TokenService interface {
	Issue(userID string) (string, error)
	// Verify returns the embedded user id. Any failure (malformed token, bad
	// signature, expiry) yields ok=false; callers treat them all the same.
	Verify(raw string) (userID string, ok bool)
}

// Mailer delivers outbound mail through an external transport.
type Mailer interface {
	Send(ctx context.Context, to, subject, html string) error
}
