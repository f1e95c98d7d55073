package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/devnews/devnews-api/internal/core/domain"
	"github.com/devnews/devnews-api/internal/core/ports"
)

const resetTokenTTL = time.Hour

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// AuthService implements registration, login and the password-reset flow.
type AuthService struct {
	users   ports.UserRepository
	roles   ports.RoleRepository
	tokens  ports.TokenService
	mailer  ports.Mailer
	baseURL string
	logger  zerolog.Logger
}

func NewAuthService(users ports.UserRepository, roles ports.RoleRepository, tokens ports.TokenService, mailer ports.Mailer, baseURL string, logger zerolog.Logger) *AuthService {
	return &AuthService{
		users:   users,
		roles:   roles,
		tokens:  tokens,
		mailer:  mailer,
		baseURL: baseURL,
		logger:  logger,
	}
}

// Register creates a user with the default "user" role and issues a token.
func (s *AuthService) Register(ctx context.Context, email, password, name string) (*domain.User, string, error) {
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, "", domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, "", err
	}

	role, err := s.roles.FindByName(ctx, domain.RoleUser)
	if err != nil {
		return nil, "", fmt.Errorf("default role lookup: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		Status:       domain.StatusActive,
		RoleID:       role.ID,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(created.ID)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info().Str("user_id", created.ID).Str("email", created.Email).Msg("user registered")
	return created, token, nil
}

// Login accepts an email address or a display name as the identifier.
// Missing and disabled users are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, login, password string) (*domain.User, string, error) {
	var user *domain.User
	var err error
	if emailPattern.MatchString(login) {
		user, err = s.users.FindByEmail(ctx, login)
	} else {
		user, err = s.users.FindByName(ctx, login)
	}
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, "", domain.ErrUserDisabled
		}
		return nil, "", err
	}
	if !user.Active() {
		return nil, "", domain.ErrUserDisabled
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// ForgotPassword issues a reset token valid for one hour and emails a reset
// link. The mail send is best-effort: a transport failure is logged, not
// surfaced, so the token stays usable.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	token, err := randomToken()
	if err != nil {
		return err
	}
	expires := time.Now().UTC().Add(resetTokenTTL)

	if err := s.users.SetResetToken(ctx, user.ID, token, expires); err != nil {
		return err
	}

	resetURL := fmt.Sprintf("%s/reset-password/%s", s.baseURL, token)
	html := fmt.Sprintf(
		"<h1>Password reset requested</h1>"+
			"<p>You are receiving this because a password reset was requested for your account.</p>"+
			"<p>Follow the link below to choose a new password:</p>"+
			`<a href="%s">%s</a>`+
			"<p>If you did not request a reset, ignore this email.</p>",
		resetURL, resetURL,
	)

	if err := s.mailer.Send(ctx, user.Email, "Password reset request", html); err != nil {
		s.logger.Error().Err(err).Str("user_id", user.ID).Msg("reset email delivery failed")
	}

	return nil
}

// ResetPassword consumes an unexpired reset token. A consumed or expired
// token cannot authorize another reset.
func (s *AuthService) ResetPassword(ctx context.Context, token, password string) error {
	user, err := s.users.FindByResetToken(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrResetTokenInvalid
		}
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := s.users.ResetPassword(ctx, user.ID, string(hash)); err != nil {
		return err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("password reset")
	return nil
}

func randomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("reset token entropy: %w", err)
	}
	return hex.EncodeToString(b), nil
}
