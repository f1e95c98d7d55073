package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/devnews/devnews-api/internal/core/domain"
	"github.com/devnews/devnews-api/internal/core/ports"
)

// Context keys populated by the Auth middleware.
const (
	ContextIdentity = "identity"
	ContextUser     = "user"
)

// Auth validates the bearer token and loads the account behind it.
//
// Token problems (missing, malformed, bad signature, expired) are 401.
// A valid token whose account no longer exists or has been disabled is 403:
// the caller proved who they are, but that identity is no longer welcome.
func Auth(tokens ports.TokenService, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			userID, ok := tokens.Verify(parts[1])
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			user, err := users.FindByID(c.Request().Context(), userID)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					return echo.NewHTTPError(http.StatusForbidden, "user not found or disabled")
				}
				return err
			}
			if !user.Active() {
				return echo.NewHTTPError(http.StatusForbidden, "user not found or disabled")
			}

			c.Set(ContextUser, user)
			c.Set(ContextIdentity, domain.Identity{UserID: user.ID, Role: user.RoleName()})

			return next(c)
		}
	}
}
