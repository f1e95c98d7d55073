package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/devnews/devnews-api/internal/api/middleware"
	"github.com/devnews/devnews-api/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware. Its
// absence on a protected route means the middleware did not run; treat that
// as an unauthenticated request rather than panicking.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	identity, ok := c.Get(middleware.ContextIdentity).(domain.Identity)
	if !ok || identity.UserID == "" {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return identity, nil
}
