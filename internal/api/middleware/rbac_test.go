package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/devnews/devnews-api/internal/core/domain"
)

func runRBAC(t *testing.T, identity *domain.Identity, allowed ...string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if identity != nil {
		c.Set(ContextIdentity, *identity)
	}

	called := false
	handler := RBAC(allowed...)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, called
}

func TestRBAC_AllowedRole(t *testing.T) {
	rec, called := runRBAC(t, &domain.Identity{UserID: "user-1", Role: domain.RoleAdmin}, domain.RoleAdmin)
	if !called {
		t.Fatalf("next should run for an allowed role")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRBAC_ForbiddenRole(t *testing.T) {
	rec, called := runRBAC(t, &domain.Identity{UserID: "user-1", Role: domain.RoleUser}, domain.RoleAdmin)
	if called {
		t.Fatalf("next must not run")
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRBAC_MissingIdentity(t *testing.T) {
	rec, called := runRBAC(t, nil, domain.RoleAdmin)
	if called {
		t.Fatalf("next must not run")
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}
