package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/devnews/devnews-api/internal/core/domain"
)

func render(t *testing.T, err error) (*httptest.ResponseRecorder, errorResponse) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error envelope: %v", err)
	}
	return rec, resp
}

func TestErrorHandler_DomainErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound},
		{"post not found", domain.ErrPostNotFound, http.StatusNotFound},
		{"comment not found", domain.ErrCommentNotFound, http.StatusNotFound},
		{"category not found", domain.ErrCategoryNotFound, http.StatusNotFound},
		{"file not found", domain.ErrFileNotFound, http.StatusNotFound},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"disabled user", domain.ErrUserDisabled, http.StatusUnauthorized},
		{"duplicate user", domain.ErrUserExists, http.StatusConflict},
		{"duplicate category", domain.ErrCategoryExists, http.StatusConflict},
		{"bad reset token", domain.ErrResetTokenInvalid, http.StatusBadRequest},
		{"unknown role", domain.ErrRoleNotFound, http.StatusBadRequest},
		{"self delete", domain.ErrSelfDelete, http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, resp := render(t, tc.err)
			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}
			if resp.Status != "error" || resp.Message == "" {
				t.Fatalf("bad envelope: %+v", resp)
			}
		})
	}
}

func TestErrorHandler_DisabledAndMissingUserShareMessage(t *testing.T) {
	_, resp := render(t, domain.ErrUserDisabled)
	if resp.Message != "user not found or disabled" {
		t.Fatalf("login failures must not reveal whether the account exists: %q", resp.Message)
	}
}

func TestErrorHandler_ValidationListsAllFields(t *testing.T) {
	rec, resp := render(t, domain.NewValidationError("email must be a valid email", "password must be at least 6 characters"))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if len(resp.Errors) != 2 {
		t.Fatalf("expected both field messages, got %v", resp.Errors)
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	rec, resp := render(t, echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header"))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if resp.Message != "missing authorization header" {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
}

func TestErrorHandler_UnknownErrorIsOpaque(t *testing.T) {
	rec, resp := render(t, errors.New("mongo: socket was unexpectedly closed"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if resp.Message != "internal server error" {
		t.Fatalf("internal details must not leak: %q", resp.Message)
	}
}
