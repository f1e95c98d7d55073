package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/devnews/devnews-api/internal/core/domain"
)

type stubAuthService struct {
	user *domain.User
	err  error

	forgotEmail string
	resetToken  string
}

func (s *stubAuthService) Register(context.Context, string, string, string) (*domain.User, string, error) {
	return s.user, "token-123", s.err
}

func (s *stubAuthService) Login(context.Context, string, string) (*domain.User, string, error) {
	return s.user, "token-123", s.err
}

func (s *stubAuthService) ForgotPassword(_ context.Context, email string) error {
	s.forgotEmail = email
	return s.err
}

func (s *stubAuthService) ResetPassword(_ context.Context, token, _ string) error {
	s.resetToken = token
	return s.err
}

func newJSONContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	svc := &stubAuthService{user: &domain.User{ID: "user-1", Email: "a@example.com", Name: "a"}}
	h := NewAuthHandler(svc)

	c, rec := newJSONContext(t, http.MethodPost, "/api/auth/register", `{"email":"a@example.com","password":"secret1","name":"a"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp struct {
		Status string `json:"status"`
		Data   struct {
			Token string       `json:"token"`
			User  *domain.User `json:"user"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != "success" || resp.Data.Token != "token-123" || resp.Data.User.ID != "user-1" {
		t.Fatalf("unexpected envelope: %s", rec.Body.String())
	}
}

func TestAuthHandler_Register_ValidationCollectsAllFields(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newJSONContext(t, http.MethodPost, "/api/auth/register", `{"email":"not-an-email","password":"x"}`)
	err := h.Register(c)
	if err == nil {
		t.Fatalf("expected a validation error")
	}

	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if len(ve.Fields) != 2 {
		t.Fatalf("expected both email and password violations, got %v", ve.Fields)
	}
}

func TestAuthHandler_Login_ErrorPassesThrough(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{err: domain.ErrInvalidCredentials})

	c, _ := newJSONContext(t, http.MethodPost, "/api/auth/login", `{"login":"a","password":"b"}`)
	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials to pass through, got %v", err)
	}
}

func TestAuthHandler_ResetPassword_UsesPathToken(t *testing.T) {
	svc := &stubAuthService{}
	h := NewAuthHandler(svc)

	c, rec := newJSONContext(t, http.MethodPost, "/api/auth/reset-password/tok-1", `{"password":"newpass"}`)
	c.SetParamNames("token")
	c.SetParamValues("tok-1")

	if err := h.ResetPassword(c); err != nil {
		t.Fatalf("reset failed: %v", err)
	}
	if svc.resetToken != "tok-1" {
		t.Fatalf("token not forwarded, got %q", svc.resetToken)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
