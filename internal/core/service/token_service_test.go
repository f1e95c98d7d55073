package service

import (
	"testing"
	"time"
)

func TestTokenService_IssueAndVerify(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Issue("user-1")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	userID, ok := svc.Verify(token)
	if !ok {
		t.Fatalf("expected token to verify")
	}
	if userID != "user-1" {
		t.Fatalf("expected subject user-1, got %q", userID)
	}
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a", time.Hour)
	verifier := NewTokenService("secret-b", time.Hour)

	token, err := issuer.Issue("user-1")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, ok := verifier.Verify(token); ok {
		t.Fatalf("token signed with another secret must not verify")
	}
}

func TestTokenService_Expired(t *testing.T) {
	svc := NewTokenService("secret", -time.Minute)
	// Negative TTL falls back to the default, so build one manually.
	svc.tokenTTL = -time.Minute

	token, err := svc.Issue("user-1")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, ok := svc.Verify(token); ok {
		t.Fatalf("expired token must not verify")
	}
}

func TestTokenService_Garbage(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)
	if _, ok := svc.Verify("not-a-token"); ok {
		t.Fatalf("malformed token must not verify")
	}
}
