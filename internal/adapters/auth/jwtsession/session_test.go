package jwtsession

import (
	"context"
	"errors"
	"testing"
	"time"

	"pet-adoption/internal/ports/auth"
)

func TestManager_IssueVerify(t *testing.T) {
	m, err := New("secret", 0)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if m.Lifetime() != DefaultLifetime {
		t.Fatalf("expected default lifetime, got %s", m.Lifetime())
	}

	tok, err := m.Issue(auth.Claims{Email: " Ana@Example.com ", Name: "Ana"})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	c, err := m.Verify(context.Background(), tok)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if c.Email != "ana@example.com" || c.Name != "Ana" {
		t.Fatalf("unexpected claims %#v", c)
	}
}

func TestManager_RejectsOtherSecret(t *testing.T) {
	a, _ := New("secret-a", time.Hour)
	b, _ := New("secret-b", time.Hour)

	tok, err := a.Issue(auth.Claims{Email: "ana@example.com"})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if _, err := b.Verify(context.Background(), tok); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestManager_RejectsExpired(t *testing.T) {
	m, _ := New("secret", time.Hour)
	issuedAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return issuedAt }

	tok, err := m.Issue(auth.Claims{Email: "ana@example.com"})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	m.now = func() time.Time { return issuedAt.Add(2 * time.Hour) }
	if _, err := m.Verify(context.Background(), tok); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected expired token to be rejected, got %v", err)
	}
}

func TestManager_EmptyInputs(t *testing.T) {
	if _, err := New("  ", time.Hour); !errors.Is(err, ErrSecretRequired) {
		t.Fatalf("expected ErrSecretRequired, got %v", err)
	}

	m, _ := New("secret", time.Hour)
	if _, err := m.Verify(context.Background(), ""); !errors.Is(err, ErrTokenEmpty) {
		t.Fatalf("expected ErrTokenEmpty, got %v", err)
	}
	if _, err := m.Issue(auth.Claims{}); err == nil {
		t.Fatalf("expected error issuing token without email")
	}
}
