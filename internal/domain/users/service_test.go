package users

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"pet-adoption/internal/middleware"
)

type testRepo struct {
	byEmail map[string]User
	seq     int
}

func newTestRepo() *testRepo {
	return &testRepo{byEmail: map[string]User{}}
}

func (r *testRepo) CreateIfAbsent(_ context.Context, u User) (User, bool, error) {
	if cur, ok := r.byEmail[u.Email]; ok {
		return cur, false, nil
	}
	r.seq++
	u.ID = fmt.Sprintf("u-%d", r.seq)
	r.byEmail[u.Email] = u
	return u, true, nil
}

func (r *testRepo) GetByEmail(_ context.Context, email string) (User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

func (r *testRepo) List(context.Context) ([]User, error) {
	out := make([]User, 0, len(r.byEmail))
	for _, u := range r.byEmail {
		out = append(out, u)
	}
	return out, nil
}

func (r *testRepo) SetStatus(_ context.Context, email, status string) (User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return User{}, ErrNotFound
	}
	u.Status = status
	r.byEmail[email] = u
	return u, nil
}

func (r *testRepo) SetRole(_ context.Context, email string, role Role) (User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return User{}, ErrNotFound
	}
	u.Role = role
	r.byEmail[email] = u
	return u, nil
}

func TestService_Save_CreatesWithUserRole(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	u, err := svc.Save(context.Background(), "ana@example.com", SaveInput{
		Email: "ana@example.com",
		Name:  " Ana ",
	})
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if u.Role != RoleUser {
		t.Fatalf("expected role user, got %q", u.Role)
	}
	if u.Name != "Ana" || !u.CreatedAt.Equal(now) {
		t.Fatalf("unexpected user %#v", u)
	}
}

func TestService_Save_ExistingOnlyUpdatesRequestedStatus(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)
	ctx := context.Background()

	if _, err := svc.Save(ctx, "ana@example.com", SaveInput{Name: "Ana"}); err != nil {
		t.Fatalf("first Save returned error: %v", err)
	}

	// Otros campos se ignoran si ya existe
	u, err := svc.Save(ctx, "ana@example.com", SaveInput{Name: "Changed", Status: "Verified"})
	if err != nil {
		t.Fatalf("second Save returned error: %v", err)
	}
	if u.Name != "Ana" || u.Status != "" {
		t.Fatalf("existing user must be returned untouched, got %#v", u)
	}

	u, err = svc.Save(ctx, "ana@example.com", SaveInput{Status: StatusRequested})
	if err != nil {
		t.Fatalf("third Save returned error: %v", err)
	}
	if u.Status != StatusRequested {
		t.Fatalf("expected status Requested, got %q", u.Status)
	}
	if len(repo.byEmail) != 1 {
		t.Fatalf("expected a single user row, got %d", len(repo.byEmail))
	}
}

func TestService_Save_RejectsOtherEmail(t *testing.T) {
	svc := NewService(newTestRepo())

	_, err := svc.Save(context.Background(), "ana@example.com", SaveInput{Email: "mallory@example.com"})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	_, err = svc.Save(context.Background(), "", SaveInput{})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestService_Save_NormalisesEmailCase(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)
	ctx := context.Background()

	u, err := svc.Save(ctx, "Ana@Example.com", SaveInput{Email: " ana@EXAMPLE.com "})
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if u.Email != "ana@example.com" {
		t.Fatalf("expected lowercased email, got %q", u.Email)
	}

	role, err := svc.RoleOf(ctx, "ANA@example.com")
	if err != nil || role != string(RoleUser) {
		t.Fatalf("expected role user for any spelling, got %q err=%v", role, err)
	}
}

func TestService_SetRole(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)
	ctx := context.Background()

	if _, err := svc.Save(ctx, "ana@example.com", SaveInput{}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	if _, err := svc.SetRole(ctx, "ana@example.com", Role("root")); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown role, got %v", err)
	}
	if _, err := svc.SetRole(ctx, "missing@example.com", RoleAdmin); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if _, err := svc.SetRole(ctx, "ana@example.com", RoleAdmin); err != nil {
		t.Fatalf("SetRole returned error: %v", err)
	}
	role, err := svc.RoleOf(ctx, "ana@example.com")
	if err != nil || role != string(RoleAdmin) {
		t.Fatalf("expected admin role, got %q err=%v", role, err)
	}
}

func TestRoleAdmin_MatchesGate(t *testing.T) {
	if string(RoleAdmin) != middleware.AdminRole {
		t.Fatalf("users.RoleAdmin (%q) and middleware.AdminRole (%q) diverged", RoleAdmin, middleware.AdminRole)
	}
}
