package users

import (
	"context"
	"errors"
	"strings"
	"time"

	"pet-adoption/internal/ports/auth"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type SaveInput struct {
	Email    string
	Name     string
	PhotoURL string
	Status   string
}

// Save da de alta al usuario del token o, si ya existe, sólo actualiza
// status cuando llega "Requested". El rol nunca se toma del body.
func (s *Service) Save(ctx context.Context, callerEmail string, in SaveInput) (User, error) {
	callerEmail = auth.NormalizeEmail(callerEmail)
	email := auth.NormalizeEmail(in.Email)
	if email == "" {
		email = callerEmail
	}
	if email == "" {
		return User{}, ErrInvalidInput
	}
	if email != callerEmail {
		return User{}, ErrForbidden
	}

	status := strings.TrimSpace(in.Status)

	u, created, err := s.repo.CreateIfAbsent(ctx, User{
		Email:     email,
		Name:      strings.TrimSpace(in.Name),
		PhotoURL:  strings.TrimSpace(in.PhotoURL),
		Role:      RoleUser,
		Status:    status,
		CreatedAt: s.now(),
	})
	if err != nil {
		return User{}, err
	}
	if created {
		return u, nil
	}

	if status == StatusRequested && u.Status != StatusRequested {
		return s.repo.SetStatus(ctx, u.Email, StatusRequested)
	}
	return u, nil
}

func (s *Service) GetByEmail(ctx context.Context, email string) (User, error) {
	email = auth.NormalizeEmail(email)
	if email == "" {
		return User{}, ErrNotFound
	}
	return s.repo.GetByEmail(ctx, email)
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

func (s *Service) SetRole(ctx context.Context, email string, role Role) (User, error) {
	email = auth.NormalizeEmail(email)
	if email == "" || !role.Valid() {
		return User{}, ErrInvalidInput
	}
	return s.repo.SetRole(ctx, email, role)
}

// RoleOf alimenta el Role Gate (middleware.RoleLookup).
func (s *Service) RoleOf(ctx context.Context, email string) (string, error) {
	u, err := s.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	return string(u.Role), nil
}
