package campaigns

import (
	"context"
	"errors"
	"strings"
	"time"

	"pet-adoption/internal/platform/money"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

const dateLayout = "2006-01-02"

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

type CreateInput struct {
	PetName          string
	PetPicture       string
	MaxAmount        float64
	LastDate         string // YYYY-MM-DD opcional
	ShortDescription string
	LongDescription  string
}

func (s *Service) Create(ctx context.Context, ownerEmail string, in CreateInput) (Campaign, error) {
	if strings.TrimSpace(ownerEmail) == "" || strings.TrimSpace(in.PetName) == "" {
		return Campaign{}, ErrInvalidInput
	}
	target, err := toCents(in.MaxAmount)
	if err != nil {
		return Campaign{}, err
	}
	last, err := parseDate(in.LastDate)
	if err != nil {
		return Campaign{}, err
	}

	now := s.now()
	c := Campaign{
		OwnerEmail:       strings.TrimSpace(ownerEmail),
		PetName:          strings.TrimSpace(in.PetName),
		PetPicture:       strings.TrimSpace(in.PetPicture),
		TargetCents:      target,
		LastDate:         last,
		ShortDescription: strings.TrimSpace(in.ShortDescription),
		LongDescription:  strings.TrimSpace(in.LongDescription),
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	id, err := s.repo.Create(ctx, c)
	if err != nil {
		return Campaign{}, err
	}
	c.ID = id
	return c, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Campaign, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Campaign{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// UpdateInput: mismos campos que editaba el front (nil = no tocar).
type UpdateInput struct {
	PetName          *string
	PetPicture       *string
	MaxAmount        *float64
	LastDate         *string
	ShortDescription *string
	LongDescription  *string
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Campaign, error) {
	c, err := s.GetByID(ctx, id)
	if err != nil {
		return Campaign{}, err
	}

	if in.PetName != nil {
		v := strings.TrimSpace(*in.PetName)
		if v == "" {
			return Campaign{}, ErrInvalidInput
		}
		c.PetName = v
	}
	if in.PetPicture != nil {
		c.PetPicture = strings.TrimSpace(*in.PetPicture)
	}
	if in.MaxAmount != nil {
		target, err := toCents(*in.MaxAmount)
		if err != nil {
			return Campaign{}, err
		}
		c.TargetCents = target
	}
	if in.LastDate != nil {
		last, err := parseDate(*in.LastDate)
		if err != nil {
			return Campaign{}, err
		}
		c.LastDate = last
	}
	if in.ShortDescription != nil {
		c.ShortDescription = strings.TrimSpace(*in.ShortDescription)
	}
	if in.LongDescription != nil {
		c.LongDescription = strings.TrimSpace(*in.LongDescription)
	}
	c.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, c); err != nil {
		return Campaign{}, err
	}
	return c, nil
}

func (s *Service) TogglePaused(ctx context.Context, id string) (bool, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return false, ErrNotFound
	}
	return s.repo.TogglePaused(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Campaign, error) {
	return s.repo.List(ctx, "")
}

func (s *Service) ListByOwner(ctx context.Context, ownerEmail string) ([]Campaign, error) {
	ownerEmail = strings.TrimSpace(ownerEmail)
	if ownerEmail == "" {
		return []Campaign{}, nil
	}
	return s.repo.List(ctx, ownerEmail)
}

func toCents(amount float64) (int64, error) {
	cents, err := money.ToCents(amount)
	if err != nil {
		return 0, ErrInvalidInput
	}
	return cents, nil
}

func parseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, ErrInvalidInput
	}
	return &t, nil
}
