package pets

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidInput = errors.New("invalid input")
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

type CreateInput struct {
	Name             string
	Age              int
	Category         string
	Location         string
	ImageURL         string
	ShortDescription string
	LongDescription  string
}

func (s *Service) Create(ctx context.Context, ownerEmail string, in CreateInput) (Pet, error) {
	if strings.TrimSpace(ownerEmail) == "" {
		return Pet{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Name) == "" {
		return Pet{}, ErrInvalidInput
	}
	if in.Age < 0 {
		return Pet{}, ErrInvalidInput
	}

	now := s.now()
	p := Pet{
		OwnerEmail:       strings.TrimSpace(ownerEmail),
		Name:             strings.TrimSpace(in.Name),
		Age:              in.Age,
		Category:         strings.TrimSpace(in.Category),
		Location:         strings.TrimSpace(in.Location),
		ImageURL:         strings.TrimSpace(in.ImageURL),
		ShortDescription: strings.TrimSpace(in.ShortDescription),
		LongDescription:  strings.TrimSpace(in.LongDescription),
		Status:           StatusNotAdopted,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	id, err := s.repo.Create(ctx, p)
	if err != nil {
		return Pet{}, err
	}
	p.ID = id
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Pet{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// UpdateInput: punteros, nil = no tocar. El status no se edita por acá.
type UpdateInput struct {
	Name             *string
	Age              *int
	Category         *string
	Location         *string
	ImageURL         *string
	ShortDescription *string
	LongDescription  *string
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Pet, error) {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return Pet{}, err
	}

	if in.Name != nil {
		v := strings.TrimSpace(*in.Name)
		if v == "" {
			return Pet{}, ErrInvalidInput
		}
		p.Name = v
	}
	if in.Age != nil {
		if *in.Age < 0 {
			return Pet{}, ErrInvalidInput
		}
		p.Age = *in.Age
	}
	if in.Category != nil {
		p.Category = strings.TrimSpace(*in.Category)
	}
	if in.Location != nil {
		p.Location = strings.TrimSpace(*in.Location)
	}
	if in.ImageURL != nil {
		p.ImageURL = strings.TrimSpace(*in.ImageURL)
	}
	if in.ShortDescription != nil {
		p.ShortDescription = strings.TrimSpace(*in.ShortDescription)
	}
	if in.LongDescription != nil {
		p.LongDescription = strings.TrimSpace(*in.LongDescription)
	}
	p.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

// SetStatus es el override manual de admin; el flujo normal pasa por adoptions.
func (s *Service) SetStatus(ctx context.Context, id string, status AdoptionStatus) (Pet, error) {
	if !status.Valid() {
		return Pet{}, ErrInvalidInput
	}
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return Pet{}, err
	}

	now := s.now()
	if err := s.repo.SetStatus(ctx, p.ID, status, now); err != nil {
		return Pet{}, err
	}
	p.Status = status
	p.UpdatedAt = now
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListAll(ctx context.Context) ([]Pet, error) {
	return s.repo.List(ctx, ListFilter{})
}

func (s *Service) ListAvailable(ctx context.Context) ([]Pet, error) {
	return s.repo.List(ctx, ListFilter{Status: StatusNotAdopted})
}

func (s *Service) ListByOwner(ctx context.Context, ownerEmail string) ([]Pet, error) {
	ownerEmail = strings.TrimSpace(ownerEmail)
	if ownerEmail == "" {
		return []Pet{}, nil
	}
	return s.repo.List(ctx, ListFilter{OwnerEmail: ownerEmail})
}
