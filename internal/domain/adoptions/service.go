package adoptions

import (
	"context"
	"errors"
	"strings"
	"time"

	"pet-adoption/internal/domain/pets"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrPetNotFound  = errors.New("pet not found")
	ErrPetAdopted   = errors.New("pet already adopted")
)

// PetLookup es lo que el flujo de adopción necesita de pets.
type PetLookup interface {
	GetByID(ctx context.Context, id string) (pets.Pet, error)
	ListByOwner(ctx context.Context, ownerEmail string) ([]pets.Pet, error)
}

type Service struct {
	repo Repository
	pets PetLookup
	now  func() time.Time
}

func NewService(repo Repository, pets PetLookup) *Service {
	return &Service{
		repo: repo,
		pets: pets,
		now:  time.Now,
	}
}

type SubmitInput struct {
	PetID   string
	Name    string
	Phone   string
	Address string
}

func (s *Service) Submit(ctx context.Context, requesterEmail string, in SubmitInput) (Request, error) {
	requesterEmail = strings.TrimSpace(requesterEmail)
	petID := strings.TrimSpace(in.PetID)
	if requesterEmail == "" || petID == "" {
		return Request{}, ErrInvalidInput
	}

	now := s.now()
	req := Request{
		PetID:          petID,
		RequesterEmail: requesterEmail,
		Name:           strings.TrimSpace(in.Name),
		Phone:          strings.TrimSpace(in.Phone),
		Address:        strings.TrimSpace(in.Address),
		CreatedAt:      now,
	}

	id, err := s.repo.Submit(ctx, req, now)
	if err != nil {
		return Request{}, err
	}
	req.ID = id
	return req, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Request, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Request{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// ListForOwner devuelve las solicitudes sobre mascotas publicadas por ownerEmail.
func (s *Service) ListForOwner(ctx context.Context, ownerEmail string) ([]Request, error) {
	owned, err := s.pets.ListByOwner(ctx, ownerEmail)
	if err != nil {
		return nil, err
	}
	if len(owned) == 0 {
		return []Request{}, nil
	}

	ids := make([]string, 0, len(owned))
	for _, p := range owned {
		ids = append(ids, p.ID)
	}
	return s.repo.ListByPetIDs(ctx, ids)
}

// PetOwner resuelve el dueño de la mascota de una solicitud.
func (s *Service) PetOwner(ctx context.Context, req Request) (string, error) {
	p, err := s.pets.GetByID(ctx, req.PetID)
	if err != nil {
		if errors.Is(err, pets.ErrNotFound) {
			return "", ErrPetNotFound
		}
		return "", err
	}
	return p.OwnerEmail, nil
}

func (s *Service) Accept(ctx context.Context, id string) (Request, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Request{}, ErrNotFound
	}
	return s.repo.Accept(ctx, id, s.now())
}

func (s *Service) Reject(ctx context.Context, id string) (Request, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Request{}, ErrNotFound
	}
	return s.repo.Reject(ctx, id, s.now())
}
