package memory

import (
	"context"
	"sort"
	"time"

	"pet-adoption/internal/domain/pets"
)

type petRepo struct{ s *Store }

func (r *petRepo) Create(ctx context.Context, p pets.Pet) (string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p.ID = r.s.newID()
	r.s.pets[p.ID] = p
	return p.ID, nil
}

func (r *petRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.pets[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return p, nil
}

// Update reemplaza los campos descriptivos; el estado de adopción se conserva.
func (r *petRepo) Update(ctx context.Context, p pets.Pet) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.pets[p.ID]
	if !ok {
		return pets.ErrNotFound
	}
	p.OwnerEmail = current.OwnerEmail
	p.Status = current.Status
	p.CreatedAt = current.CreatedAt
	r.s.pets[p.ID] = p
	return nil
}

func (r *petRepo) SetStatus(ctx context.Context, id string, status pets.AdoptionStatus, at time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return r.s.setPetStatusLocked(id, status, at)
}

func (r *petRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.pets[id]; !ok {
		return pets.ErrNotFound
	}
	delete(r.s.pets, id)
	// las solicitudes de una mascota borrada ya no tienen quién las decida
	for k, req := range r.s.requests {
		if req.PetID == id {
			delete(r.s.requests, k)
		}
	}
	return nil
}

func (r *petRepo) List(ctx context.Context, f pets.ListFilter) ([]pets.Pet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]pets.Pet, 0)
	for _, p := range r.s.pets {
		if f.OwnerEmail != "" && p.OwnerEmail != f.OwnerEmail {
			continue
		}
		if f.Status != "" && p.Status != f.Status {
			continue
		}
		out = append(out, p)
	}

	// Orden estable por created_at asc (solo para consistencia en dev)
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

// requiere s.mu tomado en escritura
func (s *Store) setPetStatusLocked(id string, status pets.AdoptionStatus, at time.Time) error {
	p, ok := s.pets[id]
	if !ok {
		return pets.ErrNotFound
	}
	p.Status = status
	p.UpdatedAt = at
	s.pets[id] = p
	return nil
}
