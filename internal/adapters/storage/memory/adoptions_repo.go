package memory

import (
	"context"
	"sort"
	"time"

	"pet-adoption/internal/domain/adoptions"
	"pet-adoption/internal/domain/pets"
)

type adoptionRepo struct{ s *Store }

func (r *adoptionRepo) Submit(ctx context.Context, req adoptions.Request, at time.Time) (string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.pets[req.PetID]
	if !ok {
		return "", adoptions.ErrPetNotFound
	}
	if p.Status == pets.StatusAdopted {
		return "", adoptions.ErrPetAdopted
	}

	req.ID = r.s.newID()
	r.s.requests[req.ID] = req
	if err := r.s.setPetStatusLocked(p.ID, pets.StatusRequested, at); err != nil {
		return "", err
	}
	return req.ID, nil
}

func (r *adoptionRepo) GetByID(ctx context.Context, id string) (adoptions.Request, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	req, ok := r.s.requests[id]
	if !ok {
		return adoptions.Request{}, adoptions.ErrNotFound
	}
	return req, nil
}

func (r *adoptionRepo) ListByPetIDs(ctx context.Context, petIDs []string) ([]adoptions.Request, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	want := make(map[string]struct{}, len(petIDs))
	for _, id := range petIDs {
		want[id] = struct{}{}
	}

	out := make([]adoptions.Request, 0)
	for _, req := range r.s.requests {
		if _, ok := want[req.PetID]; ok {
			out = append(out, req)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *adoptionRepo) Accept(ctx context.Context, id string, at time.Time) (adoptions.Request, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	req, ok := r.s.requests[id]
	if !ok {
		return adoptions.Request{}, adoptions.ErrNotFound
	}
	if err := r.s.setPetStatusLocked(req.PetID, pets.StatusAdopted, at); err != nil {
		return adoptions.Request{}, adoptions.ErrPetNotFound
	}
	for k, other := range r.s.requests {
		if other.PetID == req.PetID {
			delete(r.s.requests, k)
		}
	}
	return req, nil
}

func (r *adoptionRepo) Reject(ctx context.Context, id string, at time.Time) (adoptions.Request, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	req, ok := r.s.requests[id]
	if !ok {
		return adoptions.Request{}, adoptions.ErrNotFound
	}
	if err := r.s.setPetStatusLocked(req.PetID, pets.StatusNotAdopted, at); err != nil {
		return adoptions.Request{}, adoptions.ErrPetNotFound
	}
	delete(r.s.requests, id)
	return req, nil
}
