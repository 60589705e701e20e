package adoptions

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"pet-adoption/internal/domain/pets"
)

// testRepo simula el store: guarda solicitudes y el estado de cada mascota.
type testRepo struct {
	pets     map[string]pets.Pet
	requests map[string]Request
	seq      int
}

func newTestRepo(ps ...pets.Pet) *testRepo {
	r := &testRepo{pets: map[string]pets.Pet{}, requests: map[string]Request{}}
	for _, p := range ps {
		r.pets[p.ID] = p
	}
	return r
}

func (r *testRepo) Submit(_ context.Context, req Request, at time.Time) (string, error) {
	p, ok := r.pets[req.PetID]
	if !ok {
		return "", ErrPetNotFound
	}
	if p.Status == pets.StatusAdopted {
		return "", ErrPetAdopted
	}
	r.seq++
	req.ID = fmt.Sprintf("r-%d", r.seq)
	r.requests[req.ID] = req
	p.Status = pets.StatusRequested
	p.UpdatedAt = at
	r.pets[p.ID] = p
	return req.ID, nil
}

func (r *testRepo) GetByID(_ context.Context, id string) (Request, error) {
	req, ok := r.requests[id]
	if !ok {
		return Request{}, ErrNotFound
	}
	return req, nil
}

func (r *testRepo) ListByPetIDs(_ context.Context, ids []string) ([]Request, error) {
	want := map[string]bool{}
	for _, id := range ids {
		want[id] = true
	}
	out := make([]Request, 0)
	for _, req := range r.requests {
		if want[req.PetID] {
			out = append(out, req)
		}
	}
	return out, nil
}

func (r *testRepo) Accept(_ context.Context, id string, at time.Time) (Request, error) {
	req, ok := r.requests[id]
	if !ok {
		return Request{}, ErrNotFound
	}
	p := r.pets[req.PetID]
	p.Status = pets.StatusAdopted
	p.UpdatedAt = at
	r.pets[p.ID] = p
	for k, other := range r.requests {
		if other.PetID == req.PetID {
			delete(r.requests, k)
		}
	}
	return req, nil
}

func (r *testRepo) Reject(_ context.Context, id string, at time.Time) (Request, error) {
	req, ok := r.requests[id]
	if !ok {
		return Request{}, ErrNotFound
	}
	delete(r.requests, id)
	p := r.pets[req.PetID]
	p.Status = pets.StatusNotAdopted
	p.UpdatedAt = at
	r.pets[p.ID] = p
	return req, nil
}

// petsView expone el mismo mapa como PetLookup.
type petsView struct{ repo *testRepo }

func (v petsView) GetByID(_ context.Context, id string) (pets.Pet, error) {
	p, ok := v.repo.pets[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return p, nil
}

func (v petsView) ListByOwner(_ context.Context, email string) ([]pets.Pet, error) {
	out := make([]pets.Pet, 0)
	for _, p := range v.repo.pets {
		if p.OwnerEmail == email {
			out = append(out, p)
		}
	}
	return out, nil
}

func newTestService(ps ...pets.Pet) (*Service, *testRepo) {
	repo := newTestRepo(ps...)
	svc := NewService(repo, petsView{repo: repo})
	svc.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	return svc, repo
}

func TestService_SubmitMarksPetRequested(t *testing.T) {
	svc, repo := newTestService(pets.Pet{ID: "p1", OwnerEmail: "owner@example.com", Status: pets.StatusNotAdopted})

	req, err := svc.Submit(context.Background(), "ana@example.com", SubmitInput{PetID: "p1", Name: " Ana ", Phone: "123"})
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if req.ID == "" || req.Name != "Ana" || req.RequesterEmail != "ana@example.com" {
		t.Fatalf("unexpected request %#v", req)
	}
	if got := repo.pets["p1"].Status; got != pets.StatusRequested {
		t.Fatalf("expected pet requested, got %q", got)
	}

	owner, err := svc.PetOwner(context.Background(), req)
	if err != nil || owner != "owner@example.com" {
		t.Fatalf("PetOwner = %q, %v", owner, err)
	}
}

func TestService_SubmitErrors(t *testing.T) {
	svc, _ := newTestService(pets.Pet{ID: "done", Status: pets.StatusAdopted})
	ctx := context.Background()

	if _, err := svc.Submit(ctx, "ana@example.com", SubmitInput{}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Submit(ctx, "ana@example.com", SubmitInput{PetID: "missing"}); !errors.Is(err, ErrPetNotFound) {
		t.Fatalf("expected ErrPetNotFound, got %v", err)
	}
	if _, err := svc.Submit(ctx, "ana@example.com", SubmitInput{PetID: "done"}); !errors.Is(err, ErrPetAdopted) {
		t.Fatalf("expected ErrPetAdopted, got %v", err)
	}
}

func TestService_AcceptClearsAllRequests(t *testing.T) {
	svc, repo := newTestService(
		pets.Pet{ID: "p1", OwnerEmail: "owner@example.com"},
		pets.Pet{ID: "p2", OwnerEmail: "owner@example.com"},
	)
	ctx := context.Background()

	first, _ := svc.Submit(ctx, "ana@example.com", SubmitInput{PetID: "p1"})
	if _, err := svc.Submit(ctx, "bob@example.com", SubmitInput{PetID: "p1"}); err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if _, err := svc.Submit(ctx, "bob@example.com", SubmitInput{PetID: "p2"}); err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}

	if _, err := svc.Accept(ctx, first.ID); err != nil {
		t.Fatalf("Accept returned error: %v", err)
	}
	if got := repo.pets["p1"].Status; got != pets.StatusAdopted {
		t.Fatalf("expected pet adopted, got %q", got)
	}

	left, err := svc.ListForOwner(ctx, "owner@example.com")
	if err != nil {
		t.Fatalf("ListForOwner returned error: %v", err)
	}
	if len(left) != 1 || left[0].PetID != "p2" {
		t.Fatalf("expected only the p2 request to remain, got %#v", left)
	}
}

func TestService_RejectResetsPet(t *testing.T) {
	svc, repo := newTestService(pets.Pet{ID: "p1", OwnerEmail: "owner@example.com"})
	ctx := context.Background()

	req, _ := svc.Submit(ctx, "ana@example.com", SubmitInput{PetID: "p1"})
	if _, err := svc.Reject(ctx, req.ID); err != nil {
		t.Fatalf("Reject returned error: %v", err)
	}
	if got := repo.pets["p1"].Status; got != pets.StatusNotAdopted {
		t.Fatalf("expected pet not_adopted, got %q", got)
	}
	if _, err := svc.Reject(ctx, req.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second reject, got %v", err)
	}
}

func TestService_ListForOwnerWithoutPets(t *testing.T) {
	svc, _ := newTestService()
	items, err := svc.ListForOwner(context.Background(), "nobody@example.com")
	if err != nil {
		t.Fatalf("ListForOwner returned error: %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", items)
	}
}
