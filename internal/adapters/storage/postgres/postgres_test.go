package postgres

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"pet-adoption/internal/domain/adoptions"
	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/domain/users"
)

// Requiere una base real: DB_TEST_DSN=postgres://... go test ./...
func TestPostgres_Workflow(t *testing.T) {
	dsn := os.Getenv("DB_TEST_DSN")
	if dsn == "" {
		t.Skip("DB_TEST_DSN not set")
	}
	ctx := context.Background()

	db, err := Open(ctx, dsn)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := EnsureSchema(ctx, db); err != nil {
		t.Fatalf("EnsureSchema: %v", err)
	}

	now := time.Now().UTC().Truncate(time.Millisecond)
	email := "pg-" + newID() + "@example.com"

	usersRepo := NewUsersRepo(db)
	if _, created, err := usersRepo.CreateIfAbsent(ctx, users.User{Email: email, Role: users.RoleUser, CreatedAt: now}); err != nil || !created {
		t.Fatalf("first CreateIfAbsent = %v, %v", created, err)
	}
	if _, created, err := usersRepo.CreateIfAbsent(ctx, users.User{Email: email, Role: users.RoleAdmin, CreatedAt: now}); err != nil || created {
		t.Fatalf("second CreateIfAbsent = %v, %v", created, err)
	}

	petsRepo := NewPetsRepo(db)
	petID, err := petsRepo.Create(ctx, pets.Pet{OwnerEmail: email, Name: "Milo", Status: pets.StatusNotAdopted, CreatedAt: now, UpdatedAt: now})
	if err != nil {
		t.Fatalf("Create pet: %v", err)
	}
	t.Cleanup(func() { _ = petsRepo.Delete(ctx, petID) })

	repo := NewAdoptionsRepo(db)
	reqID, err := repo.Submit(ctx, adoptions.Request{PetID: petID, RequesterEmail: "a@example.com", CreatedAt: now}, now)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if _, err := repo.Accept(ctx, reqID, now); err != nil {
		t.Fatalf("Accept: %v", err)
	}

	p, err := petsRepo.GetByID(ctx, petID)
	if err != nil || p.Status != pets.StatusAdopted {
		t.Fatalf("expected adopted pet, got %#v, %v", p, err)
	}
	if _, err := repo.Submit(ctx, adoptions.Request{PetID: petID, CreatedAt: now}, now); !errors.Is(err, adoptions.ErrPetAdopted) {
		t.Fatalf("expected ErrPetAdopted, got %v", err)
	}
	if _, err := repo.GetByID(ctx, reqID); !errors.Is(err, adoptions.ErrNotFound) {
		t.Fatalf("expected request deleted, got %v", err)
	}
}
