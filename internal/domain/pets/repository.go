package pets

import (
	"context"
	"time"
)

type Repository interface {
	// Create guarda p y devuelve el id asignado por el store.
	Create(ctx context.Context, p Pet) (string, error)
	GetByID(ctx context.Context, id string) (Pet, error)
	Update(ctx context.Context, p Pet) error
	SetStatus(ctx context.Context, id string, status AdoptionStatus, at time.Time) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ListFilter) ([]Pet, error)
}

// ListFilter: campos vacíos = sin filtro.
type ListFilter struct {
	OwnerEmail string
	Status     AdoptionStatus
}
