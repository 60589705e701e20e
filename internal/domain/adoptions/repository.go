package adoptions

import (
	"context"
	"time"
)

// Repository agrupa en una sola operación las dos escrituras de cada
// transición (request + estado de la mascota). Cada adapter la hace atómica.
type Repository interface {
	// Submit inserta req y pasa la mascota a requested.
	// ErrPetNotFound si la mascota no existe, ErrPetAdopted si ya fue adoptada.
	Submit(ctx context.Context, req Request, at time.Time) (string, error)
	GetByID(ctx context.Context, id string) (Request, error)
	ListByPetIDs(ctx context.Context, petIDs []string) ([]Request, error)

	// Accept marca la mascota adopted y borra todas sus solicitudes.
	Accept(ctx context.Context, id string, at time.Time) (Request, error)
	// Reject borra sólo esta solicitud y vuelve la mascota a not_adopted.
	Reject(ctx context.Context, id string, at time.Time) (Request, error)
}
