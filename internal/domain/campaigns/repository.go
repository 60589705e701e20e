package campaigns

import "context"

type Repository interface {
	Create(ctx context.Context, c Campaign) (string, error)
	GetByID(ctx context.Context, id string) (Campaign, error)
	Update(ctx context.Context, c Campaign) error
	// TogglePaused invierte paused en una sola escritura y devuelve el nuevo valor.
	TogglePaused(ctx context.Context, id string) (bool, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, ownerEmail string) ([]Campaign, error)
}
