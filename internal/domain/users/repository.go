package users

import "context"

type Repository interface {
	// CreateIfAbsent inserta u sólo si no existe otro usuario con el mismo email.
	// Devuelve el registro guardado y si fue creado ahora.
	CreateIfAbsent(ctx context.Context, u User) (User, bool, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	List(ctx context.Context) ([]User, error)
	SetStatus(ctx context.Context, email, status string) (User, error)
	SetRole(ctx context.Context, email string, role Role) (User, error)
}
