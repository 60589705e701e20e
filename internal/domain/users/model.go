package users

import "time"

// Role es el nivel de permisos guardado en el registro del usuario.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// StatusRequested marca a un usuario que pidió permisos extra.
const StatusRequested = "Requested"

type User struct {
	ID    string
	Email string // clave natural

	Name     string
	PhotoURL string

	Role   Role
	Status string

	CreatedAt time.Time
}

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}
