package adoptions

import "time"

// Request es una solicitud de adopción sobre una mascota.
// Vive hasta que el dueño la acepta o la rechaza.
type Request struct {
	ID    string
	PetID string

	RequesterEmail string
	Name           string
	Phone          string
	Address        string

	CreatedAt time.Time
}
