// Package memory guarda todo en mapas detrás de un único mutex. Las
// transiciones de adopción tocan solicitudes y mascotas bajo el mismo lock.
package memory

import (
	"sync"

	"pet-adoption/internal/domain/adoptions"
	"pet-adoption/internal/domain/campaigns"
	"pet-adoption/internal/domain/donations"
	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/domain/users"

	"github.com/google/uuid"
)

type Store struct {
	mu sync.RWMutex

	users     map[string]users.User // por email
	pets      map[string]pets.Pet
	campaigns map[string]campaigns.Campaign
	requests  map[string]adoptions.Request
	donations map[string]donations.Donation

	newID func() string
}

func NewStore() *Store {
	return &Store{
		users:     make(map[string]users.User),
		pets:      make(map[string]pets.Pet),
		campaigns: make(map[string]campaigns.Campaign),
		requests:  make(map[string]adoptions.Request),
		donations: make(map[string]donations.Donation),
		newID:     uuid.NewString,
	}
}

func (s *Store) Users() users.Repository         { return &userRepo{s: s} }
func (s *Store) Pets() pets.Repository           { return &petRepo{s: s} }
func (s *Store) Campaigns() campaigns.Repository { return &campaignRepo{s: s} }
func (s *Store) Adoptions() adoptions.Repository { return &adoptionRepo{s: s} }
func (s *Store) Donations() donations.Repository { return &donationRepo{s: s} }
