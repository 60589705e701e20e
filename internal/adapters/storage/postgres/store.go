package postgres

import (
	"database/sql"

	"pet-adoption/internal/domain/adoptions"
	"pet-adoption/internal/domain/campaigns"
	"pet-adoption/internal/domain/donations"
	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/domain/users"
)

// Store agrupa los repos sobre un mismo pool.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Users() users.Repository         { return NewUsersRepo(s.db) }
func (s *Store) Pets() pets.Repository           { return NewPetsRepo(s.db) }
func (s *Store) Campaigns() campaigns.Repository { return NewCampaignsRepo(s.db) }
func (s *Store) Adoptions() adoptions.Repository { return NewAdoptionsRepo(s.db) }
func (s *Store) Donations() donations.Repository { return NewDonationsRepo(s.db) }
