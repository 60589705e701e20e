// Package mongo guarda el dominio en MongoDB con los nombres de colección y
// de campo que ya usa la base productiva ("Petenica").
package mongo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pet-adoption/internal/domain/adoptions"
	"pet-adoption/internal/domain/campaigns"
	"pet-adoption/internal/domain/donations"
	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/domain/users"

	"go.mongodb.org/mongo-driver/bson"
	driver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	collUsers     = "users"
	collPets      = "pets"
	collCampaigns = "donations" // campañas; nombre heredado de la base productiva
	collRequests  = "adopt"
	collDonations = "donate"
)

// Open conecta y hace ping al primario.
func Open(ctx context.Context, uri string) (*driver.Client, error) {
	if strings.TrimSpace(uri) == "" {
		return nil, fmt.Errorf("mongo: empty uri")
	}

	client, err := driver.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo: connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo: ping: %w", err)
	}
	return client, nil
}

type Store struct {
	db           *driver.Database
	transactions bool
}

// NewStore: transactions=false para deployments standalone (sin replica set);
// las transiciones de adopción pasan a escrituras condicionales en orden.
func NewStore(db *driver.Database, transactions bool) *Store {
	return &Store{db: db, transactions: transactions}
}

func (s *Store) Users() users.Repository         { return &userRepo{coll: s.db.Collection(collUsers)} }
func (s *Store) Campaigns() campaigns.Repository { return &campaignRepo{coll: s.db.Collection(collCampaigns)} }
func (s *Store) Donations() donations.Repository { return &donationRepo{coll: s.db.Collection(collDonations)} }

func (s *Store) Pets() pets.Repository {
	return &petRepo{store: s, coll: s.db.Collection(collPets), requests: s.db.Collection(collRequests)}
}

func (s *Store) Adoptions() adoptions.Repository {
	return &adoptionRepo{
		store:    s,
		pets:     s.db.Collection(collPets),
		requests: s.db.Collection(collRequests),
	}
}

// EnsureIndexes crea los índices de los que dependen las escrituras
// condicionales (email único) y los listados.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	specs := []struct {
		coll  string
		model driver.IndexModel
	}{
		{collUsers, driver.IndexModel{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)}},
		{collPets, driver.IndexModel{Keys: bson.D{{Key: "userEmail", Value: 1}}}},
		{collPets, driver.IndexModel{Keys: bson.D{{Key: "adopted", Value: 1}}}},
		{collCampaigns, driver.IndexModel{Keys: bson.D{{Key: "userEmail", Value: 1}}}},
		{collRequests, driver.IndexModel{Keys: bson.D{{Key: "petId", Value: 1}}}},
		{collDonations, driver.IndexModel{Keys: bson.D{{Key: "campaignId", Value: 1}}}},
		{collDonations, driver.IndexModel{Keys: bson.D{{Key: "email", Value: 1}}}},
	}
	for _, sp := range specs {
		if _, err := s.db.Collection(sp.coll).Indexes().CreateOne(ctx, sp.model); err != nil {
			return fmt.Errorf("mongo: index on %s: %w", sp.coll, err)
		}
	}
	return nil
}

// atomic corre fn en una transacción de sesión si están habilitadas.
func (s *Store) atomic(ctx context.Context, fn func(ctx context.Context) error) error {
	if !s.transactions {
		return fn(ctx)
	}

	sess, err := s.db.Client().StartSession()
	if err != nil {
		return fmt.Errorf("mongo: start session: %w", err)
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc driver.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}

var sortByCreated = options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
