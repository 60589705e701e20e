package mongo

import (
	"context"
	"fmt"

	"pet-adoption/internal/domain/pets"

	"go.mongodb.org/mongo-driver/bson"
)

// MigrateAdoptionStatus reescribe los valores legacy de "adopted"
// ("false", false, "request", true, "true", ausente) a la forma canónica.
// Idempotente; devuelve cuántos documentos cambió.
func (s *Store) MigrateAdoptionStatus(ctx context.Context) (int64, error) {
	coll := s.db.Collection(collPets)

	var total int64
	for _, status := range []pets.AdoptionStatus{pets.StatusNotAdopted, pets.StatusRequested, pets.StatusAdopted} {
		legacy := make([]interface{}, 0)
		for _, v := range statusValues(status) {
			if v == string(status) {
				continue
			}
			legacy = append(legacy, v)
		}

		res, err := coll.UpdateMany(ctx,
			bson.M{"adopted": bson.M{"$in": legacy}},
			bson.M{"$set": bson.M{"adopted": string(status)}},
		)
		if err != nil {
			return total, fmt.Errorf("mongo: migrate adopted=%s: %w", status, err)
		}
		total += res.ModifiedCount
	}
	return total, nil
}
