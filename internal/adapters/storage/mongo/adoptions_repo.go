package mongo

import (
	"context"
	"errors"
	"time"

	"pet-adoption/internal/domain/adoptions"
	"pet-adoption/internal/domain/pets"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	driver "go.mongodb.org/mongo-driver/mongo"
)

// adoptionRepo escribe en "adopt" y "pets" dentro de Store.atomic. Sin
// transacciones el orden de las escrituras deja un estado válido si la
// segunda falla: primero el cambio condicional sobre la mascota.
type adoptionRepo struct {
	store    *Store
	pets     *driver.Collection
	requests *driver.Collection
}

func (r *adoptionRepo) Submit(ctx context.Context, req adoptions.Request, at time.Time) (string, error) {
	petOID, ok := objectID(req.PetID)
	if !ok {
		return "", adoptions.ErrPetNotFound
	}

	d := fromRequest(req)
	d.ID = primitive.NewObjectID()

	err := r.store.atomic(ctx, func(ctx context.Context) error {
		res, err := r.pets.UpdateOne(ctx,
			bson.M{"_id": petOID, "adopted": bson.M{"$nin": statusValues(pets.StatusAdopted)}},
			bson.M{"$set": bson.M{"adopted": string(pets.StatusRequested), "updatedAt": at}},
		)
		if err != nil {
			return err
		}
		if res.MatchedCount == 0 {
			return r.whyNotMatched(ctx, petOID)
		}

		_, err = r.requests.InsertOne(ctx, d)
		return err
	})
	if err != nil {
		return "", err
	}
	return d.ID.Hex(), nil
}

// whyNotMatched distingue mascota inexistente de mascota ya adoptada.
func (r *adoptionRepo) whyNotMatched(ctx context.Context, petOID primitive.ObjectID) error {
	n, err := r.pets.CountDocuments(ctx, bson.M{"_id": petOID})
	if err != nil {
		return err
	}
	if n == 0 {
		return adoptions.ErrPetNotFound
	}
	return adoptions.ErrPetAdopted
}

func (r *adoptionRepo) GetByID(ctx context.Context, id string) (adoptions.Request, error) {
	oid, ok := objectID(id)
	if !ok {
		return adoptions.Request{}, adoptions.ErrNotFound
	}

	var d requestDoc
	if err := r.requests.FindOne(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
		if errors.Is(err, driver.ErrNoDocuments) {
			return adoptions.Request{}, adoptions.ErrNotFound
		}
		return adoptions.Request{}, err
	}
	return d.toRequest(), nil
}

func (r *adoptionRepo) ListByPetIDs(ctx context.Context, petIDs []string) ([]adoptions.Request, error) {
	out := make([]adoptions.Request, 0)
	if len(petIDs) == 0 {
		return out, nil
	}

	cur, err := r.requests.Find(ctx, bson.M{"petId": bson.M{"$in": petIDs}}, sortByCreated)
	if err != nil {
		return nil, err
	}
	var docs []requestDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	for _, d := range docs {
		out = append(out, d.toRequest())
	}
	return out, nil
}

func (r *adoptionRepo) Accept(ctx context.Context, id string, at time.Time) (adoptions.Request, error) {
	oid, ok := objectID(id)
	if !ok {
		return adoptions.Request{}, adoptions.ErrNotFound
	}

	var out adoptions.Request
	err := r.store.atomic(ctx, func(ctx context.Context) error {
		var d requestDoc
		if err := r.requests.FindOne(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
			if errors.Is(err, driver.ErrNoDocuments) {
				return adoptions.ErrNotFound
			}
			return err
		}

		petOID, ok := objectID(d.PetID)
		if !ok {
			return adoptions.ErrPetNotFound
		}
		if err := setPetStatus(ctx, r.pets, bson.M{"_id": petOID}, pets.StatusAdopted, at); err != nil {
			if errors.Is(err, pets.ErrNotFound) {
				return adoptions.ErrPetNotFound
			}
			return err
		}

		if _, err := r.requests.DeleteMany(ctx, bson.M{"petId": d.PetID}); err != nil {
			return err
		}
		out = d.toRequest()
		return nil
	})
	return out, err
}

func (r *adoptionRepo) Reject(ctx context.Context, id string, at time.Time) (adoptions.Request, error) {
	oid, ok := objectID(id)
	if !ok {
		return adoptions.Request{}, adoptions.ErrNotFound
	}

	var out adoptions.Request
	err := r.store.atomic(ctx, func(ctx context.Context) error {
		var d requestDoc
		if err := r.requests.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
			if errors.Is(err, driver.ErrNoDocuments) {
				return adoptions.ErrNotFound
			}
			return err
		}

		petOID, ok := objectID(d.PetID)
		if !ok {
			return adoptions.ErrPetNotFound
		}
		if err := setPetStatus(ctx, r.pets, bson.M{"_id": petOID}, pets.StatusNotAdopted, at); err != nil {
			if errors.Is(err, pets.ErrNotFound) {
				return adoptions.ErrPetNotFound
			}
			return err
		}
		out = d.toRequest()
		return nil
	})
	return out, err
}
