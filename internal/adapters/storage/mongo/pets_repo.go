package mongo

import (
	"context"
	"errors"
	"time"

	"pet-adoption/internal/domain/pets"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	driver "go.mongodb.org/mongo-driver/mongo"
)

type petRepo struct {
	store    *Store
	coll     *driver.Collection
	requests *driver.Collection
}

func (r *petRepo) Create(ctx context.Context, p pets.Pet) (string, error) {
	d := fromPet(p)
	d.ID = primitive.NewObjectID()
	if _, err := r.coll.InsertOne(ctx, d); err != nil {
		return "", err
	}
	return d.ID.Hex(), nil
}

func (r *petRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	oid, ok := objectID(id)
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}

	var d petDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
		if errors.Is(err, driver.ErrNoDocuments) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, err
	}
	return d.toPet(), nil
}

// Update no toca userEmail ni adopted. Sin upsert.
func (r *petRepo) Update(ctx context.Context, p pets.Pet) error {
	oid, ok := objectID(p.ID)
	if !ok {
		return pets.ErrNotFound
	}
	d := fromPet(p)
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"petName":          d.PetName,
		"petAge":           d.PetAge,
		"petCategory":      d.PetCategory,
		"petLocation":      d.PetLocation,
		"petImage":         d.PetImage,
		"shortDescription": d.ShortDescription,
		"longDescription":  d.LongDescription,
		"updatedAt":        d.UpdatedAt,
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return pets.ErrNotFound
	}
	return nil
}

func (r *petRepo) SetStatus(ctx context.Context, id string, status pets.AdoptionStatus, at time.Time) error {
	oid, ok := objectID(id)
	if !ok {
		return pets.ErrNotFound
	}
	return setPetStatus(ctx, r.coll, bson.M{"_id": oid}, status, at)
}

func (r *petRepo) Delete(ctx context.Context, id string) error {
	oid, ok := objectID(id)
	if !ok {
		return pets.ErrNotFound
	}
	// mascota y sus solicitudes se van juntas
	return r.store.atomic(ctx, func(ctx context.Context) error {
		res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
		if err != nil {
			return err
		}
		if res.DeletedCount == 0 {
			return pets.ErrNotFound
		}
		_, err = r.requests.DeleteMany(ctx, bson.M{"petId": id})
		return err
	})
}

func (r *petRepo) List(ctx context.Context, f pets.ListFilter) ([]pets.Pet, error) {
	filter := bson.M{}
	if f.OwnerEmail != "" {
		filter["userEmail"] = f.OwnerEmail
	}
	if f.Status != "" {
		filter["adopted"] = bson.M{"$in": statusValues(f.Status)}
	}

	cur, err := r.coll.Find(ctx, filter, sortByCreated)
	if err != nil {
		return nil, err
	}
	var docs []petDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	out := make([]pets.Pet, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toPet())
	}
	return out, nil
}

func setPetStatus(ctx context.Context, coll *driver.Collection, filter bson.M, status pets.AdoptionStatus, at time.Time) error {
	res, err := coll.UpdateOne(ctx, filter, bson.M{"$set": bson.M{
		"adopted":   string(status),
		"updatedAt": at,
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return pets.ErrNotFound
	}
	return nil
}
