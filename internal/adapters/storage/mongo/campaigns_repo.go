package mongo

import (
	"context"
	"errors"

	"pet-adoption/internal/domain/campaigns"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	driver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type campaignRepo struct {
	coll *driver.Collection
}

func (r *campaignRepo) Create(ctx context.Context, c campaigns.Campaign) (string, error) {
	d := fromCampaign(c)
	d.ID = primitive.NewObjectID()
	if _, err := r.coll.InsertOne(ctx, d); err != nil {
		return "", err
	}
	return d.ID.Hex(), nil
}

func (r *campaignRepo) GetByID(ctx context.Context, id string) (campaigns.Campaign, error) {
	oid, ok := objectID(id)
	if !ok {
		return campaigns.Campaign{}, campaigns.ErrNotFound
	}

	var d campaignDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
		if errors.Is(err, driver.ErrNoDocuments) {
			return campaigns.Campaign{}, campaigns.ErrNotFound
		}
		return campaigns.Campaign{}, err
	}
	return d.toCampaign(), nil
}

// Update reemplaza los campos editables. A diferencia del endpoint viejo, no hace upsert.
func (r *campaignRepo) Update(ctx context.Context, c campaigns.Campaign) error {
	oid, ok := objectID(c.ID)
	if !ok {
		return campaigns.ErrNotFound
	}
	d := fromCampaign(c)
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"petName":           d.PetName,
		"petPicture":        d.PetPicture,
		"maxDonationAmount": d.MaxDonationAmount,
		"lastDate":          d.LastDate,
		"shortDescription":  d.ShortDescription,
		"longDescription":   d.LongDescription,
		"updatedAt":         d.UpdatedAt,
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return campaigns.ErrNotFound
	}
	return nil
}

// TogglePaused usa un update con pipeline para invertir el flag en el servidor.
func (r *campaignRepo) TogglePaused(ctx context.Context, id string) (bool, error) {
	oid, ok := objectID(id)
	if !ok {
		return false, campaigns.ErrNotFound
	}

	pipeline := driver.Pipeline{
		{{Key: "$set", Value: bson.D{{Key: "paused", Value: bson.D{{Key: "$not", Value: bson.A{"$paused"}}}}}}},
	}
	var d campaignDoc
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, pipeline,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&d)
	if err != nil {
		if errors.Is(err, driver.ErrNoDocuments) {
			return false, campaigns.ErrNotFound
		}
		return false, err
	}
	return d.Paused, nil
}

func (r *campaignRepo) Delete(ctx context.Context, id string) error {
	oid, ok := objectID(id)
	if !ok {
		return campaigns.ErrNotFound
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return campaigns.ErrNotFound
	}
	return nil
}

func (r *campaignRepo) List(ctx context.Context, ownerEmail string) ([]campaigns.Campaign, error) {
	filter := bson.M{}
	if ownerEmail != "" {
		filter["userEmail"] = ownerEmail
	}

	cur, err := r.coll.Find(ctx, filter, sortByCreated)
	if err != nil {
		return nil, err
	}
	var docs []campaignDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	out := make([]campaigns.Campaign, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toCampaign())
	}
	return out, nil
}
