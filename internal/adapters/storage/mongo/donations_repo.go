package mongo

import (
	"context"
	"errors"

	"pet-adoption/internal/domain/donations"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	driver "go.mongodb.org/mongo-driver/mongo"
)

type donationRepo struct {
	coll *driver.Collection
}

func (r *donationRepo) Create(ctx context.Context, dn donations.Donation) (string, error) {
	d := fromDonation(dn)
	d.ID = primitive.NewObjectID()
	if _, err := r.coll.InsertOne(ctx, d); err != nil {
		return "", err
	}
	return d.ID.Hex(), nil
}

func (r *donationRepo) GetByID(ctx context.Context, id string) (donations.Donation, error) {
	oid, ok := objectID(id)
	if !ok {
		return donations.Donation{}, donations.ErrNotFound
	}

	var d donationDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
		if errors.Is(err, driver.ErrNoDocuments) {
			return donations.Donation{}, donations.ErrNotFound
		}
		return donations.Donation{}, err
	}
	return d.toDonation(), nil
}

func (r *donationRepo) Delete(ctx context.Context, id string) error {
	oid, ok := objectID(id)
	if !ok {
		return donations.ErrNotFound
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return donations.ErrNotFound
	}
	return nil
}

func (r *donationRepo) ListByDonor(ctx context.Context, donorEmail string) ([]donations.Donation, error) {
	return r.list(ctx, bson.M{"email": donorEmail})
}

func (r *donationRepo) ListByCampaign(ctx context.Context, campaignID string) ([]donations.Donation, error) {
	return r.list(ctx, bson.M{"campaignId": campaignID})
}

func (r *donationRepo) list(ctx context.Context, filter bson.M) ([]donations.Donation, error) {
	cur, err := r.coll.Find(ctx, filter, sortByCreated)
	if err != nil {
		return nil, err
	}
	var docs []donationDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	out := make([]donations.Donation, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDonation())
	}
	return out, nil
}
