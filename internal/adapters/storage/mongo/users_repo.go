package mongo

import (
	"context"
	"errors"

	"pet-adoption/internal/domain/users"

	"go.mongodb.org/mongo-driver/bson"
	driver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type userRepo struct {
	coll *driver.Collection
}

// CreateIfAbsent hace upsert con $setOnInsert: un registro existente nunca se pisa.
func (r *userRepo) CreateIfAbsent(ctx context.Context, u users.User) (users.User, bool, error) {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"email": u.Email},
		bson.M{"$setOnInsert": fromUser(u)},
		options.Update().SetUpsert(true),
	)
	if err != nil && !driver.IsDuplicateKeyError(err) {
		return users.User{}, false, err
	}

	stored, err := r.GetByEmail(ctx, u.Email)
	if err != nil {
		return users.User{}, false, err
	}
	created := res != nil && res.UpsertedCount == 1
	return stored, created, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	var d userDoc
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&d); err != nil {
		if errors.Is(err, driver.ErrNoDocuments) {
			return users.User{}, users.ErrNotFound
		}
		return users.User{}, err
	}
	return d.toUser(), nil
}

func (r *userRepo) List(ctx context.Context) ([]users.User, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "timeStamp", Value: 1}}))
	if err != nil {
		return nil, err
	}
	var docs []userDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	out := make([]users.User, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toUser())
	}
	return out, nil
}

func (r *userRepo) SetStatus(ctx context.Context, email, status string) (users.User, error) {
	return r.set(ctx, email, bson.M{"status": status})
}

func (r *userRepo) SetRole(ctx context.Context, email string, role users.Role) (users.User, error) {
	return r.set(ctx, email, bson.M{"role": string(role)})
}

func (r *userRepo) set(ctx context.Context, email string, fields bson.M) (users.User, error) {
	var d userDoc
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"email": email},
		bson.M{"$set": fields},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&d)
	if err != nil {
		if errors.Is(err, driver.ErrNoDocuments) {
			return users.User{}, users.ErrNotFound
		}
		return users.User{}, err
	}
	return d.toUser(), nil
}
