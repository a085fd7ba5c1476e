package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/you/login-tut/internal/model"
)

const profilesCollection = "profiles"

type ProfileRepo struct {
	c *mongo.Collection
}

func NewProfileRepo(db *mongo.Database) *ProfileRepo {
	return &ProfileRepo{c: db.Collection(profilesCollection)}
}

// FindByUsername returns the profile for username, or model.ErrProfileNotFound.
func (r *ProfileRepo) FindByUsername(ctx context.Context, username string) (*model.Profile, error) {
	var p model.Profile
	err := r.c.FindOne(ctx, bson.M{"username": username}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, model.ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Upsert creates the profile for username on first write and overwrites
// email and phoneNumber afterwards. The photo field is only touched when a
// new path is supplied, so a data-only update keeps an earlier photo.
// A single upsert keeps lookup and write atomic; two racing creates resolve
// through the unique index rather than a preceding existence check.
func (r *ProfileRepo) Upsert(ctx context.Context, username, email, phoneNumber, photo string) error {
	set := bson.M{"email": email, "phoneNumber": phoneNumber}
	update := bson.M{"$set": set}
	if photo != "" {
		set["photo"] = photo
	} else {
		update["$setOnInsert"] = bson.M{"photo": ""}
	}

	_, err := r.c.UpdateOne(ctx,
		bson.M{"username": username},
		update,
		options.Update().SetUpsert(true),
	)
	if mongo.IsDuplicateKeyError(err) {
		return model.ErrProfileExists
	}
	return err
}

// Create inserts a new profile and fails with model.ErrProfileExists when the
// username is already taken.
func (r *ProfileRepo) Create(ctx context.Context, p *model.Profile) error {
	_, err := r.c.InsertOne(ctx, p)
	if mongo.IsDuplicateKeyError(err) {
		return model.ErrProfileExists
	}
	return err
}

// Update overwrites contact fields of an existing profile only; it never
// creates one. Photo is left alone unless a new path is supplied.
func (r *ProfileRepo) Update(ctx context.Context, username, email, phoneNumber, photo string) error {
	set := bson.M{"email": email, "phoneNumber": phoneNumber}
	if photo != "" {
		set["photo"] = photo
	}

	res, err := r.c.UpdateOne(ctx, bson.M{"username": username}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return model.ErrProfileNotFound
	}
	return nil
}
