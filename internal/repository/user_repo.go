package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/you/login-tut/internal/model"
)

const usersCollection = "users"

type UserRepo struct {
	c *mongo.Collection
}

func NewUserRepo(db *mongo.Database) *UserRepo {
	return &UserRepo{c: db.Collection(usersCollection)}
}

// FindByName returns the credential record for name, or model.ErrUserNotFound.
func (r *UserRepo) FindByName(ctx context.Context, name string) (*model.User, error) {
	var u model.User
	err := r.c.FindOne(ctx, bson.M{"name": name}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, model.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new credential record. The unique index on name decides
// duplicates; a losing insert surfaces as model.ErrUserExists.
func (r *UserRepo) Create(ctx context.Context, name, passwordHash string) error {
	_, err := r.c.InsertOne(ctx, model.User{Name: name, Password: passwordHash})
	if mongo.IsDuplicateKeyError(err) {
		return model.ErrUserExists
	}
	return err
}
