package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"ripple/internal/core/user"
	userPort "ripple/internal/ports/user"
)

// UserRepositoryMongo implements UserRepository on a mongo collection.
type UserRepositoryMongo struct {
	coll *mongo.Collection
}

func NewUserRepositoryMongo(coll *mongo.Collection) *UserRepositoryMongo {
	return &UserRepositoryMongo{coll: coll}
}

func (repo *UserRepositoryMongo) Create(ctx context.Context, u *user.User) (*user.User, error) {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	if _, err := repo.coll.InsertOne(ctx, u); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, userPort.ErrUsernameTaken
		}
		return nil, fmt.Errorf("inserting user: %w", err)
	}
	return u, nil
}

func (repo *UserRepositoryMongo) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	var u user.User
	if err := repo.coll.FindOne(ctx, bson.M{"username": username}).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, userPort.ErrUserNotFound
		}
		return nil, fmt.Errorf("finding user %s: %w", username, err)
	}
	return &u, nil
}

func (repo *UserRepositoryMongo) FindByID(ctx context.Context, id string) (*user.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, userPort.ErrUserNotFound
	}
	var u user.User
	if err := repo.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, userPort.ErrUserNotFound
		}
		return nil, fmt.Errorf("finding user %s: %w", id, err)
	}
	return &u, nil
}
