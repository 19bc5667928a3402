package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/usergate/usergate/internal/model"
)

// ErrUserNotFound is returned when no document matches the lookup criteria.
var ErrUserNotFound = errors.New("user not found")

// FindUserByIDAndMinAge performs a filtered point lookup: it returns the user
// with the given ID only if its age is strictly greater than minAge.
// A missing document and a document failing the age predicate are both
// reported as ErrUserNotFound.
func (r *Repository) FindUserByIDAndMinAge(ctx context.Context, id primitive.ObjectID, minAge int) (*model.User, error) {
	filter := bson.M{
		"_id": id,
		"age": bson.M{"$gt": minAge},
	}

	var user model.User
	err := r.users.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user by ID: %w", err)
	}

	return &user, nil
}

// CreateUser inserts a new user document. It is used by offline seeding only;
// the API never writes at request time.
func (r *Repository) CreateUser(ctx context.Context, user *model.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}

	if _, err := r.users.InsertOne(ctx, user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// DeleteAllUsers removes every document from the users collection.
// Used by seeding to make reruns idempotent.
func (r *Repository) DeleteAllUsers(ctx context.Context) error {
	if _, err := r.users.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("failed to delete users: %w", err)
	}
	return nil
}
