// Package model defines domain entities for the application.
package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// User represents a user document in the "users" collection.
type User struct {
	ID    primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name  string             `json:"name" bson:"name"`
	Email string             `json:"email" bson:"email"`
	Age   int                `json:"age" bson:"age"`
}
