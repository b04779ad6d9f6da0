// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents an account in the users collection.
//
// NOTE:
//   - Role grants are not embedded on User.
//     Use the role_assignments collection to discover a user's roles.
//   - Accounts created through the roster add flow get a generated
//     credential and are confirmed immediately; the new admin picks a
//     real password through the reset email.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string             `bson:"email" json:"email"`
	FullName     string             `bson:"full_name,omitempty" json:"full_name,omitempty"`
	PasswordHash string             `bson:"password_hash" json:"-"`
	Confirmed    bool               `bson:"confirmed" json:"confirmed"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
