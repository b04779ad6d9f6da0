// internal/domain/models/roleassignment.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role names allowed in role_assignments. The set is deliberately small;
// the site only distinguishes administrators from everyone else.
const (
	RoleAdmin = "admin"
)

// ValidRole reports whether name is one of the allowed role names.
func ValidRole(name string) bool {
	return name == RoleAdmin
}

// RoleAssignment records that a user holds a role.
//
// Rows are created by a grant and deleted by a revoke; they are never
// mutated in place. A unique compound index on (user_id, role) guarantees
// at most one active row per user per role even under concurrent grants.
type RoleAssignment struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID primitive.ObjectID `bson:"user_id" json:"user_id"`
	Role   string             `bson:"role" json:"role"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
