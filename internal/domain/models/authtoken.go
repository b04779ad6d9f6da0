// internal/domain/models/authtoken.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Token kinds stored in auth_tokens.
const (
	TokenKindSession       = "session"
	TokenKindPasswordReset = "password_reset"
)

// AuthToken is an opaque server-side token record. The id (a uuid) is what
// travels over the wire, wrapped in a signed envelope; everything else stays
// in the database. Expired rows are reaped by a TTL index on expires_at.
type AuthToken struct {
	ID     string             `bson:"_id" json:"id"`
	UserID primitive.ObjectID `bson:"user_id" json:"user_id"`
	Kind   string             `bson:"kind" json:"kind"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	ExpiresAt time.Time `bson:"expires_at" json:"expires_at"`
}
