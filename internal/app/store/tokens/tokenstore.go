// internal/app/store/tokens/tokenstore.go

// Package tokenstore manages the auth_tokens collection: opaque session
// and password-reset tokens. Only the token id travels to the client
// (inside a signed envelope); expiry lives server-side and a TTL index
// reaps stale rows.
package tokenstore

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lotusandpine/studiohub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("auth_tokens")}
}

// Issue creates a token of the given kind for the user and returns it.
func (s *Store) Issue(ctx context.Context, userID primitive.ObjectID, kind string, ttl time.Duration) (models.AuthToken, error) {
	now := time.Now().UTC()
	tok := models.AuthToken{
		ID:        uuid.NewString(),
		UserID:    userID,
		Kind:      kind,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
	if _, err := s.c.InsertOne(ctx, tok); err != nil {
		return models.AuthToken{}, err
	}
	return tok, nil
}

// Get loads a token by id and kind, treating expired rows as missing.
// The TTL index reaps them eventually; the explicit check closes the gap
// between logical and physical expiry. Returns mongo.ErrNoDocuments when
// the token is unknown, of the wrong kind, or expired.
func (s *Store) Get(ctx context.Context, id, kind string) (*models.AuthToken, error) {
	var tok models.AuthToken
	err := s.c.FindOne(ctx, bson.M{
		"_id":        id,
		"kind":       kind,
		"expires_at": bson.M{"$gt": time.Now().UTC()},
	}).Decode(&tok)
	if err != nil {
		return nil, err
	}
	return &tok, nil
}

// Revoke deletes the token. Revoking an unknown token is not an error.
func (s *Store) Revoke(ctx context.Context, id string) error {
	_, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// Consume atomically deletes the token of the given kind and returns it.
// Used for single-use password-reset tokens so two concurrent resets
// cannot both succeed with the same token.
func (s *Store) Consume(ctx context.Context, id, kind string) (*models.AuthToken, error) {
	var tok models.AuthToken
	err := s.c.FindOneAndDelete(ctx, bson.M{
		"_id":        id,
		"kind":       kind,
		"expires_at": bson.M{"$gt": time.Now().UTC()},
	}).Decode(&tok)
	if err != nil {
		return nil, err
	}
	return &tok, nil
}
