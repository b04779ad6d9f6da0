// internal/app/store/roles/rolestore.go

// Package rolestore manages the role_assignments collection: the only
// entity this application truly owns. Rows are granted and revoked,
// never updated in place.
package rolestore

import (
	"context"
	"fmt"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/lotusandpine/studiohub/internal/app/system/normalize"
	"github.com/lotusandpine/studiohub/internal/domain/apperr"
	"github.com/lotusandpine/studiohub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("role_assignments")}
}

// ListByRole returns all assignments for the given role.
func (s *Store) ListByRole(ctx context.Context, role string) ([]models.RoleAssignment, error) {
	cur, err := s.c.Find(ctx, bson.M{"role": normalize.Role(role)})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var rows []models.RoleAssignment
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// HasRole reports whether the user holds the role. This is the live
// query behind every admin authorization decision; it is never cached.
func (s *Store) HasRole(ctx context.Context, userID primitive.ObjectID, role string) (bool, error) {
	count, err := s.c.CountDocuments(ctx, bson.M{
		"user_id": userID,
		"role":    normalize.Role(role),
	})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Grant inserts an assignment row. The unique (user_id, role) index makes
// the insert conditional: a concurrent duplicate grant loses the race at
// the database rather than in a stale pre-check, and surfaces as
// apperr.ErrAlreadyAdmin.
func (s *Store) Grant(ctx context.Context, userID primitive.ObjectID, role string) (models.RoleAssignment, error) {
	role = normalize.Role(role)
	if !models.ValidRole(role) {
		return models.RoleAssignment{}, apperr.Validation(fmt.Sprintf("unknown role %q", role))
	}
	ra := models.RoleAssignment{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := s.c.InsertOne(ctx, ra); err != nil {
		if wafflemongo.IsDup(err) {
			return models.RoleAssignment{}, apperr.ErrAlreadyAdmin
		}
		return models.RoleAssignment{}, err
	}
	return ra, nil
}

// Revoke deletes the assignment row for (userID, role). Deleting a row
// that does not exist succeeds silently; revoke is idempotent as long as
// the user themselves exists, which the caller has already checked.
func (s *Store) Revoke(ctx context.Context, userID primitive.ObjectID, role string) error {
	_, err := s.c.DeleteOne(ctx, bson.M{
		"user_id": userID,
		"role":    normalize.Role(role),
	})
	return err
}
