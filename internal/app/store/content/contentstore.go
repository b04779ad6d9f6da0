// internal/app/store/content/contentstore.go

// Package contentstore provides access to the page_content collection:
// the key-value overrides behind the site's in-page editing mode.
package contentstore

import (
	"context"
	"time"

	"github.com/lotusandpine/studiohub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("page_content")}
}

// GetPage returns all stored overrides for one page as a key/value map.
// Pages with no overrides return an empty map, not an error; the
// front-end falls back to its static text for every missing key.
func (s *Store) GetPage(ctx context.Context, page string) (map[string]string, error) {
	cur, err := s.c.Find(ctx, bson.M{"page": page})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	content := make(map[string]string)
	for cur.Next(ctx) {
		var row models.PageContent
		if err := cur.Decode(&row); err != nil {
			return nil, err
		}
		content[row.Key] = row.Value
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return content, nil
}

// Upsert saves one fragment override. Uses upsert with the (page, key)
// filter so it works whether the row exists or not.
func (s *Store) Upsert(ctx context.Context, page, key, value string, updatedBy primitive.ObjectID) error {
	filter := bson.M{"page": page, "key": key}
	update := bson.M{
		"$set": bson.M{
			"page":       page,
			"key":        key,
			"value":      value,
			"updated_at": time.Now().UTC(),
			"updated_by": updatedBy,
		},
		"$setOnInsert": bson.M{
			"_id": primitive.NewObjectID(),
		},
	}

	opts := options.Update().SetUpsert(true)
	_, err := s.c.UpdateOne(ctx, filter, update, opts)
	return err
}

// Delete removes one override, restoring the static fallback text.
// Deleting an absent row is not an error.
func (s *Store) Delete(ctx context.Context, page, key string) error {
	_, err := s.c.DeleteOne(ctx, bson.M{"page": page, "key": key})
	return err
}
