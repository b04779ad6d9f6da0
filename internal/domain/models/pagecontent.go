// internal/domain/models/pagecontent.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PageContent is one editable text fragment on the site, keyed by page and
// fragment name. The front-end ships static fallback text for every fragment
// and overlays whatever rows exist here, so the collection only ever holds
// overrides, never the full page.
type PageContent struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Page  string             `bson:"page" json:"page"`
	Key   string             `bson:"key" json:"key"`
	Value string             `bson:"value" json:"value"`

	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
	UpdatedBy primitive.ObjectID `bson:"updated_by,omitempty" json:"updated_by,omitempty"`
}
