package rolestore_test

import (
	"errors"
	"testing"

	rolestore "github.com/lotusandpine/studiohub/internal/app/store/roles"
	"github.com/lotusandpine/studiohub/internal/domain/apperr"
	"github.com/lotusandpine/studiohub/internal/domain/models"
	"github.com/lotusandpine/studiohub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// setupStore provisions a store with the unique (user_id, role) index in
// place; Grant relies on it to detect duplicate grants.
func setupStore(t *testing.T) (*rolestore.Store, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	_, err := db.Collection("role_assignments").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "role", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		t.Fatalf("create unique role index: %v", err)
	}
	return rolestore.New(db), testutil.NewFixtures(t, db)
}

func TestGrantAndHasRole(t *testing.T) {
	store, _ := setupStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	userID := primitive.NewObjectID()
	ra, err := store.Grant(ctx, userID, models.RoleAdmin)
	if err != nil {
		t.Fatalf("Grant failed: %v", err)
	}
	if ra.UserID != userID || ra.Role != models.RoleAdmin {
		t.Errorf("unexpected assignment: %+v", ra)
	}

	has, err := store.HasRole(ctx, userID, models.RoleAdmin)
	if err != nil {
		t.Fatalf("HasRole failed: %v", err)
	}
	if !has {
		t.Error("expected granted role to be visible")
	}

	has, err = store.HasRole(ctx, primitive.NewObjectID(), models.RoleAdmin)
	if err != nil {
		t.Fatalf("HasRole failed: %v", err)
	}
	if has {
		t.Error("unrelated user should not hold the role")
	}
}

func TestGrant_Duplicate(t *testing.T) {
	store, _ := setupStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	userID := primitive.NewObjectID()
	if _, err := store.Grant(ctx, userID, models.RoleAdmin); err != nil {
		t.Fatalf("first grant failed: %v", err)
	}

	_, err := store.Grant(ctx, userID, models.RoleAdmin)
	if !errors.Is(err, apperr.ErrAlreadyAdmin) {
		t.Errorf("second grant: got %v, want ErrAlreadyAdmin", err)
	}
}

func TestGrant_RejectsUnknownRole(t *testing.T) {
	store, fx := setupStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	userID := primitive.NewObjectID()
	if _, err := store.Grant(ctx, userID, "superuser"); !apperr.IsValidation(err) {
		t.Fatalf("expected validation error for unknown role, got %v", err)
	}

	// Nothing may reach the collection for a rejected role name.
	n, err := fx.DB().Collection("role_assignments").CountDocuments(ctx, bson.M{})
	if err != nil {
		t.Fatalf("count assignments: %v", err)
	}
	if n != 0 {
		t.Errorf("rejected grant left %d rows behind", n)
	}
}

func TestListByRole(t *testing.T) {
	store, fx := setupStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	a := primitive.NewObjectID()
	b := primitive.NewObjectID()
	fx.GrantRole(ctx, a, models.RoleAdmin)
	fx.GrantRole(ctx, b, models.RoleAdmin)

	rows, err := store.ListByRole(ctx, models.RoleAdmin)
	if err != nil {
		t.Fatalf("ListByRole failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 assignments, got %d", len(rows))
	}
}

func TestRevoke_Idempotent(t *testing.T) {
	store, _ := setupStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	userID := primitive.NewObjectID()
	if _, err := store.Grant(ctx, userID, models.RoleAdmin); err != nil {
		t.Fatalf("Grant failed: %v", err)
	}

	if err := store.Revoke(ctx, userID, models.RoleAdmin); err != nil {
		t.Fatalf("Revoke failed: %v", err)
	}
	has, err := store.HasRole(ctx, userID, models.RoleAdmin)
	if err != nil {
		t.Fatalf("HasRole failed: %v", err)
	}
	if has {
		t.Error("role should be gone after revoke")
	}

	// Revoking an absent row is not an error.
	if err := store.Revoke(ctx, userID, models.RoleAdmin); err != nil {
		t.Errorf("second revoke should succeed, got %v", err)
	}
}
