package contentstore_test

import (
	"testing"

	contentstore "github.com/lotusandpine/studiohub/internal/app/store/content"
	"github.com/lotusandpine/studiohub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func setupStore(t *testing.T) (*contentstore.Store, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return contentstore.New(db), testutil.NewFixtures(t, db)
}

func TestGetPage_Empty(t *testing.T) {
	store, _ := setupStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	got, err := store.GetPage(ctx, "home")
	if err != nil {
		t.Fatalf("GetPage failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty map for a page with no overrides, got %v", got)
	}
}

func TestGetPage_ReturnsOverridesForOnePage(t *testing.T) {
	store, fx := setupStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx.SetPageContent(ctx, "home", "hero_title", "Breathe deeper")
	fx.SetPageContent(ctx, "home", "hero_sub", "Move slower")
	fx.SetPageContent(ctx, "about", "intro", "Since 2019")

	got, err := store.GetPage(ctx, "home")
	if err != nil {
		t.Fatalf("GetPage failed: %v", err)
	}
	if len(got) != 2 || got["hero_title"] != "Breathe deeper" || got["hero_sub"] != "Move slower" {
		t.Errorf("unexpected home overrides: %v", got)
	}
}

func TestUpsert_InsertsThenUpdates(t *testing.T) {
	store, _ := setupStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	editor := primitive.NewObjectID()
	if err := store.Upsert(ctx, "home", "hero_title", "First", editor); err != nil {
		t.Fatalf("insert upsert failed: %v", err)
	}
	if err := store.Upsert(ctx, "home", "hero_title", "Second", editor); err != nil {
		t.Fatalf("update upsert failed: %v", err)
	}

	got, err := store.GetPage(ctx, "home")
	if err != nil {
		t.Fatalf("GetPage failed: %v", err)
	}
	if len(got) != 1 || got["hero_title"] != "Second" {
		t.Errorf("expected a single updated row, got %v", got)
	}
}

func TestDelete(t *testing.T) {
	store, fx := setupStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx.SetPageContent(ctx, "home", "hero_title", "Custom")
	if err := store.Delete(ctx, "home", "hero_title"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	got, err := store.GetPage(ctx, "home")
	if err != nil {
		t.Fatalf("GetPage failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("override should be gone, got %v", got)
	}

	// Deleting an absent row is not an error.
	if err := store.Delete(ctx, "home", "hero_title"); err != nil {
		t.Errorf("second delete should succeed, got %v", err)
	}
}
