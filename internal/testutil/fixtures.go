package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lotusandpine/studiohub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser creates a confirmed account with the given email and password.
// Returns the created user with its generated ID.
func (f *Fixtures) CreateUser(ctx context.Context, email, password string) models.User {
	f.t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		f.t.Fatalf("hash test password: %v", err)
	}

	now := time.Now().UTC()
	u := models.User{
		ID:           primitive.NewObjectID(),
		Email:        email,
		PasswordHash: string(hash),
		Confirmed:    true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := f.db.Collection("users").InsertOne(ctx, u); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return u
}

// CreateAdmin creates an account and grants it the admin role.
func (f *Fixtures) CreateAdmin(ctx context.Context, email, password string) models.User {
	f.t.Helper()

	u := f.CreateUser(ctx, email, password)
	f.GrantRole(ctx, u.ID, models.RoleAdmin)
	return u
}

// GrantRole inserts a role assignment for the given user.
func (f *Fixtures) GrantRole(ctx context.Context, userID primitive.ObjectID, role string) {
	f.t.Helper()

	ra := models.RoleAssignment{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := f.db.Collection("role_assignments").InsertOne(ctx, ra); err != nil {
		f.t.Fatalf("failed to grant test role: %v", err)
	}
}

// CreateToken inserts a live auth token of the given kind for the user.
func (f *Fixtures) CreateToken(ctx context.Context, id string, userID primitive.ObjectID, kind string, ttl time.Duration) models.AuthToken {
	f.t.Helper()

	now := time.Now().UTC()
	tok := models.AuthToken{
		ID:        id,
		UserID:    userID,
		Kind:      kind,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
	if _, err := f.db.Collection("auth_tokens").InsertOne(ctx, tok); err != nil {
		f.t.Fatalf("failed to create test token: %v", err)
	}
	return tok
}

// SetPageContent inserts a content override for the given page and key.
func (f *Fixtures) SetPageContent(ctx context.Context, page, key, value string) {
	f.t.Helper()

	doc := models.PageContent{
		ID:        primitive.NewObjectID(),
		Page:      page,
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now().UTC(),
	}
	if _, err := f.db.Collection("page_content").InsertOne(ctx, doc); err != nil {
		f.t.Fatalf("failed to set test page content: %v", err)
	}
}
