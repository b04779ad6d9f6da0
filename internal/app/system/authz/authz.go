// internal/app/system/authz/authz.go

// Package authz answers "is this caller an admin?" with a live query
// against the role_assignments store. There is deliberately no caching:
// a revoked admin loses access on their next request, and adding a cache
// would need invalidation rules nothing here wants to own.
package authz

import (
	"context"
	"net/http"

	"github.com/lotusandpine/studiohub/internal/app/system/auth"
	"github.com/lotusandpine/studiohub/internal/app/system/timeouts"
	"github.com/lotusandpine/studiohub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RoleChecker is the slice of the role store authz needs.
// *rolestore.Store satisfies this.
type RoleChecker interface {
	HasRole(ctx context.Context, userID primitive.ObjectID, role string) (bool, error)
}

// Checker makes admin decisions against the role store.
type Checker struct {
	roles RoleChecker
}

// NewChecker creates a Checker backed by the given role store.
func NewChecker(roles RoleChecker) *Checker {
	return &Checker{roles: roles}
}

// IsAdmin reports whether the identity holds the admin role right now.
func (c *Checker) IsAdmin(ctx context.Context, userID primitive.ObjectID) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, timeouts.Short())
	defer cancel()
	return c.roles.HasRole(ctx, userID, models.RoleAdmin)
}

// RequireAdmin ensures the request carries a signed-in admin caller.
// Not signed in → 401; signed in but not admin → 403; the role query
// failing → 500. All responses are plain JSON error bodies.
func (c *Checker) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, ok := auth.CurrentUser(r)
		if !ok {
			writeJSONError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		isAdmin, err := c.IsAdmin(r.Context(), u.ID)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, "authorization check failed")
			return
		}
		if !isAdmin {
			writeJSONError(w, http.StatusForbidden, "forbidden")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`{"error":"` + msg + `"}`))
}
