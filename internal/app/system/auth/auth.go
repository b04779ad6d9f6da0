// internal/app/system/auth/auth.go

// Package auth resolves bearer credentials into the caller's identity.
//
// The wire token is an opaque server-side token id wrapped in a
// securecookie-signed envelope, so a tampered header never reaches the
// database. Resolution always fetches fresh user data: role changes and
// deletions take effect on the next request.
package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/securecookie"
	"github.com/lotusandpine/studiohub/internal/app/system/timeouts"
	"github.com/lotusandpine/studiohub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const bearerEnvelope = "studiohub-bearer"

// User is the resolved caller identity injected into r.Context().
type User struct {
	ID    primitive.ObjectID
	Email string
	Name  string
}

// TokenResolver loads a live token record by id and kind.
// *tokenstore.Store satisfies this.
type TokenResolver interface {
	Get(ctx context.Context, id, kind string) (*models.AuthToken, error)
}

// UserFetcher loads fresh user data for a resolved token.
// *userstore.Store satisfies this.
type UserFetcher interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

// Manager decodes bearer envelopes and resolves them to users.
type Manager struct {
	codec  *securecookie.SecureCookie
	tokens TokenResolver
	users  UserFetcher
	log    *zap.Logger
}

// NewManager creates a Manager signing bearer envelopes with tokenKey.
func NewManager(tokenKey string, tokens TokenResolver, users UserFetcher, logger *zap.Logger) (*Manager, error) {
	if tokenKey == "" {
		return nil, fmt.Errorf("token key is empty; provide ≥32 random chars")
	}
	if len(tokenKey) < 32 {
		logger.Warn("token key is short; 32+ chars recommended",
			zap.Int("length", len(tokenKey)))
	}

	return &Manager{
		codec:  securecookie.New([]byte(tokenKey), nil),
		tokens: tokens,
		users:  users,
		log:    logger,
	}, nil
}

// EncodeBearer wraps a token id in the signed wire envelope.
func (m *Manager) EncodeBearer(tokenID string) (string, error) {
	return m.codec.Encode(bearerEnvelope, tokenID)
}

// DecodeBearer unwraps and verifies the wire envelope, returning the
// token id. Tampered or garbled values fail here without a DB round trip.
func (m *Manager) DecodeBearer(bearer string) (string, error) {
	var tokenID string
	if err := m.codec.Decode(bearerEnvelope, bearer, &tokenID); err != nil {
		return "", err
	}
	return tokenID, nil
}

// Resolve turns a raw bearer string into the caller's User. It returns
// (nil, nil) for any invalid, expired, or unknown credential - absence of
// a caller is not an error, it is a 401 decided by the caller.
func (m *Manager) Resolve(ctx context.Context, bearer string) (*User, error) {
	tokenID, err := m.DecodeBearer(bearer)
	if err != nil {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, timeouts.Short())
	defer cancel()

	tok, err := m.tokens.Get(ctx, tokenID, models.TokenKindSession)
	if err != nil {
		return nil, nil
	}

	u, err := m.users.GetByID(ctx, tok.UserID)
	if err != nil {
		return nil, nil
	}

	return &User{ID: u.ID, Email: u.Email, Name: u.FullName}, nil
}

/*─────────────────────────────────────────────────────────────────────────────*
| Request context plumbing                                                   |
*─────────────────────────────────────────────────────────────────────────────*/

type ctxKey string

const currentUserKey ctxKey = "currentUser"

// CurrentUser returns the caller & "found?" flag.
func CurrentUser(r *http.Request) (*User, bool) {
	u, ok := r.Context().Value(currentUserKey).(*User)
	return u, ok
}

// WithTestUser injects a user directly into the request context,
// bypassing token resolution. For handler tests only.
func WithTestUser(r *http.Request, u *User) *http.Request {
	return withUser(r, u)
}

func withUser(r *http.Request, u *User) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), currentUserKey, u))
}

// BearerFromRequest extracts the raw bearer value from the Authorization
// header. Returns "" when the header is absent or not a Bearer scheme.
func BearerFromRequest(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// LoadBearerUser injects the caller into context when the request carries
// a valid bearer credential. Requests without one pass through untouched;
// handlers that need a caller use RequireSignedIn or check CurrentUser.
func (m *Manager) LoadBearerUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if bearer := BearerFromRequest(r); bearer != "" {
			if u, _ := m.Resolve(r.Context(), bearer); u != nil {
				r = withUser(r, u)
			}
		}
		next.ServeHTTP(w, r)
	})
}

// RequireSignedIn ensures there is a caller in context (set by
// LoadBearerUser). API callers get a plain JSON 401.
func RequireSignedIn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CurrentUser(r); !ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"unauthorized"}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}
