// internal/app/features/login/handler.go

// Package login issues and revokes bearer credentials for admins, and
// completes the password-reset flow started by a roster add.
package login

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/lotusandpine/studiohub/internal/app/system/auth"
	"github.com/lotusandpine/studiohub/internal/app/system/inputval"
	"github.com/lotusandpine/studiohub/internal/app/system/normalize"
	"github.com/lotusandpine/studiohub/internal/app/system/timeouts"
	"github.com/lotusandpine/studiohub/internal/app/system/webapi"
	"github.com/lotusandpine/studiohub/internal/domain/apperr"
	"github.com/lotusandpine/studiohub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// DefaultSessionTTL is how long an issued bearer credential stays valid.
const DefaultSessionTTL = 7 * 24 * time.Hour

// Password length bounds. The upper bound is bcrypt's 72-byte input
// limit; GenerateFromPassword rejects anything longer.
const (
	minPasswordLen = 8
	maxPasswordLen = 72
)

// UserStore is the slice of the user store login needs.
// *userstore.Store satisfies this.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	SetPassword(ctx context.Context, id primitive.ObjectID, hash string) error
}

// TokenStore is the slice of the token store login needs.
// *tokenstore.Store satisfies this.
type TokenStore interface {
	Issue(ctx context.Context, userID primitive.ObjectID, kind string, ttl time.Duration) (models.AuthToken, error)
	Revoke(ctx context.Context, id string) error
	Consume(ctx context.Context, id, kind string) (*models.AuthToken, error)
}

type Handler struct {
	Users      UserStore
	Tokens     TokenStore
	Manager    *auth.Manager
	Log        *zap.Logger
	SessionTTL time.Duration
}

// NewHandler creates a login handler.
func NewHandler(users UserStore, tokens TokenStore, mgr *auth.Manager, logger *zap.Logger) *Handler {
	return &Handler{
		Users:      users,
		Tokens:     tokens,
		Manager:    mgr,
		Log:        logger,
		SessionTTL: DefaultSessionTTL,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleLogin handles POST /api/login. On success it returns a signed
// bearer credential: {token, expires_at}. Bad email and bad password
// collapse into the same generic 401 so the endpoint does not confirm
// which accounts exist.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := webapi.DecodeJSON(r, &req); err != nil {
		webapi.WriteAppError(w, h.Log, err)
		return
	}

	email, emailOK := inputval.Required(req.Email)
	_, passOK := inputval.Required(req.Password)
	if !emailOK || !passOK {
		webapi.WriteAppError(w, h.Log, apperr.Validation("email and password required"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, normalize.Email(email))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			webapi.WriteError(w, http.StatusUnauthorized, "invalid email or password")
			return
		}
		webapi.WriteAppError(w, h.Log, apperr.Provider("look up account", err))
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		h.Log.Info("login rejected", zap.String("email", u.Email))
		webapi.WriteError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}

	tok, err := h.Tokens.Issue(ctx, u.ID, models.TokenKindSession, h.SessionTTL)
	if err != nil {
		webapi.WriteAppError(w, h.Log, apperr.Provider("issue session", err))
		return
	}

	bearer, err := h.Manager.EncodeBearer(tok.ID)
	if err != nil {
		webapi.WriteAppError(w, h.Log, apperr.Provider("encode credential", err))
		return
	}

	h.Log.Info("login", zap.String("email", u.Email))
	webapi.WriteJSON(w, http.StatusOK, map[string]any{
		"token":      bearer,
		"expires_at": tok.ExpiresAt.Format(time.RFC3339),
	})
}

// HandleLogout handles POST /api/logout: revokes the presented bearer
// credential. Requests without a valid credential still get
// {success:true} — there is nothing to revoke.
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if bearer := auth.BearerFromRequest(r); bearer != "" {
		if tokenID, err := h.Manager.DecodeBearer(bearer); err == nil {
			if err := h.Tokens.Revoke(ctx, tokenID); err != nil {
				webapi.WriteAppError(w, h.Log, apperr.Provider("revoke session", err))
				return
			}
		}
	}

	webapi.WriteJSON(w, http.StatusOK, map[string]any{"success": true})
}

type resetRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

// HandleResetPassword handles POST /api/password-reset: consumes a
// single-use reset token from the email link and stores the new
// password. Invalid, expired, and reused tokens all fail the same way.
func (h *Handler) HandleResetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetRequest
	if err := webapi.DecodeJSON(r, &req); err != nil {
		webapi.WriteAppError(w, h.Log, err)
		return
	}

	tokenID, ok := inputval.Required(req.Token)
	if !ok {
		webapi.WriteAppError(w, h.Log, apperr.Validation("token is required"))
		return
	}
	if len(req.Password) < minPasswordLen {
		webapi.WriteAppError(w, h.Log, apperr.Validation("password must be at least 8 characters"))
		return
	}
	if len(req.Password) > maxPasswordLen {
		webapi.WriteAppError(w, h.Log, apperr.Validation("password must be at most 72 characters"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	tok, err := h.Tokens.Consume(ctx, tokenID, models.TokenKindPasswordReset)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			webapi.WriteAppError(w, h.Log, apperr.Validation("invalid or expired reset token"))
			return
		}
		webapi.WriteAppError(w, h.Log, apperr.Provider("consume reset token", err))
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		webapi.WriteAppError(w, h.Log, apperr.Provider("hash password", err))
		return
	}

	if err := h.Users.SetPassword(ctx, tok.UserID, string(hash)); err != nil {
		webapi.WriteAppError(w, h.Log, apperr.Provider("store password", err))
		return
	}

	h.Log.Info("password reset completed", zap.String("user_id", tok.UserID.Hex()))
	webapi.WriteJSON(w, http.StatusOK, map[string]any{"success": true})
}
