// internal/app/features/roster/handler.go

// Package roster implements the admin-roster API: listing, adding, and
// removing administrator accounts. Every action authenticates the caller
// and then authorizes them with a live role query before any business
// logic runs.
package roster

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/lotusandpine/studiohub/internal/app/system/auth"
	"github.com/lotusandpine/studiohub/internal/app/system/authz"
	"github.com/lotusandpine/studiohub/internal/app/system/inputval"
	"github.com/lotusandpine/studiohub/internal/app/system/mailer"
	"github.com/lotusandpine/studiohub/internal/app/system/normalize"
	"github.com/lotusandpine/studiohub/internal/app/system/timeouts"
	"github.com/lotusandpine/studiohub/internal/app/system/webapi"
	"github.com/lotusandpine/studiohub/internal/domain/apperr"
	"github.com/lotusandpine/studiohub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// DefaultResetTTL is how long a password-reset link stays valid.
const DefaultResetTTL = 24 * time.Hour

// IdentityDirectory is the slice of the user store the roster needs.
// *userstore.Store satisfies this.
type IdentityDirectory interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	CreateProvisional(ctx context.Context, email string) (models.User, error)
}

// RoleStore is the slice of the role store the roster needs.
// *rolestore.Store satisfies this.
type RoleStore interface {
	ListByRole(ctx context.Context, role string) ([]models.RoleAssignment, error)
	Grant(ctx context.Context, userID primitive.ObjectID, role string) (models.RoleAssignment, error)
	Revoke(ctx context.Context, userID primitive.ObjectID, role string) error
}

// TokenIssuer mints password-reset tokens. *tokenstore.Store satisfies this.
type TokenIssuer interface {
	Issue(ctx context.Context, userID primitive.ObjectID, kind string, ttl time.Duration) (models.AuthToken, error)
}

// MailSender delivers the reset email. *mailer.Mailer satisfies this.
type MailSender interface {
	Configured() bool
	Send(e mailer.Email) (string, error)
}

type Handler struct {
	Users  IdentityDirectory
	Roles  RoleStore
	Tokens TokenIssuer
	Mailer MailSender
	Authz  *authz.Checker
	Log    *zap.Logger

	// HiddenAdminEmail is the seed admin account excluded from the
	// roster view. It holds the role but never shows up in list output.
	HiddenAdminEmail string

	SiteName string
	BaseURL  string // base for reset links, e.g. "https://studio.example"
	ResetTTL time.Duration
}

// NewHandler creates a roster handler.
func NewHandler(users IdentityDirectory, roles RoleStore, tokens TokenIssuer, mail MailSender, checker *authz.Checker, hiddenAdminEmail, siteName, baseURL string, logger *zap.Logger) *Handler {
	return &Handler{
		Users:            users,
		Roles:            roles,
		Tokens:           tokens,
		Mailer:           mail,
		Authz:            checker,
		Log:              logger,
		HiddenAdminEmail: normalize.Email(hiddenAdminEmail),
		SiteName:         siteName,
		BaseURL:          baseURL,
		ResetTTL:         DefaultResetTTL,
	}
}

type rosterRequest struct {
	Action string `json:"action"`
	Email  string `json:"email"`
}

type adminRow struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// Serve handles POST /api/admins.
//
// Request: {action: "list"|"add"|"remove", email?} with a bearer
// credential. Responses follow the shapes in the handlers below; every
// error becomes a JSON {error} body with the mapped status code.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	caller, err := h.authorize(r)
	if err != nil {
		webapi.WriteAppError(w, h.Log, err)
		return
	}

	var req rosterRequest
	if err := webapi.DecodeJSON(r, &req); err != nil {
		webapi.WriteAppError(w, h.Log, err)
		return
	}

	switch req.Action {
	case "list":
		h.handleList(w, r)
	case "add":
		h.handleAdd(w, r, req.Email)
	case "remove":
		h.handleRemove(w, r, caller, req.Email)
	default:
		webapi.WriteAppError(w, h.Log, apperr.Validation("unknown action"))
	}
}

// authorize runs the two-step check: authenticate the bearer caller,
// then confirm they hold the admin role with a live query. It runs
// before any action logic, so no mutation happens on a 401/403 path.
func (h *Handler) authorize(r *http.Request) (*auth.User, error) {
	caller, ok := auth.CurrentUser(r)
	if !ok {
		return nil, apperr.ErrUnauthorized
	}

	isAdmin, err := h.Authz.IsAdmin(r.Context(), caller.ID)
	if err != nil {
		return nil, apperr.Provider("authorization check", err)
	}
	if !isAdmin {
		return nil, apperr.ErrForbidden
	}
	return caller, nil
}

// handleList returns every admin assignment joined with the account
// email, one identity lookup per row. Fine for a handful of admins; a
// large roster would want a batched $in query instead.
func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	rows, err := h.Roles.ListByRole(ctx, models.RoleAdmin)
	if err != nil {
		webapi.WriteAppError(w, h.Log, apperr.Provider("list admins", err))
		return
	}

	admins := make([]adminRow, 0, len(rows))
	for _, row := range rows {
		u, err := h.Users.GetByID(ctx, row.UserID)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				// Orphaned assignment; hide it rather than fail the view.
				h.Log.Warn("role assignment without user",
					zap.String("assignment_id", row.ID.Hex()),
					zap.String("user_id", row.UserID.Hex()))
				continue
			}
			webapi.WriteAppError(w, h.Log, apperr.Provider("resolve admin account", err))
			return
		}
		if h.HiddenAdminEmail != "" && u.Email == h.HiddenAdminEmail {
			continue
		}
		admins = append(admins, adminRow{
			ID:     row.ID.Hex(),
			UserID: row.UserID.Hex(),
			Email:  u.Email,
		})
	}

	webapi.WriteJSON(w, http.StatusOK, map[string]any{"admins": admins})
}

// handleAdd grants the admin role to the account with the given email,
// creating the account when it does not exist. The reset email is sent
// before the duplicate check, so a re-added admin still gets a fresh
// link; its delivery is best-effort and reported separately from the
// grant outcome.
func (h *Handler) handleAdd(w http.ResponseWriter, r *http.Request, email string) {
	email, ok := inputval.Required(email)
	if !ok {
		webapi.WriteAppError(w, h.Log, apperr.Validation("email is required"))
		return
	}
	email = normalize.Email(email)
	if !inputval.IsValidEmail(email) {
		webapi.WriteAppError(w, h.Log, apperr.Validation("a valid email is required"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		// existing account
	case errors.Is(err, mongo.ErrNoDocuments):
		created, cerr := h.Users.CreateProvisional(ctx, email)
		if cerr != nil {
			webapi.WriteAppError(w, h.Log, apperr.Provider("create account", cerr))
			return
		}
		u = &created
		h.Log.Info("provisional account created", zap.String("email", email))
	default:
		webapi.WriteAppError(w, h.Log, apperr.Provider("look up account", err))
		return
	}

	resetSent := h.sendPasswordReset(ctx, u)

	if _, err := h.Roles.Grant(ctx, u.ID, models.RoleAdmin); err != nil {
		if errors.Is(err, apperr.ErrAlreadyAdmin) {
			webapi.WriteAppError(w, h.Log, apperr.ErrAlreadyAdmin)
			return
		}
		webapi.WriteAppError(w, h.Log, apperr.Provider("grant admin role", err))
		return
	}

	h.Log.Info("admin added", zap.String("email", email), zap.Bool("reset_sent", resetSent))
	webapi.WriteJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"email":     email,
		"resetSent": resetSent,
	})
}

// handleRemove revokes the admin role for the given email. Callers can
// never remove themselves, and the target account must exist; revoking
// an already-revoked role for an existing account succeeds silently.
func (h *Handler) handleRemove(w http.ResponseWriter, r *http.Request, caller *auth.User, email string) {
	email, ok := inputval.Required(email)
	if !ok {
		webapi.WriteAppError(w, h.Log, apperr.Validation("email is required"))
		return
	}
	email = normalize.Email(email)

	if email == normalize.Email(caller.Email) {
		webapi.WriteAppError(w, h.Log, apperr.ErrSelfRemoval)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			webapi.WriteAppError(w, h.Log, apperr.ErrNotFound)
			return
		}
		webapi.WriteAppError(w, h.Log, apperr.Provider("look up account", err))
		return
	}

	if err := h.Roles.Revoke(ctx, u.ID, models.RoleAdmin); err != nil {
		webapi.WriteAppError(w, h.Log, apperr.Provider("revoke admin role", err))
		return
	}

	h.Log.Info("admin removed", zap.String("email", email), zap.String("by", caller.Email))
	webapi.WriteJSON(w, http.StatusOK, map[string]any{"success": true})
}

// sendPasswordReset issues a reset token and emails the link. Failure is
// logged and reported as false, never as an error: reset delivery and
// the grant itself are independent outcomes.
func (h *Handler) sendPasswordReset(ctx context.Context, u *models.User) bool {
	if !h.Mailer.Configured() {
		h.Log.Warn("password-reset email skipped: mailer not configured",
			zap.String("email", u.Email))
		return false
	}

	ttl := h.ResetTTL
	if ttl <= 0 {
		ttl = DefaultResetTTL
	}

	tok, err := h.Tokens.Issue(ctx, u.ID, models.TokenKindPasswordReset, ttl)
	if err != nil {
		h.Log.Error("password-reset token issue failed",
			zap.String("email", u.Email), zap.Error(err))
		return false
	}

	msg := mailer.BuildPasswordResetEmail(mailer.ResetEmailData{
		SiteName:  h.SiteName,
		ResetLink: fmt.Sprintf("%s/admin/reset?token=%s", h.BaseURL, tok.ID),
		ExpiresIn: formatTTL(ttl),
	})
	msg.To = u.Email

	if _, err := h.Mailer.Send(msg); err != nil {
		h.Log.Error("password-reset email failed",
			zap.String("email", u.Email), zap.Error(err))
		return false
	}
	return true
}

func formatTTL(d time.Duration) string {
	if d >= 24*time.Hour && d%(24*time.Hour) == 0 {
		days := int(d / (24 * time.Hour))
		if days == 1 {
			return "24 hours"
		}
		return fmt.Sprintf("%d days", days)
	}
	if d >= time.Hour && d%time.Hour == 0 {
		hours := int(d / time.Hour)
		if hours == 1 {
			return "1 hour"
		}
		return fmt.Sprintf("%d hours", hours)
	}
	return fmt.Sprintf("%d minutes", int(d/time.Minute))
}
