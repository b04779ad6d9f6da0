// internal/app/features/userinfo/handler.go
package userinfo

import (
	"encoding/json"
	"net/http"

	"github.com/lotusandpine/studiohub/internal/app/system/auth"
	"github.com/lotusandpine/studiohub/internal/app/system/authz"
	"go.uber.org/zap"
)

// Handler serves identity information for the current caller.
type Handler struct {
	Checker *authz.Checker
	Log     *zap.Logger
}

// NewHandler creates a new userinfo handler.
func NewHandler(checker *authz.Checker, logger *zap.Logger) *Handler {
	return &Handler{Checker: checker, Log: logger}
}

// ServeUserInfo returns JSON with the caller's authentication status and
// identity.
//
// Response format:
//
//	{ "isAuthenticated": bool, "name": "...", "email": "...", "isAdmin": bool }
//
// Admin status is queried live so a revocation takes effect on the next
// request.
func (h *Handler) ServeUserInfo(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	user, ok := auth.CurrentUser(r)
	if !ok {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"isAuthenticated": false,
			"name":            "",
			"email":           "",
			"isAdmin":         false,
		})
		return
	}

	isAdmin, err := h.Checker.IsAdmin(r.Context(), user.ID)
	if err != nil {
		h.Log.Error("admin lookup failed", zap.Error(err), zap.String("email", user.Email))
		isAdmin = false
	}

	_ = json.NewEncoder(w).Encode(map[string]any{
		"isAuthenticated": true,
		"name":            user.Name,
		"email":           user.Email,
		"isAdmin":         isAdmin,
	})
}
