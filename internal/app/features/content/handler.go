// internal/app/features/content/handler.go

// Package content serves the editable page text behind the site's
// in-page editing mode. Reads are public; writes require an admin. Only
// overrides are stored — the front-end overlays them on the static
// fallback text it ships with.
package content

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/lotusandpine/studiohub/internal/app/system/auth"
	"github.com/lotusandpine/studiohub/internal/app/system/htmlsanitize"
	"github.com/lotusandpine/studiohub/internal/app/system/inputval"
	"github.com/lotusandpine/studiohub/internal/app/system/timeouts"
	"github.com/lotusandpine/studiohub/internal/app/system/webapi"
	"github.com/lotusandpine/studiohub/internal/domain/apperr"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// ContentStore is the slice of the content store this feature needs.
// *contentstore.Store satisfies this.
type ContentStore interface {
	GetPage(ctx context.Context, page string) (map[string]string, error)
	Upsert(ctx context.Context, page, key, value string, updatedBy primitive.ObjectID) error
	Delete(ctx context.Context, page, key string) error
}

type Handler struct {
	Store ContentStore
	Log   *zap.Logger
}

// NewHandler creates a content handler.
func NewHandler(store ContentStore, logger *zap.Logger) *Handler {
	return &Handler{Store: store, Log: logger}
}

// ServePage handles GET /api/content/{page}: all stored overrides for
// one page. Pages with no overrides return an empty content map.
func (h *Handler) ServePage(w http.ResponseWriter, r *http.Request) {
	page := chi.URLParam(r, "page")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	overrides, err := h.Store.GetPage(ctx, page)
	if err != nil {
		webapi.WriteAppError(w, h.Log, apperr.Provider("load page content", err))
		return
	}

	webapi.WriteJSON(w, http.StatusOK, map[string]any{
		"page":    page,
		"content": overrides,
	})
}

type updateRequest struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// HandleUpdate handles PUT /api/content/{page}: saves one fragment
// override. Caller is guaranteed to be an admin by the route middleware.
// An empty value clears the override, restoring the static fallback.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	page := chi.URLParam(r, "page")

	var req updateRequest
	if err := webapi.DecodeJSON(r, &req); err != nil {
		webapi.WriteAppError(w, h.Log, err)
		return
	}

	key, ok := inputval.Required(req.Key)
	if !ok {
		webapi.WriteAppError(w, h.Log, apperr.Validation("key is required"))
		return
	}

	caller, _ := auth.CurrentUser(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if req.Value == "" {
		if err := h.Store.Delete(ctx, page, key); err != nil {
			webapi.WriteAppError(w, h.Log, apperr.Provider("clear page content", err))
			return
		}
		h.Log.Info("page content cleared",
			zap.String("page", page), zap.String("key", key), zap.String("by", caller.Email))
		webapi.WriteJSON(w, http.StatusOK, map[string]any{"success": true})
		return
	}

	value := htmlsanitize.Sanitize(req.Value)
	if err := h.Store.Upsert(ctx, page, key, value, caller.ID); err != nil {
		webapi.WriteAppError(w, h.Log, apperr.Provider("save page content", err))
		return
	}

	h.Log.Info("page content updated",
		zap.String("page", page), zap.String("key", key), zap.String("by", caller.Email))
	webapi.WriteJSON(w, http.StatusOK, map[string]any{"success": true})
}
