// internal/app/features/content/routes.go
package content

import (
	"github.com/go-chi/chi/v5"
	"github.com/lotusandpine/studiohub/internal/app/system/authz"
)

// Routes returns a subrouter for the page-content API. Reads are public;
// writes sit behind the admin gate.
func Routes(h *Handler, checker *authz.Checker) chi.Router {
	r := chi.NewRouter()

	r.Get("/{page}", h.ServePage)

	r.Group(func(pr chi.Router) {
		pr.Use(checker.RequireAdmin)
		pr.Put("/{page}", h.HandleUpdate)
	})

	return r
}
