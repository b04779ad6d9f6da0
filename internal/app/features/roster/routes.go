// internal/app/features/roster/routes.go
package roster

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter for the admin-roster API. The handler does
// its own authenticate-then-authorize check so that 401/403 come back as
// the JSON bodies the front-end expects; no middleware gate here.
// Preflight OPTIONS is answered by the CORS layer in bootstrap.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.Serve) // mounted under /api/admins
	return r
}
