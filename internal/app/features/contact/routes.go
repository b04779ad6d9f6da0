// internal/app/features/contact/routes.go
package contact

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter for the contact API. No authentication:
// the form is public. Preflight OPTIONS is answered by the CORS layer.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.Serve) // mounted under /api/contact
	return r
}
