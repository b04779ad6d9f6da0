// internal/app/features/login/routes.go

package login

import "github.com/go-chi/chi/v5"

// Routes wires the credential endpoints. The caller mounts login,
// logout, and password-reset at their own top-level paths.
func Routes(h *Handler) (login, logout, reset chi.Router) {
	login = chi.NewRouter()
	login.Post("/", h.HandleLogin)

	logout = chi.NewRouter()
	logout.Post("/", h.HandleLogout)

	reset = chi.NewRouter()
	reset.Post("/", h.HandleResetPassword)
	return login, logout, reset
}
