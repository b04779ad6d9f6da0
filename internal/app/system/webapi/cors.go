// internal/app/system/webapi/cors.go
package webapi

import "net/http"

// CORS applies the permissive cross-origin headers the static site needs
// and answers OPTIONS preflights with 204 before they reach a handler.
// When allowedOrigin is empty every origin is accepted.
func CORS(allowedOrigin string) func(http.Handler) http.Handler {
	origin := allowedOrigin
	if origin == "" {
		origin = "*"
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
			h.Set("Access-Control-Allow-Headers", "Authorization, Content-Type")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
