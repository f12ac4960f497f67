package httpadapter

import (
	"crypto/subtle"
	"net/http"
	"strings"
)

// requireAdmin guards the back-office routes with the configured static
// token. The token is accepted as a bearer credential or in X-Admin-Token.
// A 401 tells the admin client to drop its cached credential and
// re-authenticate. An empty configured token disables the check.
func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.adminToken == "" {
			next.ServeHTTP(w, r)
			return
		}
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if token == "" || token == r.Header.Get("Authorization") {
			token = r.Header.Get("X-Admin-Token")
		}
		if subtle.ConstantTimeCompare([]byte(token), []byte(h.adminToken)) != 1 {
			h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid or missing admin token"})
			return
		}
		next.ServeHTTP(w, r)
	})
}
