package api

import (
	"net/http"
	"strings"
)

// CORS stamps the permissive cross-origin headers on every response. The
// dispatch endpoints are called from browsers on another origin.
func CORS(allowedHeaders []string) Middleware {
	headers := strings.Join(allowedHeaders, ", ")
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("Access-Control-Allow-Origin", "*")
			h.Set("Access-Control-Allow-Headers", headers)
			h.Set("Access-Control-Allow-Methods", "POST, OPTIONS")
			next.ServeHTTP(w, r)
		})
	}
}

// preflight answers OPTIONS probes with an empty 200.
func preflight(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}
