// Package middleware holds the HTTP middleware mounted by the REST router:
// request ids, panic recovery, access logs, CORS, metrics, rate limiting,
// bearer authentication and actor resolution.
package middleware

import (
	"encoding/json"
	"net/http"
)

// Middleware wraps an http.Handler. It is the func shape chi's Use accepts.
type Middleware func(http.Handler) http.Handler

// writeError writes the {"error": msg} body the REST handlers use.
func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg}) //nolint:errcheck
}
