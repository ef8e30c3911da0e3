package middleware

import (
	"net/http"

	"github.com/go-chi/httprate"

	"github.com/heartmarshall/habitlog-backend/internal/config"
)

// RateLimit limits requests per client IP. A non-positive request count
// disables limiting.
func RateLimit(cfg config.RateLimitConfig) Middleware {
	if cfg.Requests <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	return httprate.Limit(
		cfg.Requests,
		cfg.Window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
		}),
	)
}
