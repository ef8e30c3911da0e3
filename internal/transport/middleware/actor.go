package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/habitlog-backend/internal/domain"
	"github.com/heartmarshall/habitlog-backend/pkg/ctxutil"
)

type userLookup interface {
	GetByExternalID(ctx context.Context, externalID string) (*domain.User, error)
}

// Actor resolves the token subject to a local user and stores the user id
// on the context. A subject without a provisioned user passes through
// without a user id.
func Actor(users userLookup, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			subject, ok := ctxutil.SubjectFromCtx(r.Context())
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			user, err := users.GetByExternalID(r.Context(), subject)
			switch {
			case errors.Is(err, domain.ErrNotFound):
				next.ServeHTTP(w, r)
				return
			case err != nil:
				logger.ErrorContext(r.Context(), "resolve actor",
					slog.String("subject", subject),
					slog.String("error", err.Error()),
				)
				writeError(w, http.StatusInternalServerError, "internal server error")
				return
			}

			ctx := ctxutil.WithUserID(r.Context(), user.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
