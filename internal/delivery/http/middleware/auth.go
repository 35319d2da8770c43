package middleware

import (
	"context"
	"net/http"
	"strings"

	"dragonfire/internal/delivery/http/helpers"
	"dragonfire/internal/domain"
)

type contextKey string

const callerIDKey contextKey = "callerID"

// SetCallerID returns a context with the caller identity set. Used by the
// auth middleware and by tests.
func SetCallerID(ctx context.Context, callerID string) context.Context {
	return context.WithValue(ctx, callerIDKey, callerID)
}

// CallerIDFromContext returns the verified caller identity, if present.
func CallerIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(callerIDKey).(string)
	return id, ok
}

// RequireIdentity returns a wrapper that validates the Bearer token and sets
// the caller identity in the request context. It establishes who the caller
// is; whether that identity may mutate events is the allowlist's decision
// downstream. Missing or invalid tokens get a 401 and next is never called.
func RequireIdentity(verifier domain.TokenVerifier) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" {
				helpers.WriteError(w, http.StatusUnauthorized, "missing authorization header")
				return
			}
			const prefix = "Bearer "
			if !strings.HasPrefix(auth, prefix) {
				helpers.WriteError(w, http.StatusUnauthorized, "invalid authorization format")
				return
			}
			token := strings.TrimSpace(auth[len(prefix):])
			if token == "" {
				helpers.WriteError(w, http.StatusUnauthorized, "missing token")
				return
			}
			callerID, err := verifier.Verify(token)
			if err != nil {
				helpers.WriteError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}
			next(w, r.WithContext(SetCallerID(r.Context(), callerID)))
		}
	}
}
