package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/hun-meta/api-base-template/internal/apperror"
	jwtinfra "github.com/hun-meta/api-base-template/internal/infrastructure/jwt"
	"github.com/hun-meta/api-base-template/internal/transport/http/respond"
)

type contextKey string

const ClaimsKey contextKey = "claims"

// Auth returns middleware that validates the Bearer JWT and injects claims
// into context. Failures flow through the error responder as recognized 401s.
func Auth(provider *jwtinfra.Provider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if provider == nil {
				respond.Error(w, r, apperror.EnvMissing("JWT_PRIVATE_KEY_PATH"))
				return
			}
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				respond.Error(w, r, apperror.Unauthorized("missing or invalid authorization header"))
				return
			}
			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
			claims, err := provider.Verify(tokenStr)
			if err != nil {
				respond.Error(w, r, apperror.Wrap(http.StatusUnauthorized, "invalid or expired token", err))
				return
			}
			ctx := context.WithValue(r.Context(), ClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext extracts JWT claims from the request context.
func ClaimsFromContext(ctx context.Context) (*jwtinfra.Claims, bool) {
	c, ok := ctx.Value(ClaimsKey).(*jwtinfra.Claims)
	return c, ok
}
