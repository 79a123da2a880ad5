package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"starfield-server/internal/auth"
	"starfield-server/internal/shared/cookies"
	"starfield-server/internal/shared/errors"
	"starfield-server/internal/shared/response"
)

type contextKey string

const ExplorerContextKey contextKey = "explorer"

// RequireExplorer rejects requests without a valid session cookie and puts
// the token claims on the request context.
func RequireExplorer(issuer *auth.TokenIssuer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := slog.With(
				"middleware", "jwt",
				"method", r.Method,
				"path", r.URL.Path,
				"remote_addr", r.RemoteAddr,
			)

			cookie, err := r.Cookie(cookies.SessionCookieName)
			if err != nil || cookie.Value == "" {
				response.Error(w, r, logger, errors.Unauthorized("authentication required"))
				return
			}

			claims, err := issuer.Validate(cookie.Value)
			if err != nil {
				logger.Debug("Session token rejected", "error", err)
				response.Error(w, r, logger, errors.Unauthorized("invalid token"))
				return
			}

			ctx := context.WithValue(r.Context(), ExplorerContextKey, claims)
			logger.Debug("JWT authentication successful",
				"explorer_id", claims.ExplorerID,
				"guest", claims.Guest)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ExplorerFromContext returns the claims stored by RequireExplorer, or nil.
func ExplorerFromContext(ctx context.Context) *auth.Claims {
	if claims, ok := ctx.Value(ExplorerContextKey).(*auth.Claims); ok {
		return claims
	}
	return nil
}
