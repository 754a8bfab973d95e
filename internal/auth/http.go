// ABOUTME: HTTP middleware gate resolving a session token to a principal
// ABOUTME: Extracts the token from cookie or Authorization header and adds the user to context

package auth

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/hirelane/hirelane/internal/store"
)

// TokenCookieName is the name of the session token cookie.
const TokenCookieName = "token"

// UserStore defines the interface for resolving principals.
type UserStore interface {
	GetUser(ctx context.Context, id string) (*store.User, error)
}

// extractToken pulls the candidate session token from the request.
// The cookie takes precedence; a bearer-style Authorization header is the
// fallback for header-based clients.
func extractToken(r *http.Request) (string, bool) {
	if cookie, err := r.Cookie(TokenCookieName); err == nil && cookie.Value != "" {
		return cookie.Value, true
	}

	fields := strings.Fields(r.Header.Get("Authorization"))
	if len(fields) >= 2 {
		return fields[1], true
	}

	return "", false
}

// Middleware creates an HTTP middleware that authenticates requests.
// It verifies the session token, looks up the user, and adds the principal
// to the request context. Handlers behind it must not re-verify tokens.
func Middleware(users UserStore, verifier TokenVerifier) func(http.Handler) http.Handler {
	logger := slog.Default().With("component", "auth")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := extractToken(r)
			if !ok {
				writeError(w, http.StatusUnauthorized, "user not authorized: no token provided")
				return
			}

			principalID, err := verifier.Verify(token)
			if err != nil {
				// The reason stays in the log; the client sees one message
				// regardless of which check failed.
				logger.Warn("token verification failed", "error", err)
				writeError(w, http.StatusUnauthorized, "user not authorized: invalid token")
				return
			}

			user, err := users.GetUser(r.Context(), principalID)
			if err != nil {
				if errors.Is(err, store.ErrUserNotFound) {
					writeError(w, http.StatusNotFound, "user not found")
					return
				}
				logger.Error("principal lookup failed", "error", err, "principal_id", principalID)
				writeError(w, http.StatusInternalServerError, "internal server error")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), user)))
		})
	}
}

// RequireRole creates an HTTP middleware that requires the authenticated
// principal to hold the given role. Must be used after Middleware.
func RequireRole(role store.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := FromContext(r.Context())
			if user == nil {
				writeError(w, http.StatusUnauthorized, "not authenticated")
				return
			}

			if user.Role != role {
				writeError(w, http.StatusForbidden, string(role)+" role required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// writeError sends the standard JSON error envelope.
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"message": message,
	})
}
