// Package middleware wraps the API routes with bearer token
// authentication.
package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// TokenValidator checks a bearer token and exposes the claims the
// middleware needs. An interface so the server's JWT service can plug in
// without an import cycle.
type TokenValidator interface {
	ValidateToken(token string) (UserIDGetter, error)
}

// UserIDGetter yields the authenticated user from validated claims.
type UserIDGetter interface {
	GetUserID() uuid.UUID
}

type contextKey struct{}

var userIDKey contextKey

// AuthMiddleware rejects requests without a valid bearer token and puts
// the authenticated user id on the request context for GetUserID.
func AuthMiddleware(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			claims, err := validator.ValidateToken(token)
			if err != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, claims.GetUserID())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken extracts the credential from an Authorization header. The
// scheme is matched case-insensitively.
func bearerToken(header string) (string, bool) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

// GetUserID returns the user id stored by AuthMiddleware. Handlers behind
// the middleware can rely on it; anywhere else it errors.
func GetUserID(r *http.Request) (uuid.UUID, error) {
	userID, ok := r.Context().Value(userIDKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, errors.New("no authenticated user on request context")
	}
	return userID, nil
}
