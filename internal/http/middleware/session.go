package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/rogerio-castellano/storefront/internal/auth"
	"github.com/rogerio-castellano/storefront/internal/storefront"
)

type contextKey string

const (
	sessionIDKey  = contextKey("session_id")
	controllerKey = contextKey("controller")
)

// SessionMiddleware resolves the bearer token to the shopper's controller.
func SessionMiddleware(tokens *auth.SessionTokens, sessions *storefront.Sessions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authorization := r.Header.Get("Authorization")
			if !strings.HasPrefix(authorization, "Bearer ") {
				http.Error(w, "missing or invalid token", http.StatusUnauthorized)
				return
			}

			sessionID, err := tokens.Parse(strings.TrimPrefix(authorization, "Bearer "))
			if err != nil {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			controller, err := sessions.Get(sessionID)
			if err != nil {
				http.Error(w, "session expired", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), sessionIDKey, sessionID)
			ctx = context.WithValue(ctx, controllerKey, controller)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetSessionID(r *http.Request) string {
	if val, ok := r.Context().Value(sessionIDKey).(string); ok {
		return val
	}
	return ""
}

// GetController returns the controller stored by SessionMiddleware, or nil.
func GetController(r *http.Request) *storefront.Controller {
	if val, ok := r.Context().Value(controllerKey).(*storefront.Controller); ok {
		return val
	}
	return nil
}
