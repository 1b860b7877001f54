package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	api "github.com/FACorreiaa/docledger/internal/api/respond"
)

type contextKey struct{}

// ContextWithUserID returns a context carrying the authenticated user ID.
func ContextWithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// UserIDFromContext returns the authenticated user ID set by Middleware.
func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(contextKey{}).(uuid.UUID)
	return id, ok
}

// Middleware rejects requests without a valid bearer token and stores the
// user ID in the request context.
func (s *Service) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			api.WriteError(w, http.StatusUnauthorized, "Missing or invalid authorization header")
			return
		}

		userID, err := s.VerifyToken(token)
		if err != nil {
			api.WriteError(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		next.ServeHTTP(w, r.WithContext(ContextWithUserID(r.Context(), userID)))
	})
}
