package middlewares

import (
	"context"
	"errors"
	"net/http"

	"github.com/mapmyworld/mapmyworld-api/internal/logger"
	"github.com/mapmyworld/mapmyworld-api/internal/models"
	"github.com/mapmyworld/mapmyworld-api/internal/services"
)

// Tokener extracts the bearer token from a request.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// UserResolver resolves a token to an active user.
type UserResolver interface {
	GetCurrentUser(ctx context.Context, tokenString string) (*models.UserDB, error)
}

// AuthMiddleware returns a middleware that resolves the bearer token to a
// user and stores it in the request context. An invalid token or unknown
// subject yields 401, an inactive account 403.
func AuthMiddleware(tokener Tokener, resolver UserResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			user, err := resolver.GetCurrentUser(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				if errors.Is(err, services.ErrInactiveUser) {
					w.WriteHeader(http.StatusForbidden)
					return
				}
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(SetUserToContext(ctx, user)))
		})
	}
}

// userContextKey is an unexported type for keys in context
type userContextKey struct{}

var userKey = userContextKey{}

// SetUserToContext stores the authenticated user in the context
func SetUserToContext(ctx context.Context, user *models.UserDB) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// GetUserFromContext retrieves the authenticated user from the context.
// Returns nil if not present.
func GetUserFromContext(ctx context.Context) *models.UserDB {
	user, _ := ctx.Value(userKey).(*models.UserDB)
	return user
}
