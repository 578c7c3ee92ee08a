package middlewares

import (
	"context"
	"net/http"

	"github.com/tavernkeep/campaign-tracker/internal/logger"
	"github.com/tavernkeep/campaign-tracker/internal/models"
)

// TokenExtractor pulls the raw session token out of a request.
type TokenExtractor interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// IdentityResolver maps a session token to the authenticated user.
type IdentityResolver interface {
	Resolve(ctx context.Context, tokenString string) (*models.UserDB, error)
}

// AuthMiddleware rejects anonymous requests with 401 before they reach any
// handler, so identity-scoped operations never touch storage without an
// authenticated session. On success the user id and the raw token are placed
// in the request context.
func AuthMiddleware(extractor TokenExtractor, resolver IdentityResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := extractor.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			user, err := resolver.Resolve(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			ctx = SetUserIDToContext(ctx, user.ID)
			ctx = SetTokenToContext(ctx, tokenString)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

type userIDKey struct{}
type tokenKey struct{}

// SetUserIDToContext stores the authenticated user id in the context.
func SetUserIDToContext(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// GetUserIDFromContext returns the authenticated user id, or 0 if the request
// did not pass the auth middleware.
func GetUserIDFromContext(ctx context.Context) int64 {
	userID, _ := ctx.Value(userIDKey{}).(int64)
	return userID
}

// SetTokenToContext stores the raw session token in the context.
func SetTokenToContext(ctx context.Context, tokenString string) context.Context {
	return context.WithValue(ctx, tokenKey{}, tokenString)
}

// GetTokenFromContext returns the raw session token of the current request.
func GetTokenFromContext(ctx context.Context) string {
	tokenString, _ := ctx.Value(tokenKey{}).(string)
	return tokenString
}
