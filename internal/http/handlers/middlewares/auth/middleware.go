package auth

import (
	"context"
	"net/http"
	"strings"

	"shortlink/domain/models"
	"shortlink/internal/http/httputils"
)

//go:generate mockgen -destination=../../../../../mocks/authentication_mock.go -package=mocks shortlink/internal/http/handlers/middlewares/auth Authentication
type Authentication interface {
	ValidateAndGetUser(ctx context.Context, token string) (models.User, error)
}

type contextKey struct{}

var userContextKey = contextKey{}

// WithUser attaches the resolved account to the request context.
func WithUser(ctx context.Context, user models.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// UserFromContext returns the account attached by MiddlewareAuth.
func UserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(userContextKey).(models.User)
	return user, ok
}

// MiddlewareAuth is the sole authorization gate for owner-scoped routes.
// The token is read from the accessToken cookie first, then from the
// Authorization: Bearer header.
func MiddlewareAuth(auth Authentication) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			token := extractToken(r)
			if token == "" {
				httputils.WriteJSONError(w, http.StatusUnauthorized, "No token found. Please log in.")
				return
			}

			user, err := auth.ValidateAndGetUser(ctx, token)
			if err != nil {
				httputils.WriteJSONError(w, http.StatusUnauthorized, "Authentication failed")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(ctx, user)))
		})
	}
}

func extractToken(r *http.Request) string {
	if cookie, err := r.Cookie(httputils.AccessTokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	header := r.Header.Get(httputils.HeaderAuthorization)
	if token, found := strings.CutPrefix(header, "Bearer "); found && token != "" {
		return token
	}

	return ""
}
