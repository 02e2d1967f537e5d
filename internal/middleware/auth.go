// Package middleware provides the bearer-token authentication middleware.
package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	apperrors "github.com/swoleapp/swole-api/internal/errors"
	"github.com/swoleapp/swole-api/internal/models"
	"github.com/swoleapp/swole-api/internal/schemas"
	"github.com/swoleapp/swole-api/internal/service"
)

type contextKey struct{}

var userKey = contextKey{}

// AuthMiddleware resolves the request identity from the Authorization header
// on every request; there is no server-side session state.
type AuthMiddleware struct {
	auth   *service.AuthService
	logger *logrus.Logger
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(auth *service.AuthService, logger *logrus.Logger) *AuthMiddleware {
	return &AuthMiddleware{auth: auth, logger: logger}
}

// Handler returns the middleware handler
func (m *AuthMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			m.respondError(w, http.StatusUnauthorized, apperrors.CouldNotValidateCredentials)
			return
		}

		user, err := m.auth.CurrentUser(r.Context(), parts[1])
		if err != nil {
			m.logger.Warnf("Token validation failed: %v", err)
			m.respondError(w, http.StatusUnauthorized, apperrors.CouldNotValidateCredentials)
			return
		}
		if err := m.auth.RequireActive(user); err != nil {
			m.respondError(w, http.StatusBadRequest, apperrors.InactiveUser)
			return
		}

		ctx := context.WithValue(r.Context(), userKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *AuthMiddleware) respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(schemas.NewErrorResponse(message))
}

// CurrentUser extracts the authenticated user from the request context.
func CurrentUser(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userKey).(*models.User)
	return user, ok
}

// WithUser returns a context carrying an authenticated user, the same way the
// middleware stores it.
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}
