package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/crmbase/lead-manager/internal/entity"
	"github.com/crmbase/lead-manager/internal/infra/auth"
)

// TokenCookieName is the cookie fallback for clients that do not send
// a bearer header.
const TokenCookieName = "Token"

type contextKey struct{}

var userKey = contextKey{}

// AuthUser is the decoded identity of the caller, placed in the
// request context by Authenticate.
type AuthUser struct {
	ID   string
	Role entity.Role
}

type TokenParser interface {
	Parse(raw string) (*auth.Claims, error)
}

// Authenticate extracts the session token from the Authorization
// header or the Token cookie, verifies it and stores the caller's
// identity in the request context. Missing token is a 401; an invalid
// or expired one is a 403.
func Authenticate(parser TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := extractToken(r)
			if raw == "" {
				denied(w, http.StatusUnauthorized, "No token provided")
				return
			}

			claims, err := parser.Parse(raw)
			if err != nil {
				denied(w, http.StatusForbidden, "Invalid or expired token")
				return
			}

			user := AuthUser{ID: claims.UserID, Role: claims.Role}
			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

// RequireRole rejects callers whose role is not in the allowed set.
func RequireRole(roles ...entity.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := CurrentUser(r.Context())
			if !ok {
				denied(w, http.StatusUnauthorized, "No token provided")
				return
			}
			for _, role := range roles {
				if user.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			denied(w, http.StatusForbidden, "Insufficient permissions")
		})
	}
}

func WithUser(ctx context.Context, user AuthUser) context.Context {
	return context.WithValue(ctx, userKey, user)
}

func CurrentUser(ctx context.Context) (AuthUser, bool) {
	user, ok := ctx.Value(userKey).(AuthUser)
	return user, ok
}

func extractToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	if cookie, err := r.Cookie(TokenCookieName); err == nil {
		return cookie.Value
	}
	return ""
}

func denied(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"message": message,
	})
}
