package middleware

import (
	"context"
	"net/http"
	"strings"

	"retreat-backoffice/internal/model"
)

// AdminTokenCookie is the cookie the admin panel stores its session in.
// The Authorization header takes precedence when both are present.
const AdminTokenCookie = "admin-token"

type verifier interface {
	Verify(ctx context.Context, token string) (model.PublicUser, error)
	IsActiveAdmin(ctx context.Context, userID string) (bool, error)
}

type contextKey string

const authUserContextKey contextKey = "auth_user"

// AuthMiddleware is the access guard: every guarded operation goes through
// it server-side, with no reliance on client-side route checks.
type AuthMiddleware struct {
	verifier verifier
}

func NewAuthMiddleware(v verifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: v}
}

// RequireAuth extracts the bearer token, re-validates it against the
// database, and stores the live user projection in the request context.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := ExtractToken(r)
		if token == "" {
			writeDeny(w, http.StatusUnauthorized, "NO_TOKEN", "authentication required")
			return
		}

		user, err := m.verifier.Verify(r.Context(), token)
		if err != nil {
			writeDeny(w, http.StatusUnauthorized, "INVALID_TOKEN", "invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), authUserContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole applies the role hierarchy: the held role must rank at or
// above the required one. The denial body is uniform and does not reveal
// whether the guarded resource exists.
func (m *AuthMiddleware) RequireRole(required model.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := UserFromContext(r.Context())
			if !ok {
				writeDeny(w, http.StatusUnauthorized, "NO_TOKEN", "authentication required")
				return
			}

			if !user.Role.Satisfies(required) {
				writeDeny(w, http.StatusForbidden, "FORBIDDEN", "insufficient permissions")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin is the strict variant for the highest-privilege endpoints.
// Beyond the role check it re-verifies role = 'admin' AND active at the
// database, rather than trusting the decoded role.
func (m *AuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		if !ok {
			writeDeny(w, http.StatusUnauthorized, "NO_TOKEN", "authentication required")
			return
		}

		if !user.Role.Satisfies(model.RoleAdmin) {
			writeDeny(w, http.StatusForbidden, "ADMIN_ONLY", "admin access required")
			return
		}

		isAdmin, err := m.verifier.IsActiveAdmin(r.Context(), user.ID)
		if err != nil || !isAdmin {
			writeDeny(w, http.StatusForbidden, "ADMIN_ONLY", "admin access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// ExtractToken pulls the session token from the Authorization header or,
// failing that, the admin-token cookie.
func ExtractToken(r *http.Request) string {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if header != "" && strings.HasPrefix(strings.ToLower(header), "bearer ") {
		return strings.TrimSpace(header[7:])
	}

	if cookie, err := r.Cookie(AdminTokenCookie); err == nil {
		return strings.TrimSpace(cookie.Value)
	}

	return ""
}

func UserFromContext(ctx context.Context) (model.PublicUser, bool) {
	user, ok := ctx.Value(authUserContextKey).(model.PublicUser)
	return user, ok
}

func writeDeny(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, model.APIResponse{
		Success: false,
		Message: message,
		Error:   code,
	})
}
