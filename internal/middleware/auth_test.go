package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"retreat-backoffice/internal/model"
)

type fakeVerifier struct {
	user     model.PublicUser
	err      error
	isAdmin  bool
	adminErr error
	gotToken string
}

func (f *fakeVerifier) Verify(_ context.Context, token string) (model.PublicUser, error) {
	f.gotToken = token
	if f.err != nil {
		return model.PublicUser{}, f.err
	}
	return f.user, nil
}

func (f *fakeVerifier) IsActiveAdmin(_ context.Context, _ string) (bool, error) {
	return f.isAdmin, f.adminErr
}

func okHandler(t *testing.T, sawUser *model.PublicUser) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if sawUser != nil {
			user, ok := UserFromContext(r.Context())
			require.True(t, ok)
			*sawUser = user
		}
		w.WriteHeader(http.StatusOK)
	})
}

func decodeDeny(t *testing.T, rec *httptest.ResponseRecorder) model.APIResponse {
	t.Helper()
	var resp model.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.False(t, resp.Success)
	return resp
}

func TestRequireAuthNoToken(t *testing.T) {
	guard := NewAuthMiddleware(&fakeVerifier{})
	handler := guard.RequireAuth(okHandler(t, nil))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/posts", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "NO_TOKEN", decodeDeny(t, rec).Error)
}

func TestRequireAuthInvalidToken(t *testing.T) {
	guard := NewAuthMiddleware(&fakeVerifier{err: model.ErrInvalidToken})
	handler := guard.RequireAuth(okHandler(t, nil))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/posts", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_TOKEN", decodeDeny(t, rec).Error)
}

func TestRequireAuthDeactivatedUser(t *testing.T) {
	guard := NewAuthMiddleware(&fakeVerifier{err: model.ErrUserNotFoundOrInactive})
	handler := guard.RequireAuth(okHandler(t, nil))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/posts", nil)
	req.Header.Set("Authorization", "Bearer stale-but-signed")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuthHeaderToken(t *testing.T) {
	verifier := &fakeVerifier{user: model.PublicUser{ID: "u1", Role: model.RoleEditor}}
	guard := NewAuthMiddleware(verifier)

	var seen model.PublicUser
	handler := guard.RequireAuth(okHandler(t, &seen))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/posts", nil)
	req.Header.Set("Authorization", "Bearer header-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "header-token", verifier.gotToken)
	assert.Equal(t, "u1", seen.ID)
}

func TestRequireAuthCookieToken(t *testing.T) {
	verifier := &fakeVerifier{user: model.PublicUser{ID: "u1", Role: model.RoleEditor}}
	guard := NewAuthMiddleware(verifier)
	handler := guard.RequireAuth(okHandler(t, nil))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/posts", nil)
	req.AddCookie(&http.Cookie{Name: AdminTokenCookie, Value: "cookie-token"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "cookie-token", verifier.gotToken)
}

func TestRequireAuthHeaderWinsOverCookie(t *testing.T) {
	verifier := &fakeVerifier{user: model.PublicUser{ID: "u1", Role: model.RoleEditor}}
	guard := NewAuthMiddleware(verifier)
	handler := guard.RequireAuth(okHandler(t, nil))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/posts", nil)
	req.Header.Set("Authorization", "Bearer header-token")
	req.AddCookie(&http.Cookie{Name: AdminTokenCookie, Value: "cookie-token"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "header-token", verifier.gotToken)
}

func TestRequireRole(t *testing.T) {
	cases := []struct {
		name     string
		held     model.Role
		required model.Role
		want     int
	}{
		{"editor denied admin", model.RoleEditor, model.RoleAdmin, http.StatusForbidden},
		{"editor allowed editor", model.RoleEditor, model.RoleEditor, http.StatusOK},
		{"admin allowed editor", model.RoleAdmin, model.RoleEditor, http.StatusOK},
		{"user denied moderator", model.RoleUser, model.RoleModerator, http.StatusForbidden},
		{"unknown role denied everything", model.Role("superuser"), model.RoleUser, http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			verifier := &fakeVerifier{user: model.PublicUser{ID: "u1", Role: tc.held}}
			guard := NewAuthMiddleware(verifier)
			handler := guard.RequireAuth(guard.RequireRole(tc.required)(okHandler(t, nil)))

			req := httptest.NewRequest(http.MethodGet, "/api/admin/posts", nil)
			req.Header.Set("Authorization", "Bearer token")
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tc.want, rec.Code)
			if tc.want == http.StatusForbidden {
				assert.Equal(t, "FORBIDDEN", decodeDeny(t, rec).Error)
			}
		})
	}
}

func TestRequireRoleWithoutAuthContext(t *testing.T) {
	guard := NewAuthMiddleware(&fakeVerifier{})
	handler := guard.RequireRole(model.RoleEditor)(okHandler(t, nil))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/posts", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAdmin(t *testing.T) {
	t.Run("non-admin role denied", func(t *testing.T) {
		verifier := &fakeVerifier{user: model.PublicUser{ID: "u1", Role: model.RoleModerator}, isAdmin: true}
		guard := NewAuthMiddleware(verifier)
		handler := guard.RequireAuth(guard.RequireAdmin(okHandler(t, nil)))

		req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
		req.Header.Set("Authorization", "Bearer token")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "ADMIN_ONLY", decodeDeny(t, rec).Error)
	})

	t.Run("decoded admin role is not trusted without DB recheck", func(t *testing.T) {
		verifier := &fakeVerifier{user: model.PublicUser{ID: "u1", Role: model.RoleAdmin}, isAdmin: false}
		guard := NewAuthMiddleware(verifier)
		handler := guard.RequireAuth(guard.RequireAdmin(okHandler(t, nil)))

		req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
		req.Header.Set("Authorization", "Bearer token")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "ADMIN_ONLY", decodeDeny(t, rec).Error)
	})

	t.Run("active admin allowed", func(t *testing.T) {
		verifier := &fakeVerifier{user: model.PublicUser{ID: "u1", Role: model.RoleAdmin}, isAdmin: true}
		guard := NewAuthMiddleware(verifier)
		handler := guard.RequireAuth(guard.RequireAdmin(okHandler(t, nil)))

		req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
		req.Header.Set("Authorization", "Bearer token")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestExtractToken(t *testing.T) {
	t.Run("missing everywhere", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		assert.Equal(t, "", ExtractToken(req))
	})

	t.Run("malformed header ignored", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		assert.Equal(t, "", ExtractToken(req))
	})

	t.Run("bearer prefix is case-insensitive", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "bearer some-token")
		assert.Equal(t, "some-token", ExtractToken(req))
	})
}
