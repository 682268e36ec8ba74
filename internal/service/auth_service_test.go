package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"retreat-backoffice/internal/auth"
	"retreat-backoffice/internal/crypto"
	"retreat-backoffice/internal/model"
)

type fakeUserStore struct {
	users          map[string]model.User // keyed by id
	failLastLogin  bool
	lastLoginCalls int
}

func newFakeUserStore(users ...model.User) *fakeUserStore {
	store := &fakeUserStore{users: map[string]model.User{}}
	for _, u := range users {
		store.users[u.ID] = u
	}
	return store
}

func (s *fakeUserStore) FindByEmail(_ context.Context, email string) (model.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return model.User{}, model.ErrUserNotFound
}

func (s *fakeUserStore) FindByID(_ context.Context, id string) (model.User, error) {
	u, ok := s.users[id]
	if !ok {
		return model.User{}, model.ErrUserNotFound
	}
	return u, nil
}

func (s *fakeUserStore) UpdateLastLogin(_ context.Context, id string, at time.Time) error {
	s.lastLoginCalls++
	if s.failLastLogin {
		return errors.New("connection reset")
	}
	u, ok := s.users[id]
	if !ok {
		return model.ErrUserNotFound
	}
	u.LastLogin = &at
	s.users[id] = u
	return nil
}

func (s *fakeUserStore) IsActiveAdmin(_ context.Context, id string) (bool, error) {
	u, ok := s.users[id]
	return ok && u.Role == model.RoleAdmin && u.Active, nil
}

func (s *fakeUserStore) setRole(id string, role model.Role) {
	u := s.users[id]
	u.Role = role
	s.users[id] = u
}

func (s *fakeUserStore) setActive(id string, active bool) {
	u := s.users[id]
	u.Active = active
	s.users[id] = u
}

func seedUser(t *testing.T, email string, password string, role model.Role, active bool) model.User {
	t.Helper()
	hash, err := crypto.HashPassword(password)
	require.NoError(t, err)

	now := time.Now().UTC()
	return model.User{
		ID:           "user-" + strings.SplitN(email, "@", 2)[0],
		Name:         "Seeded User",
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Active:       active,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func newTestAuthService(t *testing.T, users ...model.User) (*AuthService, *fakeUserStore) {
	t.Helper()
	store := newFakeUserStore(users...)
	codec := auth.NewCodec("test-secret", 7*24*time.Hour)
	return NewAuthService(store, codec), store
}

func TestLoginAndVerify(t *testing.T) {
	user := seedUser(t, "a@x.com", "Password123!", model.RoleEditor, true)
	svc, store := newTestAuthService(t, user)

	result, err := svc.Login(context.Background(), "a@x.com", "Password123!")
	require.NoError(t, err)
	require.NotEmpty(t, result.Token)
	assert.Equal(t, user.ID, result.User.ID)
	assert.Equal(t, "a@x.com", result.User.Email)
	assert.Equal(t, model.RoleEditor, result.User.Role)
	assert.Equal(t, 1, store.lastLoginCalls)

	verified, err := svc.Verify(context.Background(), result.Token)
	require.NoError(t, err)
	assert.Equal(t, result.User, verified)
	assert.Equal(t, 2, store.lastLoginCalls)
}

func TestLoginUnknownEmailAndWrongPasswordAreIndistinguishable(t *testing.T) {
	svc, _ := newTestAuthService(t, seedUser(t, "a@x.com", "Password123!", model.RoleUser, true))

	_, errUnknown := svc.Login(context.Background(), "nobody@x.com", "whatever")
	_, errWrong := svc.Login(context.Background(), "a@x.com", "not the password")

	require.ErrorIs(t, errUnknown, model.ErrInvalidCredentials)
	require.ErrorIs(t, errWrong, model.ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrong.Error())
}

func TestLoginEmailIsCaseSensitive(t *testing.T) {
	svc, _ := newTestAuthService(t, seedUser(t, "a@x.com", "Password123!", model.RoleUser, true))

	_, err := svc.Login(context.Background(), "A@X.com", "Password123!")
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestLoginDisabledAccount(t *testing.T) {
	svc, _ := newTestAuthService(t, seedUser(t, "a@x.com", "Password123!", model.RoleUser, false))

	_, err := svc.Login(context.Background(), "a@x.com", "Password123!")
	assert.ErrorIs(t, err, model.ErrAccountDisabled)
}

func TestLoginSurvivesLastLoginFailure(t *testing.T) {
	svc, store := newTestAuthService(t, seedUser(t, "a@x.com", "Password123!", model.RoleUser, true))
	store.failLastLogin = true

	result, err := svc.Login(context.Background(), "a@x.com", "Password123!")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)

	_, err = svc.Verify(context.Background(), result.Token)
	assert.NoError(t, err)
}

func TestVerifyReturnsCurrentRoleNotTokenRole(t *testing.T) {
	user := seedUser(t, "a@x.com", "Password123!", model.RoleEditor, true)
	svc, store := newTestAuthService(t, user)

	result, err := svc.Login(context.Background(), "a@x.com", "Password123!")
	require.NoError(t, err)

	// Role changes after issuance take effect on the next verification,
	// without reissuing the token.
	store.setRole(user.ID, model.RoleUser)
	downgraded, err := svc.Verify(context.Background(), result.Token)
	require.NoError(t, err)
	assert.Equal(t, model.RoleUser, downgraded.Role)

	store.setRole(user.ID, model.RoleAdmin)
	upgraded, err := svc.Verify(context.Background(), result.Token)
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, upgraded.Role)
}

func TestVerifyAfterDeactivation(t *testing.T) {
	user := seedUser(t, "a@x.com", "Password123!", model.RoleEditor, true)
	svc, store := newTestAuthService(t, user)

	result, err := svc.Login(context.Background(), "a@x.com", "Password123!")
	require.NoError(t, err)

	// The token is still unexpired and correctly signed; deactivation
	// must invalidate it anyway.
	store.setActive(user.ID, false)
	_, err = svc.Verify(context.Background(), result.Token)
	assert.ErrorIs(t, err, model.ErrUserNotFoundOrInactive)
}

func TestVerifyDeletedUser(t *testing.T) {
	user := seedUser(t, "a@x.com", "Password123!", model.RoleEditor, true)
	svc, store := newTestAuthService(t, user)

	result, err := svc.Login(context.Background(), "a@x.com", "Password123!")
	require.NoError(t, err)

	delete(store.users, user.ID)
	_, err = svc.Verify(context.Background(), result.Token)
	assert.ErrorIs(t, err, model.ErrUserNotFoundOrInactive)
}

func TestVerifyInvalidToken(t *testing.T) {
	svc, _ := newTestAuthService(t, seedUser(t, "a@x.com", "Password123!", model.RoleUser, true))

	_, err := svc.Verify(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, model.ErrInvalidToken)
}

func TestVerifyExpiredToken(t *testing.T) {
	user := seedUser(t, "a@x.com", "Password123!", model.RoleUser, true)
	store := newFakeUserStore(user)
	expiredCodec := auth.NewCodec("test-secret", -time.Minute)
	svc := NewAuthService(store, expiredCodec)

	token, err := expiredCodec.Issue(user)
	require.NoError(t, err)

	_, err = svc.Verify(context.Background(), token)
	assert.ErrorIs(t, err, model.ErrInvalidToken)
}

func TestIsActiveAdmin(t *testing.T) {
	admin := seedUser(t, "admin@x.com", "Password123!", model.RoleAdmin, true)
	editor := seedUser(t, "editor@x.com", "Password123!", model.RoleEditor, true)
	svc, store := newTestAuthService(t, admin, editor)

	ok, err := svc.IsActiveAdmin(context.Background(), admin.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.IsActiveAdmin(context.Background(), editor.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	store.setActive(admin.ID, false)
	ok, err = svc.IsActiveAdmin(context.Background(), admin.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}
