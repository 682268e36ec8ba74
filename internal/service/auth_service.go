package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"retreat-backoffice/internal/auth"
	"retreat-backoffice/internal/crypto"
	"retreat-backoffice/internal/model"
)

// UserStore is the slice of the user repository the authenticator needs.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (model.User, error)
	FindByID(ctx context.Context, id string) (model.User, error)
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
	IsActiveAdmin(ctx context.Context, id string) (bool, error)
}

type LoginResult struct {
	Token string
	User  model.PublicUser
}

type AuthService struct {
	users UserStore
	codec *auth.Codec
}

func NewAuthService(users UserStore, codec *auth.Codec) *AuthService {
	return &AuthService{users: users, codec: codec}
}

// Login validates credentials and issues a session token.
//
// Lookup is by exact email match. A missing user and a wrong password both
// yield ErrInvalidCredentials; a disabled account yields the distinct
// ErrAccountDisabled kind, which handlers map to the same client message.
func (s *AuthService) Login(ctx context.Context, email string, password string) (LoginResult, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return LoginResult{}, model.ErrInvalidCredentials
		}
		return LoginResult{}, err
	}

	if !user.Active {
		return LoginResult{}, model.ErrAccountDisabled
	}

	if !crypto.CheckPassword(user.PasswordHash, password) {
		return LoginResult{}, model.ErrInvalidCredentials
	}

	s.touchLastLogin(ctx, user.ID)

	token, err := s.codec.Issue(user)
	if err != nil {
		return LoginResult{}, err
	}

	return LoginResult{Token: token, User: user.Public()}, nil
}

// Verify checks the token's signature and expiry, then re-validates the
// user against the database. The returned projection carries the current
// role from the row, not the role embedded in the token, so role changes
// and deactivation take effect on the next request without reissuing.
func (s *AuthService) Verify(ctx context.Context, token string) (model.PublicUser, error) {
	claims, err := s.codec.Parse(token)
	if err != nil {
		return model.PublicUser{}, model.ErrInvalidToken
	}

	user, err := s.users.FindByID(ctx, claims.UserID())
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return model.PublicUser{}, model.ErrUserNotFoundOrInactive
		}
		return model.PublicUser{}, err
	}
	if !user.Active {
		return model.PublicUser{}, model.ErrUserNotFoundOrInactive
	}

	s.touchLastLogin(ctx, user.ID)

	return user.Public(), nil
}

// IsActiveAdmin re-runs the admin predicate at the database rather than
// trusting the decoded role. Used by the strict admin guard.
func (s *AuthService) IsActiveAdmin(ctx context.Context, userID string) (bool, error) {
	return s.users.IsActiveAdmin(ctx, userID)
}

// touchLastLogin is best-effort: a failed timestamp update must never fail
// the login or verification itself.
func (s *AuthService) touchLastLogin(ctx context.Context, userID string) {
	if err := s.users.UpdateLastLogin(ctx, userID, time.Now().UTC()); err != nil {
		slog.Warn("failed to update last login", "user_id", userID, "error", err)
	}
}
