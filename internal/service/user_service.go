package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"retreat-backoffice/internal/crypto"
	"retreat-backoffice/internal/model"
	"retreat-backoffice/internal/repository"
)

// UserService backs the admin-only user management endpoints.
type UserService struct {
	users *repository.UserRepository
}

func NewUserService(users *repository.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) List(ctx context.Context) ([]model.PublicUser, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]model.PublicUser, 0, len(users))
	for _, u := range users {
		out = append(out, u.Public())
	}
	return out, nil
}

func (s *UserService) Create(ctx context.Context, req model.CreateUserRequest) (model.PublicUser, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	if name == "" || email == "" || len(req.Password) < 8 {
		return model.PublicUser{}, model.ErrInvalidInput
	}

	role, err := model.ParseRole(strings.TrimSpace(req.Role))
	if err != nil {
		return model.PublicUser{}, model.ErrInvalidInput
	}

	taken, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return model.PublicUser{}, err
	}
	if taken {
		return model.PublicUser{}, model.ErrEmailTaken
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return model.PublicUser{}, err
	}

	now := time.Now().UTC()
	user := model.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return model.PublicUser{}, err
	}
	return user.Public(), nil
}

// Update changes name, role, or active flag. Demoting or deactivating the
// last active admin is rejected so the back-office cannot lock itself out.
func (s *UserService) Update(ctx context.Context, id string, req model.UpdateUserRequest) (model.PublicUser, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return model.PublicUser{}, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return model.PublicUser{}, model.ErrInvalidInput
		}
		user.Name = name
	}

	losesAdmin := false

	if req.Role != nil {
		role, err := model.ParseRole(strings.TrimSpace(*req.Role))
		if err != nil {
			return model.PublicUser{}, model.ErrInvalidInput
		}
		if user.Role == model.RoleAdmin && role != model.RoleAdmin {
			losesAdmin = true
		}
		user.Role = role
	}

	if req.Active != nil {
		if user.Role == model.RoleAdmin && user.Active && !*req.Active {
			losesAdmin = true
		}
		user.Active = *req.Active
	}

	if losesAdmin {
		admins, err := s.users.CountActiveAdmins(ctx)
		if err != nil {
			return model.PublicUser{}, err
		}
		if admins <= 1 {
			return model.PublicUser{}, model.ErrLastAdmin
		}
	}

	user.UpdatedAt = time.Now().UTC()
	if err := s.users.Update(ctx, user); err != nil {
		return model.PublicUser{}, err
	}
	return user.Public(), nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if user.Role == model.RoleAdmin && user.Active {
		admins, err := s.users.CountActiveAdmins(ctx)
		if err != nil {
			return err
		}
		if admins <= 1 {
			return model.ErrLastAdmin
		}
	}

	return s.users.Delete(ctx, id)
}
