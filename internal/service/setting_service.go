package service

import (
	"context"
	"strings"

	"retreat-backoffice/internal/model"
	"retreat-backoffice/internal/repository"
)

type SettingService struct {
	settings *repository.SettingRepository
}

func NewSettingService(settings *repository.SettingRepository) *SettingService {
	return &SettingService{settings: settings}
}

func (s *SettingService) List(ctx context.Context) ([]model.Setting, error) {
	return s.settings.List(ctx)
}

func (s *SettingService) Get(ctx context.Context, key string) (model.Setting, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return model.Setting{}, model.ErrInvalidInput
	}
	return s.settings.Get(ctx, key)
}

func (s *SettingService) Set(ctx context.Context, key string, value string) (model.Setting, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return model.Setting{}, model.ErrInvalidInput
	}

	if err := s.settings.Set(ctx, key, value); err != nil {
		return model.Setting{}, err
	}
	return s.settings.Get(ctx, key)
}
