package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"retreat-backoffice/internal/model"
	"retreat-backoffice/internal/repository"
)

type ProgramService struct {
	programs *repository.ProgramRepository
}

func NewProgramService(programs *repository.ProgramRepository) *ProgramService {
	return &ProgramService{programs: programs}
}

func (s *ProgramService) ListActive(ctx context.Context) ([]model.Program, error) {
	return s.programs.List(ctx, true)
}

func (s *ProgramService) ListAll(ctx context.Context) ([]model.Program, error) {
	return s.programs.List(ctx, false)
}

func (s *ProgramService) Get(ctx context.Context, id string) (model.Program, error) {
	return s.programs.FindByID(ctx, id)
}

func (s *ProgramService) Create(ctx context.Context, req model.ProgramRequest) (model.Program, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" || req.PriceCents < 0 {
		return model.Program{}, model.ErrInvalidInput
	}

	now := time.Now().UTC()
	program := model.Program{
		ID:          uuid.NewString(),
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		Duration:    strings.TrimSpace(req.Duration),
		PriceCents:  req.PriceCents,
		Active:      req.Active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.programs.Create(ctx, program); err != nil {
		return model.Program{}, err
	}
	return program, nil
}

func (s *ProgramService) Update(ctx context.Context, id string, req model.ProgramRequest) (model.Program, error) {
	program, err := s.programs.FindByID(ctx, id)
	if err != nil {
		return model.Program{}, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" || req.PriceCents < 0 {
		return model.Program{}, model.ErrInvalidInput
	}

	program.Name = name
	program.Description = strings.TrimSpace(req.Description)
	program.Duration = strings.TrimSpace(req.Duration)
	program.PriceCents = req.PriceCents
	program.Active = req.Active
	program.UpdatedAt = time.Now().UTC()

	if err := s.programs.Update(ctx, program); err != nil {
		return model.Program{}, err
	}
	return program, nil
}

func (s *ProgramService) Delete(ctx context.Context, id string) error {
	return s.programs.Delete(ctx, id)
}
