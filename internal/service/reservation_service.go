package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"retreat-backoffice/internal/event"
	"retreat-backoffice/internal/model"
	"retreat-backoffice/internal/repository"
)

type ReservationService struct {
	reservations *repository.ReservationRepository
	programs     *repository.ProgramRepository
	bus          event.Bus
}

func NewReservationService(reservations *repository.ReservationRepository, programs *repository.ProgramRepository, bus event.Bus) *ReservationService {
	return &ReservationService{reservations: reservations, programs: programs, bus: bus}
}

func (s *ReservationService) List(ctx context.Context) ([]model.Reservation, error) {
	return s.reservations.List(ctx)
}

func (s *ReservationService) Get(ctx context.Context, id string) (model.Reservation, error) {
	return s.reservations.FindByID(ctx, id)
}

// Create is the public booking intake; the program must exist and be
// bookable. New reservations start pending.
func (s *ReservationService) Create(ctx context.Context, req model.CreateReservationRequest) (model.Reservation, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	if name == "" || email == "" || !strings.Contains(email, "@") {
		return model.Reservation{}, model.ErrInvalidInput
	}

	date, err := time.Parse(time.RFC3339, strings.TrimSpace(req.Date))
	if err != nil {
		return model.Reservation{}, model.ErrInvalidInput
	}

	program, err := s.programs.FindByID(ctx, strings.TrimSpace(req.ProgramID))
	if err != nil {
		return model.Reservation{}, err
	}
	if !program.Active {
		return model.Reservation{}, model.ErrProgramNotFound
	}

	now := time.Now().UTC()
	reservation := model.Reservation{
		ID:        uuid.NewString(),
		ProgramID: program.ID,
		Name:      name,
		Email:     email,
		Phone:     strings.TrimSpace(req.Phone),
		Date:      date,
		Status:    model.ReservationPending,
		Notes:     strings.TrimSpace(req.Notes),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.reservations.Create(ctx, reservation); err != nil {
		return model.Reservation{}, err
	}

	s.publish(event.TypeReservationCreated, reservation)
	return reservation, nil
}

func (s *ReservationService) UpdateStatus(ctx context.Context, id string, req model.UpdateReservationRequest) (model.Reservation, error) {
	reservation, err := s.reservations.FindByID(ctx, id)
	if err != nil {
		return model.Reservation{}, err
	}

	status := model.ReservationStatus(strings.TrimSpace(req.Status))
	if !status.Valid() {
		return model.Reservation{}, model.ErrInvalidInput
	}

	reservation.Status = status
	if strings.TrimSpace(req.Notes) != "" {
		reservation.Notes = strings.TrimSpace(req.Notes)
	}
	reservation.UpdatedAt = time.Now().UTC()

	if err := s.reservations.UpdateStatus(ctx, reservation); err != nil {
		return model.Reservation{}, err
	}

	s.publish(event.TypeReservationUpdated, reservation)
	return reservation, nil
}

func (s *ReservationService) Delete(ctx context.Context, id string) error {
	return s.reservations.Delete(ctx, id)
}

func (s *ReservationService) publish(t event.Type, payload any) {
	if s.bus == nil {
		return
	}
	s.bus.Publish(event.Event{
		ID:        uuid.NewString(),
		Type:      t,
		Payload:   payload,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
