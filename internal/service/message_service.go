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

type MessageService struct {
	messages *repository.MessageRepository
	bus      event.Bus
}

func NewMessageService(messages *repository.MessageRepository, bus event.Bus) *MessageService {
	return &MessageService{messages: messages, bus: bus}
}

func (s *MessageService) List(ctx context.Context) ([]model.Message, error) {
	return s.messages.List(ctx)
}

func (s *MessageService) CountUnread(ctx context.Context) (int, error) {
	return s.messages.CountUnread(ctx)
}

// Create is the public contact-form intake.
func (s *MessageService) Create(ctx context.Context, req model.CreateMessageRequest) (model.Message, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	body := strings.TrimSpace(req.Body)
	if name == "" || body == "" || !strings.Contains(email, "@") {
		return model.Message{}, model.ErrInvalidInput
	}

	message := model.Message{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Subject:   strings.TrimSpace(req.Subject),
		Body:      body,
		Read:      false,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.messages.Create(ctx, message); err != nil {
		return model.Message{}, err
	}

	if s.bus != nil {
		s.bus.Publish(event.Event{
			ID:        uuid.NewString(),
			Type:      event.TypeMessageReceived,
			Payload:   message,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	}

	return message, nil
}

func (s *MessageService) MarkRead(ctx context.Context, id string) error {
	return s.messages.MarkRead(ctx, id)
}

func (s *MessageService) Delete(ctx context.Context, id string) error {
	return s.messages.Delete(ctx, id)
}
