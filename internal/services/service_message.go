package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"dj-site/dto"
	"dj-site/internal/logger"
	"dj-site/internal/models"
	"dj-site/internal/repository"
	"dj-site/internal/validate"
)

const resourceMessage = "Message"

type MessageService struct {
	messages repository.MessageRepository
	timeout  time.Duration
	now      func() time.Time
}

func NewMessageService(messages repository.MessageRepository, timeout time.Duration) *MessageService {
	return &MessageService{messages: messages, timeout: timeout, now: time.Now}
}

// Create stores a contact-form submission. Input is checked completely
// before anything is written.
func (s *MessageService) Create(ctx context.Context, req dto.MessageCreateRequest) (*models.Message, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Message = strings.TrimSpace(req.Message)
	if req.Name == "" || req.Email == "" || req.Message == "" {
		return nil, invalid("name", "Name, email, and message are required")
	}
	if err := validate.Struct(ctx, req); err != nil {
		return nil, fromValidate(err)
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	now := s.now().UTC()
	m := &models.Message{
		Name:      req.Name,
		Email:     req.Email,
		Message:   req.Message,
		Status:    models.MessageStatusNew,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.messages.Insert(ctx, m); err != nil {
		return nil, fmt.Errorf("insert message: %w", err)
	}
	log.Info().Str(logger.FldMessageID, m.ID.Hex()).Msg("message received")
	return m, nil
}

func (s *MessageService) List(ctx context.Context) ([]models.Message, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	messages, err := s.messages.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return messages, nil
}

func (s *MessageService) Delete(ctx context.Context, req dto.MessageDeleteRequest) error {
	if err := validate.Struct(ctx, req); err != nil {
		return fromValidate(err)
	}
	id, err := parseID(req.MessageID, resourceMessage)
	if err != nil {
		return err
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.messages.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &NotFoundError{Resource: resourceMessage}
		}
		return fmt.Errorf("delete message: %w", err)
	}
	return nil
}

func (s *MessageService) UpdateStatus(ctx context.Context, req dto.MessageStatusRequest) error {
	if err := validate.Struct(ctx, req); err != nil {
		return fromValidate(err)
	}
	id, err := parseID(req.MessageID, resourceMessage)
	if err != nil {
		return err
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	err = s.messages.UpdateStatus(ctx, id, models.MessageStatus(req.Status), s.now().UTC())
	if errors.Is(err, repository.ErrNotFound) {
		return &NotFoundError{Resource: resourceMessage}
	}
	if err != nil {
		return fmt.Errorf("update message status: %w", err)
	}
	return nil
}
