package services

import (
	"context"
	"fmt"
	"slices"
	"time"

	"dj-site/dto"
	"dj-site/internal/models"
	"dj-site/internal/repository"
)

type AdminService struct {
	events   *EventService
	settings *SettingsService
	messages *MessageService
	diag     repository.Diagnostics
	timeout  time.Duration
}

func NewAdminService(events *EventService, settings *SettingsService, messages *MessageService, diag repository.Diagnostics, timeout time.Duration) *AdminService {
	return &AdminService{events: events, settings: settings, messages: messages, diag: diag, timeout: timeout}
}

// Dashboard gathers everything the admin console shows on load.
func (s *AdminService) Dashboard(ctx context.Context) (dto.DashboardResponse, error) {
	events, err := s.events.List(ctx)
	if err != nil {
		return dto.DashboardResponse{}, err
	}
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return dto.DashboardResponse{}, err
	}
	messages, err := s.messages.List(ctx)
	if err != nil {
		return dto.DashboardResponse{}, err
	}
	unread := 0
	for _, m := range messages {
		if m.Status == models.MessageStatusNew {
			unread++
		}
	}
	return dto.DashboardResponse{Events: events, Settings: settings, Messages: messages, Unread: unread}, nil
}

// Diagnostics lists the database's collections as a connection check.
func (s *AdminService) Diagnostics(ctx context.Context) (dto.DiagnosticsResult, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	names, err := s.diag.CollectionNames(ctx)
	if err != nil {
		return dto.DiagnosticsResult{}, fmt.Errorf("list collections: %w", err)
	}
	slices.Sort(names)
	return dto.DiagnosticsResult{
		Message:                  "MongoDB connection successful",
		Collections:              names,
		MessagesCollectionExists: slices.Contains(names, repository.CollMessages),
	}, nil
}
