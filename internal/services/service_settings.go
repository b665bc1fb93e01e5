package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"dj-site/config"
	"dj-site/dto"
	"dj-site/internal/models"
	"dj-site/internal/repository"
	"dj-site/internal/validate"
)

type SettingsService struct {
	repo     repository.SettingsRepository
	defaults config.SiteDefaults
	timeout  time.Duration
	now      func() time.Time
}

func NewSettingsService(repo repository.SettingsRepository, defaults config.SiteDefaults, timeout time.Duration) *SettingsService {
	return &SettingsService{repo: repo, defaults: defaults, timeout: timeout, now: time.Now}
}

// Defaults is the settings document served before anything was saved.
func (s *SettingsService) Defaults() models.SystemSettings {
	slots := s.defaults.MusicSlots
	if slots <= 0 {
		slots = 3
	}
	return models.SystemSettings{
		SoundcloudLinks: make([]models.MusicLink, slots),
		SiteTitle:       s.defaults.SiteTitle,
		ContactEmail:    s.defaults.ContactEmail,
		Theme:           s.defaults.Theme,
		PrimaryColor:    s.defaults.PrimaryColor,
	}
}

func (s *SettingsService) withDefaults(in models.SystemSettings) models.SystemSettings {
	d := s.Defaults()
	if len(in.SoundcloudLinks) == 0 {
		in.SoundcloudLinks = d.SoundcloudLinks
	}
	if in.SiteTitle == "" {
		in.SiteTitle = d.SiteTitle
	}
	if in.ContactEmail == "" {
		in.ContactEmail = d.ContactEmail
	}
	if in.Theme == "" {
		in.Theme = d.Theme
	}
	if in.PrimaryColor == "" {
		in.PrimaryColor = d.PrimaryColor
	}
	return in
}

// Get returns the stored settings, or the defaults when none exist. A
// document still holding plain URL strings as soundcloudLinks is rewritten
// in the {title,url} form before it is returned.
func (s *SettingsService) Get(ctx context.Context) (models.SystemSettings, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	stored, err := s.repo.Get(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return s.Defaults(), nil
	}
	if err != nil {
		return models.SystemSettings{}, fmt.Errorf("get settings: %w", err)
	}

	if stored.Legacy {
		if err := s.repo.ReplaceLinks(ctx, stored.Settings.SoundcloudLinks); err != nil {
			return models.SystemSettings{}, fmt.Errorf("migrate soundcloud links: %w", err)
		}
		log.Info().Int("links", len(stored.Settings.SoundcloudLinks)).Msg("migrated legacy soundcloud links")
	}
	return s.withDefaults(stored.Settings), nil
}

func (s *SettingsService) Public(ctx context.Context) (models.PublicSettings, error) {
	settings, err := s.Get(ctx)
	if err != nil {
		return models.PublicSettings{}, err
	}
	return settings.Public(), nil
}

// Update upserts the one settings document. Fields left empty take the
// default value.
func (s *SettingsService) Update(ctx context.Context, req dto.SettingsUpdateRequest) (models.SystemSettings, error) {
	if err := validate.Struct(ctx, req); err != nil {
		return models.SystemSettings{}, fromValidate(err)
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	now := s.now().UTC()
	settings := s.withDefaults(models.SystemSettings{
		SoundcloudLinks: req.SoundcloudLinks,
		YoutubeLink:     req.YoutubeLink,
		SiteTitle:       req.SiteTitle,
		ContactEmail:    req.ContactEmail,
		MaintenanceMode: req.MaintenanceMode,
		Theme:           req.Theme,
		PrimaryColor:    req.PrimaryColor,
		UpdatedAt:       &now,
	})
	if err := s.repo.Upsert(ctx, settings); err != nil {
		return models.SystemSettings{}, fmt.Errorf("update settings: %w", err)
	}
	return settings, nil
}
