package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/v2/bson"

	"dj-site/dto"
	"dj-site/internal/logger"
	"dj-site/internal/models"
	"dj-site/internal/repository"
	"dj-site/internal/validate"
)

const resourceEvent = "Event"

// Upload is an image file received with an event form.
type Upload struct {
	Reader      io.Reader
	ContentType string
	Size        int64
}

type EventService struct {
	events  repository.EventRepository
	storage *StorageService
	timeout time.Duration
	now     func() time.Time
}

func NewEventService(events repository.EventRepository, storage *StorageService, timeout time.Duration) *EventService {
	return &EventService{events: events, storage: storage, timeout: timeout, now: time.Now}
}

func (s *EventService) List(ctx context.Context) ([]models.Event, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	events, err := s.events.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

// upload stores img under the event naming convention and returns the
// object path and its public URL.
func (s *EventService) upload(ctx context.Context, name string, img *Upload) (string, string, error) {
	if !strings.HasPrefix(img.ContentType, "image/") {
		return "", "", invalid("image", "Image must be an image file")
	}
	path := EventImagePath(name, s.now())
	if err := s.storage.Put(ctx, path, img.ContentType, img.Reader); err != nil {
		return "", "", fmt.Errorf("upload image: %w", err)
	}
	return path, s.storage.URLFor(path), nil
}

// Create stores a new event. An uploaded image is written first; when the
// record write then fails the object is queued for cleanup.
func (s *EventService) Create(ctx context.Context, req dto.EventCreateRequest, img *Upload) (*models.Event, error) {
	if err := validate.Struct(ctx, req); err != nil {
		return nil, fromValidate(err)
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	image := req.Image
	var uploaded string
	if img != nil {
		path, u, err := s.upload(ctx, req.Name, img)
		if err != nil {
			return nil, err
		}
		uploaded, image = path, u
	}

	e := &models.Event{
		Name:      req.Name,
		Address:   req.Address,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Concept:   req.Concept,
		Image:     image,
		Type:      models.EventType(req.Type),
		CreatedAt: s.now().UTC(),
	}
	if err := s.events.Insert(ctx, e); err != nil {
		if uploaded != "" {
			_ = s.storage.Enqueue(ctx, uploaded, "event insert failed")
		}
		return nil, fmt.Errorf("insert event: %w", err)
	}
	log.Info().Str(logger.FldEventID, e.ID.Hex()).Msg("event created")
	return e, nil
}

func patchFrom(req dto.EventUpdateRequest) models.EventPatch {
	p := models.EventPatch{
		Name:      req.Name,
		Address:   req.Address,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Concept:   req.Concept,
		Image:     req.Image,
	}
	if req.Type != nil {
		t := models.EventType(*req.Type)
		p.Type = &t
	}
	return p
}

// Update applies the sent fields. changed is false when the event already
// held every sent value; nothing is written then.
func (s *EventService) Update(ctx context.Context, req dto.EventUpdateRequest, img *Upload) (event *models.Event, changed bool, err error) {
	if err := validate.Struct(ctx, req); err != nil {
		return nil, false, fromValidate(err)
	}
	id, err := parseID(req.ID, resourceEvent)
	if err != nil {
		return nil, false, err
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	current, err := s.events.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, false, &NotFoundError{Resource: resourceEvent}
	}
	if err != nil {
		return nil, false, fmt.Errorf("find event: %w", err)
	}

	patch := patchFrom(req)
	var uploaded string
	if img != nil {
		name := current.Name
		if patch.Name != nil {
			name = *patch.Name
		}
		path, u, err := s.upload(ctx, name, img)
		if err != nil {
			return nil, false, err
		}
		uploaded = path
		patch.Image = &u
	}

	next := *current
	patch.Apply(&next)
	if patch.Empty() || next == *current {
		return current, false, nil
	}

	updated, err := s.events.Update(ctx, id, patch, s.now().UTC())
	if err != nil {
		if uploaded != "" {
			_ = s.storage.Enqueue(ctx, uploaded, "event update failed")
		}
		if errors.Is(err, repository.ErrNotFound) {
			return nil, false, &NotFoundError{Resource: resourceEvent}
		}
		return nil, false, fmt.Errorf("update event: %w", err)
	}

	if current.Image != updated.Image {
		if old, ok := s.storage.PathFor(current.Image); ok {
			s.storage.Remove(ctx, old, "replaced image of event "+id.Hex())
		}
	}
	return updated, true, nil
}

// Delete removes the event record, then its stored image on a best-effort
// basis.
func (s *EventService) Delete(ctx context.Context, rawID string) error {
	if strings.TrimSpace(rawID) == "" {
		return invalid("_id", "Event ID is required")
	}
	id, err := parseID(rawID, resourceEvent)
	if err != nil {
		return err
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	e, err := s.events.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return &NotFoundError{Resource: resourceEvent}
	}
	if err != nil {
		return fmt.Errorf("find event: %w", err)
	}

	if err := s.events.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &NotFoundError{Resource: resourceEvent}
		}
		return fmt.Errorf("delete event: %w", err)
	}
	log.Info().Str(logger.FldEventID, id.Hex()).Msg("event deleted")

	if path, ok := s.storage.PathFor(e.Image); ok {
		s.storage.Remove(ctx, path, "event "+id.Hex()+" deleted")
	}
	return nil
}

// Reorder puts ids first in the given order; unlisted events follow in their
// previous order. Every id must exist and appear once.
func (s *EventService) Reorder(ctx context.Context, rawIDs []string) error {
	if err := validate.Struct(ctx, dto.EventReorderRequest{IDs: rawIDs}); err != nil {
		return fromValidate(err)
	}
	ids := make([]bson.ObjectID, 0, len(rawIDs))
	seen := make(map[bson.ObjectID]bool, len(rawIDs))
	for _, raw := range rawIDs {
		id, err := parseID(raw, resourceEvent)
		if err != nil {
			return err
		}
		if seen[id] {
			return invalid("ids", "Event IDs must be unique")
		}
		seen[id] = true
		ids = append(ids, id)
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.events.Reorder(ctx, ids); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &NotFoundError{Resource: resourceEvent}
		}
		return fmt.Errorf("reorder events: %w", err)
	}
	return nil
}
