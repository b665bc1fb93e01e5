package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"dj-site/internal/logger"
	"dj-site/internal/models"
	"dj-site/internal/repository"
)

const sweepBatch = 100

// StorageService owns stored images: uploads, public URLs, and the cleanup
// outbox for objects that could not be removed when their record changed.
type StorageService struct {
	objects repository.ObjectStore
	tasks   repository.CleanupRepository
	baseURL string
	timeout time.Duration
	batch   int
	now     func() time.Time
}

func NewStorageService(objects repository.ObjectStore, tasks repository.CleanupRepository, baseURL string, timeout time.Duration) *StorageService {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &StorageService{
		objects: objects,
		tasks:   tasks,
		baseURL: baseURL,
		timeout: timeout,
		batch:   sweepBatch,
		now:     time.Now,
	}
}

// EventImagePath follows the events/{name}_{unixMillis}.jpg convention.
func EventImagePath(name string, at time.Time) string {
	name = strings.ReplaceAll(strings.TrimSpace(name), "/", "-")
	return fmt.Sprintf("events/%s_%d.jpg", name, at.UnixMilli())
}

// URLFor returns the public URL served for path.
func (s *StorageService) URLFor(path string) string {
	segments := strings.Split(path, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return s.baseURL + strings.Join(segments, "/")
}

// PathFor is the inverse of URLFor. Images hosted elsewhere are not ours to
// delete and report false.
func (s *StorageService) PathFor(imageURL string) (string, bool) {
	rest, ok := strings.CutPrefix(imageURL, s.baseURL)
	if !ok || rest == "" {
		return "", false
	}
	path, err := url.PathUnescape(rest)
	if err != nil {
		return "", false
	}
	return path, true
}

func (s *StorageService) Put(ctx context.Context, path, contentType string, r io.Reader) error {
	return s.objects.Put(ctx, path, contentType, r)
}

func (s *StorageService) Open(ctx context.Context, path string) (*repository.Object, error) {
	obj, err := s.objects.Open(ctx, path)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, &NotFoundError{Resource: "Image"}
	}
	return obj, err
}

// Enqueue records path for a later sweep. It runs detached from ctx's
// cancellation so a timed-out request still leaves a task behind.
func (s *StorageService) Enqueue(ctx context.Context, path, reason string) error {
	ctx, cancel := withTimeout(context.WithoutCancel(ctx), s.timeout)
	defer cancel()

	task := &models.CleanupTask{Path: path, Reason: reason, CreatedAt: s.now().UTC()}
	if err := s.tasks.Add(ctx, task); err != nil {
		log.Error().Err(err).Str(logger.FldObject, path).Msg("cleanup task not recorded")
		return err
	}
	log.Warn().Str(logger.FldObject, path).Str("reason", reason).Msg("cleanup task recorded")
	return nil
}

// Remove deletes path now and falls back to the outbox on failure.
func (s *StorageService) Remove(ctx context.Context, path, reason string) {
	err := s.objects.Delete(ctx, path)
	if err == nil || errors.Is(err, repository.ErrNotFound) {
		return
	}
	log.Warn().Err(err).Str(logger.FldObject, path).Msg("image delete failed")
	_ = s.Enqueue(ctx, path, reason+": "+err.Error())
}

// Sweep works through one batch of pending cleanup tasks, least-tried first,
// so tasks that keep failing cannot starve newer ones. A missing object
// counts as removed.
func (s *StorageService) Sweep(ctx context.Context) (removed, failed int, err error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	tasks, err := s.tasks.Pending(ctx, s.batch)
	if err != nil {
		return 0, 0, fmt.Errorf("list cleanup tasks: %w", err)
	}
	for _, t := range tasks {
		delErr := s.objects.Delete(ctx, t.Path)
		if delErr != nil && !errors.Is(delErr, repository.ErrNotFound) {
			failed++
			if err := s.tasks.MarkFailed(ctx, t.ID, delErr.Error()); err != nil {
				return removed, failed, fmt.Errorf("mark cleanup task: %w", err)
			}
			continue
		}
		if err := s.tasks.Remove(ctx, t.ID); err != nil {
			return removed, failed, fmt.Errorf("remove cleanup task: %w", err)
		}
		removed++
	}
	if removed > 0 || failed > 0 {
		log.Info().Int("removed", removed).Int("failed", failed).Msg("storage sweep")
	}
	return removed, failed, nil
}
