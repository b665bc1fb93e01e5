package repository

import (
	"context"
	"errors"
	"io"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"dj-site/internal/models"
)

// Collection names.
const (
	CollEvents         = "events"
	CollMessages       = "messages"
	CollSettings       = "systemSettings"
	CollUsers          = "users"
	CollCounters       = "counters"
	CollStorageCleanup = "storageCleanup"
)

var (
	ErrNotFound  = errors.New("repository: not found")
	ErrDuplicate = errors.New("repository: duplicate key")
)

type EventRepository interface {
	// Insert assigns ID and Position to e before writing it.
	Insert(ctx context.Context, e *models.Event) error
	List(ctx context.Context) ([]models.Event, error)
	FindByID(ctx context.Context, id bson.ObjectID) (*models.Event, error)
	// Update applies a non-empty patch and returns the updated document.
	Update(ctx context.Context, id bson.ObjectID, patch models.EventPatch, now time.Time) (*models.Event, error)
	Delete(ctx context.Context, id bson.ObjectID) error
	// Reorder moves ids to the front in the given order. Events not listed
	// keep their relative order behind them.
	Reorder(ctx context.Context, ids []bson.ObjectID) error
}

type MessageRepository interface {
	Insert(ctx context.Context, m *models.Message) error
	List(ctx context.Context) ([]models.Message, error)
	Delete(ctx context.Context, id bson.ObjectID) error
	UpdateStatus(ctx context.Context, id bson.ObjectID, status models.MessageStatus, now time.Time) error
}

// StoredSettings is the settings document as read from the store. Legacy is
// set when soundcloudLinks was stored as a plain list of URLs.
type StoredSettings struct {
	Settings models.SystemSettings
	Legacy   bool
}

type SettingsRepository interface {
	Get(ctx context.Context) (StoredSettings, error)
	Upsert(ctx context.Context, s models.SystemSettings) error
	ReplaceLinks(ctx context.Context, links []models.MusicLink) error
}

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Insert(ctx context.Context, u *models.User) error
	Count(ctx context.Context) (int64, error)
}

// Object is an open stored object. Callers must close it.
type Object struct {
	io.ReadCloser
	ContentType string
	Size        int64
}

type ObjectStore interface {
	Put(ctx context.Context, path, contentType string, r io.Reader) error
	Open(ctx context.Context, path string) (*Object, error)
	Delete(ctx context.Context, path string) error
}

type CleanupRepository interface {
	Add(ctx context.Context, t *models.CleanupTask) error
	// Pending lists up to limit tasks by ascending attempts, then age.
	Pending(ctx context.Context, limit int) ([]models.CleanupTask, error)
	Remove(ctx context.Context, id bson.ObjectID) error
	MarkFailed(ctx context.Context, id bson.ObjectID, reason string) error
}

// Diagnostics exposes store-level information for the connection check.
type Diagnostics interface {
	CollectionNames(ctx context.Context) ([]string, error)
}

// FullOrder returns ids followed by the members of current that ids does not
// list, in their current order. Every id must be in current.
func FullOrder(current, ids []bson.ObjectID) ([]bson.ObjectID, error) {
	listed := make(map[bson.ObjectID]bool, len(ids))
	for _, id := range ids {
		listed[id] = true
	}
	out := make([]bson.ObjectID, 0, len(current))
	out = append(out, ids...)
	found := 0
	for _, id := range current {
		if listed[id] {
			found++
			continue
		}
		out = append(out, id)
	}
	if found != len(listed) {
		return nil, ErrNotFound
	}
	return out, nil
}
