package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/crypto/bcrypt"

	"dj-site/config"
	"dj-site/internal/models"
	"dj-site/internal/repository/memrepo"
)

var errStorageDown = errors.New("storage unavailable")

// flakyObjects fails Put or Delete on demand.
type flakyObjects struct {
	*memrepo.Objects
	failPut    bool
	failDelete bool
	failOn     map[string]bool
}

func (f *flakyObjects) Put(ctx context.Context, path, contentType string, r io.Reader) error {
	if f.failPut {
		return errStorageDown
	}
	return f.Objects.Put(ctx, path, contentType, r)
}

func (f *flakyObjects) Delete(ctx context.Context, path string) error {
	if f.failDelete || f.failOn[path] {
		return errStorageDown
	}
	return f.Objects.Delete(ctx, path)
}

// flakyEvents fails Insert and Update on demand.
type flakyEvents struct {
	*memrepo.Events
	failWrites bool
}

func (f *flakyEvents) Insert(ctx context.Context, e *models.Event) error {
	if f.failWrites {
		return errors.New("write failed")
	}
	return f.Events.Insert(ctx, e)
}

func (f *flakyEvents) Update(ctx context.Context, id bson.ObjectID, patch models.EventPatch, now time.Time) (*models.Event, error) {
	if f.failWrites {
		return nil, errors.New("write failed")
	}
	return f.Events.Update(ctx, id, patch, now)
}

type fixture struct {
	events   *flakyEvents
	messages *memrepo.Messages
	settings *memrepo.Settings
	users    *memrepo.Users
	objects  *flakyObjects
	cleanup  *memrepo.Cleanup

	storage     *StorageService
	eventSvc    *EventService
	messageSvc  *MessageService
	settingsSvc *SettingsService
	authSvc     *AuthService
	layoutSvc   *LayoutService
	adminSvc    *AdminService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		events:   &flakyEvents{Events: memrepo.NewEvents()},
		messages: memrepo.NewMessages(),
		settings: memrepo.NewSettings(),
		users:    memrepo.NewUsers(),
		objects:  &flakyObjects{Objects: memrepo.NewObjects()},
		cleanup:  memrepo.NewCleanup(),
	}
	timeout := time.Second
	f.storage = NewStorageService(f.objects, f.cleanup, "/media/", timeout)
	f.eventSvc = NewEventService(f.events, f.storage, timeout)
	f.messageSvc = NewMessageService(f.messages, timeout)
	f.settingsSvc = NewSettingsService(f.settings, config.DefaultSiteDefaults(), timeout)
	auth, err := NewAuthService(f.users, "test-secret", 24*time.Hour, bcrypt.MinCost, timeout)
	require.NoError(t, err)
	f.authSvc = auth
	f.layoutSvc = NewLayoutService(f.eventSvc, f.settingsSvc)
	f.adminSvc = NewAdminService(f.eventSvc, f.settingsSvc, f.messageSvc, memrepo.Diagnostics{}, timeout)
	return f
}

func jpeg(body string) *Upload {
	return &Upload{Reader: bytes.NewReader([]byte(body)), ContentType: "image/jpeg", Size: int64(len(body))}
}

func requireValidation(t *testing.T, err error, msg string) {
	t.Helper()
	var ve *ValidationError
	require.True(t, errors.As(err, &ve), "expected validation error, got %v", err)
	require.Equal(t, msg, ve.Message)
}
