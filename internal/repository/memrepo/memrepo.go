// Package memrepo holds in-memory implementations of the repository
// interfaces. They back DB_DRIVER=memory and the service tests.
package memrepo

import (
	"bytes"
	"context"
	"io"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"dj-site/internal/models"
	"dj-site/internal/repository"
)

type Events struct {
	mu     sync.RWMutex
	seq    int64
	events map[bson.ObjectID]models.Event
}

func NewEvents() *Events {
	return &Events{events: map[bson.ObjectID]models.Event{}}
}

func (r *Events) Insert(_ context.Context, e *models.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	e.ID = bson.NewObjectID()
	e.Position = r.seq
	r.events[e.ID] = *e
	return nil
}

func (r *Events) List(_ context.Context) ([]models.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sorted(), nil
}

// sorted expects r.mu held.
func (r *Events) sorted() []models.Event {
	out := make([]models.Event, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Position != out[j].Position {
			return out[i].Position < out[j].Position
		}
		return out[i].ID.Hex() < out[j].ID.Hex()
	})
	return out
}

func (r *Events) FindByID(_ context.Context, id bson.ObjectID) (*models.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.events[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &e, nil
}

func (r *Events) Update(_ context.Context, id bson.ObjectID, patch models.EventPatch, now time.Time) (*models.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.events[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	patch.Apply(&e)
	e.UpdatedAt = &now
	r.events[id] = e
	return &e, nil
}

func (r *Events) Delete(_ context.Context, id bson.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.events[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.events, id)
	return nil
}

func (r *Events) Reorder(_ context.Context, ids []bson.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	sorted := r.sorted()
	current := make([]bson.ObjectID, len(sorted))
	for i, e := range sorted {
		current[i] = e.ID
	}
	order, err := repository.FullOrder(current, ids)
	if err != nil {
		return err
	}
	for i, id := range order {
		e := r.events[id]
		e.Position = int64(i + 1)
		r.events[id] = e
	}
	if n := int64(len(order)); r.seq < n {
		r.seq = n
	}
	return nil
}

type Messages struct {
	mu       sync.RWMutex
	messages []models.Message
}

func NewMessages() *Messages {
	return &Messages{}
}

func (r *Messages) Insert(_ context.Context, m *models.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	m.ID = bson.NewObjectID()
	r.messages = append(r.messages, *m)
	return nil
}

func (r *Messages) List(_ context.Context) ([]models.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.Message{}, r.messages...), nil
}

func (r *Messages) Delete(_ context.Context, id bson.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, m := range r.messages {
		if m.ID == id {
			r.messages = append(r.messages[:i], r.messages[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *Messages) UpdateStatus(_ context.Context, id bson.ObjectID, status models.MessageStatus, now time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.messages {
		if r.messages[i].ID == id {
			r.messages[i].Status = status
			r.messages[i].UpdatedAt = now
			return nil
		}
	}
	return repository.ErrNotFound
}

// Settings stores the raw settings document so that legacy layouts can be
// seeded and go through the same decoding as the MongoDB repository.
type Settings struct {
	mu  sync.RWMutex
	doc bson.Raw
}

func NewSettings() *Settings {
	return &Settings{}
}

// Seed replaces the stored document with doc as-is.
func (r *Settings) Seed(doc any) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.doc = raw
	r.mu.Unlock()
	return nil
}

// Raw returns the stored document, nil if none.
func (r *Settings) Raw() bson.Raw {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.doc
}

func (r *Settings) Get(_ context.Context) (repository.StoredSettings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.doc == nil {
		return repository.StoredSettings{}, repository.ErrNotFound
	}
	s, legacy, err := repository.DecodeSettings(r.doc)
	return repository.StoredSettings{Settings: s, Legacy: legacy}, err
}

func (r *Settings) Upsert(_ context.Context, s models.SystemSettings) error {
	return r.Seed(s)
}

func (r *Settings) ReplaceLinks(_ context.Context, links []models.MusicLink) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.doc == nil {
		return repository.ErrNotFound
	}
	s, _, err := repository.DecodeSettings(r.doc)
	if err != nil {
		return err
	}
	s.SoundcloudLinks = links
	raw, err := bson.Marshal(s)
	if err != nil {
		return err
	}
	r.doc = raw
	return nil
}

type Users struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func NewUsers() *Users {
	return &Users{users: map[string]models.User{}}
}

func (r *Users) FindByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (r *Users) Insert(_ context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.Email]; ok {
		return repository.ErrDuplicate
	}
	u.ID = bson.NewObjectID()
	r.users[u.Email] = *u
	return nil
}

func (r *Users) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.users)), nil
}

type storedObject struct {
	data        []byte
	contentType string
}

type Objects struct {
	mu      sync.RWMutex
	objects map[string]storedObject
}

func NewObjects() *Objects {
	return &Objects{objects: map[string]storedObject{}}
}

func (s *Objects) Put(_ context.Context, path, contentType string, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.objects[path] = storedObject{data: data, contentType: contentType}
	s.mu.Unlock()
	return nil
}

func (s *Objects) Open(_ context.Context, path string) (*repository.Object, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.objects[path]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &repository.Object{
		ReadCloser:  io.NopCloser(bytes.NewReader(o.data)),
		ContentType: o.contentType,
		Size:        int64(len(o.data)),
	}, nil
}

func (s *Objects) Delete(_ context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.objects[path]; !ok {
		return repository.ErrNotFound
	}
	delete(s.objects, path)
	return nil
}

// Paths lists the stored object paths in sorted order.
func (s *Objects) Paths() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.objects))
	for p := range s.objects {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

type Cleanup struct {
	mu    sync.RWMutex
	tasks []models.CleanupTask
}

func NewCleanup() *Cleanup {
	return &Cleanup{}
}

func (r *Cleanup) Add(_ context.Context, t *models.CleanupTask) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t.ID = bson.NewObjectID()
	r.tasks = append(r.tasks, *t)
	return nil
}

func (r *Cleanup) Pending(_ context.Context, limit int) ([]models.CleanupTask, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := append([]models.CleanupTask{}, r.tasks...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Attempts != out[j].Attempts {
			return out[i].Attempts < out[j].Attempts
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *Cleanup) Remove(_ context.Context, id bson.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, t := range r.tasks {
		if t.ID == id {
			r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *Cleanup) MarkFailed(_ context.Context, id bson.ObjectID, reason string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.tasks {
		if r.tasks[i].ID == id {
			r.tasks[i].Attempts++
			r.tasks[i].LastError = reason
		}
	}
	return nil
}

// Diagnostics reports the collection names the in-memory store emulates.
type Diagnostics struct{}

func (Diagnostics) CollectionNames(_ context.Context) ([]string, error) {
	return []string{
		repository.CollEvents,
		repository.CollMessages,
		repository.CollSettings,
		repository.CollUsers,
	}, nil
}
