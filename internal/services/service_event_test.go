package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"dj-site/dto"
	"dj-site/internal/validate"
)

var fixedNow = time.UnixMilli(1700000000000).UTC()

func eventReq(name string) dto.EventCreateRequest {
	return dto.EventCreateRequest{
		Name:      name,
		Address:   "Harbour 5",
		Date:      "2024-07-01",
		StartTime: "22:00",
		EndTime:   "04:00",
		Concept:   "Open air",
		Type:      "niceText",
	}
}

func ptr[T any](v T) *T { return &v }

func eventNames(t *testing.T, f *fixture) []string {
	t.Helper()
	events, err := f.eventSvc.List(context.Background())
	require.NoError(t, err)
	names := make([]string, 0, len(events))
	for _, e := range events {
		names = append(names, e.Name)
	}
	return names
}

func TestEventCreateValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	req := eventReq("")
	_, err := f.eventSvc.Create(ctx, req, nil)
	requireValidation(t, err, "Name is required")

	req = eventReq("Night")
	req.Type = "loud"
	_, err = f.eventSvc.Create(ctx, req, nil)
	requireValidation(t, err, validate.MsgInvalidType)

	_, err = f.eventSvc.Create(ctx, eventReq("Night"), &Upload{Reader: nil, ContentType: "text/plain"})
	requireValidation(t, err, "Image must be an image file")

	assert.Empty(t, eventNames(t, f))
	assert.Empty(t, f.objects.Paths())
}

func TestEventCreateWithUpload(t *testing.T) {
	f := newFixture(t)
	f.eventSvc.now = func() time.Time { return fixedNow }

	e, err := f.eventSvc.Create(context.Background(), eventReq("Sunset Party"), jpeg("img"))
	require.NoError(t, err)
	assert.Equal(t, "/media/events/Sunset%20Party_1700000000000.jpg", e.Image)
	assert.Equal(t, []string{"events/Sunset Party_1700000000000.jpg"}, f.objects.Paths())
	assert.Equal(t, int64(1), e.Position)

	path, ok := f.storage.PathFor(e.Image)
	require.True(t, ok)
	obj, err := f.storage.Open(context.Background(), path)
	require.NoError(t, err)
	defer obj.Close()
	assert.Equal(t, "image/jpeg", obj.ContentType)
}

func TestEventCreateUploadFailureWritesNothing(t *testing.T) {
	f := newFixture(t)
	f.objects.failPut = true

	_, err := f.eventSvc.Create(context.Background(), eventReq("Night"), jpeg("img"))
	require.ErrorIs(t, err, errStorageDown)
	assert.Empty(t, eventNames(t, f))
}

func TestEventCreateInsertFailureQueuesUpload(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.events.failWrites = true

	_, err := f.eventSvc.Create(ctx, eventReq("Night"), jpeg("img"))
	require.Error(t, err)

	tasks, err := f.cleanup.Pending(ctx, 10)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, f.objects.Paths()[0], tasks[0].Path)

	removed, failed, err := f.storage.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.Zero(t, failed)
	assert.Empty(t, f.objects.Paths())
}

func TestEventDeleteNotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	err := f.eventSvc.Delete(ctx, bson.NewObjectID().Hex())
	assert.ErrorIs(t, err, ErrNotFound)
	assert.EqualError(t, err, "Event not found")

	assert.ErrorIs(t, f.eventSvc.Delete(ctx, "not-an-id"), ErrNotFound)
	requireValidation(t, f.eventSvc.Delete(ctx, ""), "Event ID is required")
}

func TestEventDeleteSurvivesImageFailure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	e, err := f.eventSvc.Create(ctx, eventReq("Night"), jpeg("img"))
	require.NoError(t, err)

	f.objects.failDelete = true
	require.NoError(t, f.eventSvc.Delete(ctx, e.ID.Hex()))
	assert.Empty(t, eventNames(t, f))
	require.Len(t, f.objects.Paths(), 1)

	tasks, err := f.cleanup.Pending(ctx, 10)
	require.NoError(t, err)
	require.Len(t, tasks, 1)

	// store still down: the task stays and records the attempt
	removed, failed, err := f.storage.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, removed)
	assert.Equal(t, 1, failed)
	tasks, _ = f.cleanup.Pending(ctx, 10)
	require.Len(t, tasks, 1)
	assert.Equal(t, 1, tasks[0].Attempts)
	assert.Equal(t, errStorageDown.Error(), tasks[0].LastError)

	f.objects.failDelete = false
	removed, failed, err = f.storage.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.Zero(t, failed)
	assert.Empty(t, f.objects.Paths())
	tasks, _ = f.cleanup.Pending(ctx, 10)
	assert.Empty(t, tasks)
}

func TestEventDeleteKeepsForeignImages(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	req := eventReq("Night")
	req.Image = "https://cdn.example.com/flyer.jpg"
	e, err := f.eventSvc.Create(ctx, req, nil)
	require.NoError(t, err)

	f.objects.failDelete = true
	require.NoError(t, f.eventSvc.Delete(ctx, e.ID.Hex()))
	tasks, _ := f.cleanup.Pending(ctx, 10)
	assert.Empty(t, tasks)
}

func TestEventUpdate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	e, err := f.eventSvc.Create(ctx, eventReq("Night"), nil)
	require.NoError(t, err)

	_, changed, err := f.eventSvc.Update(ctx, dto.EventUpdateRequest{ID: e.ID.Hex()}, nil)
	require.NoError(t, err)
	assert.False(t, changed)

	_, changed, err = f.eventSvc.Update(ctx, dto.EventUpdateRequest{ID: e.ID.Hex(), Name: ptr("Night")}, nil)
	require.NoError(t, err)
	assert.False(t, changed, "same value is not a change")

	updated, changed, err := f.eventSvc.Update(ctx, dto.EventUpdateRequest{
		ID:   e.ID.Hex(),
		Name: ptr("Day"),
		Type: ptr("runningText"),
	}, nil)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "Day", updated.Name)
	assert.Equal(t, "runningText", string(updated.Type))
	assert.Equal(t, "Harbour 5", updated.Address)
	assert.NotNil(t, updated.UpdatedAt)

	_, _, err = f.eventSvc.Update(ctx, dto.EventUpdateRequest{ID: e.ID.Hex(), Type: ptr("loud")}, nil)
	requireValidation(t, err, validate.MsgInvalidType)

	_, _, err = f.eventSvc.Update(ctx, dto.EventUpdateRequest{}, nil)
	requireValidation(t, err, "Event ID is required")

	_, _, err = f.eventSvc.Update(ctx, dto.EventUpdateRequest{ID: bson.NewObjectID().Hex(), Name: ptr("x")}, nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEventUpdateReplacesImage(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	clock := fixedNow
	f.eventSvc.now = func() time.Time { return clock }

	e, err := f.eventSvc.Create(ctx, eventReq("Night"), jpeg("old"))
	require.NoError(t, err)

	clock = clock.Add(time.Second)
	updated, changed, err := f.eventSvc.Update(ctx, dto.EventUpdateRequest{ID: e.ID.Hex()}, jpeg("new"))
	require.NoError(t, err)
	assert.True(t, changed)
	assert.NotEqual(t, e.Image, updated.Image)
	assert.Equal(t, []string{"events/Night_1700000001000.jpg"}, f.objects.Paths())
}

func TestEventUpdateFailureQueuesUpload(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	e, err := f.eventSvc.Create(ctx, eventReq("Night"), nil)
	require.NoError(t, err)

	f.events.failWrites = true
	_, _, err = f.eventSvc.Update(ctx, dto.EventUpdateRequest{ID: e.ID.Hex()}, jpeg("new"))
	require.Error(t, err)
	tasks, _ := f.cleanup.Pending(ctx, 10)
	assert.Len(t, tasks, 1)
}

func TestEventReorder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	var ids []string
	for _, name := range []string{"A", "B", "C"} {
		e, err := f.eventSvc.Create(ctx, eventReq(name), nil)
		require.NoError(t, err)
		ids = append(ids, e.ID.Hex())
	}
	assert.Equal(t, []string{"A", "B", "C"}, eventNames(t, f))

	require.NoError(t, f.eventSvc.Reorder(ctx, []string{ids[2], ids[0], ids[1]}))
	assert.Equal(t, []string{"C", "A", "B"}, eventNames(t, f))

	// new events go after the reordered ones
	_, err := f.eventSvc.Create(ctx, eventReq("D"), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "A", "B", "D"}, eventNames(t, f))

	// a partial list moves the listed events to the front
	require.NoError(t, f.eventSvc.Reorder(ctx, []string{ids[1], ids[2]}))
	assert.Equal(t, []string{"B", "C", "A", "D"}, eventNames(t, f))

	requireValidation(t, f.eventSvc.Reorder(ctx, []string{ids[0], ids[0]}), "Event IDs must be unique")
	requireValidation(t, f.eventSvc.Reorder(ctx, nil), "Event IDs is required")
	assert.ErrorIs(t, f.eventSvc.Reorder(ctx, []string{bson.NewObjectID().Hex()}), ErrNotFound)
	assert.ErrorIs(t, f.eventSvc.Reorder(ctx, []string{ids[0], bson.NewObjectID().Hex()}), ErrNotFound)
	assert.Equal(t, []string{"B", "C", "A", "D"}, eventNames(t, f))
}

func TestEventReorderSubsetOfThree(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	var ids []string
	for _, name := range []string{"A", "B", "C"} {
		e, err := f.eventSvc.Create(ctx, eventReq(name), nil)
		require.NoError(t, err)
		ids = append(ids, e.ID.Hex())
	}

	require.NoError(t, f.eventSvc.Reorder(ctx, []string{ids[2], ids[1]}))
	assert.Equal(t, []string{"C", "B", "A"}, eventNames(t, f))
}
