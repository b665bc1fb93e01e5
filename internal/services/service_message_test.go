package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"dj-site/dto"
	"dj-site/internal/models"
	"dj-site/internal/validate"
)

func TestMessageCreateNormalizes(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	m, err := f.messageSvc.Create(ctx, dto.MessageCreateRequest{
		Name:    "  Alex ",
		Email:   " Alex@Example.COM ",
		Message: " Are you free on Friday? ",
	})
	require.NoError(t, err)
	assert.Equal(t, "Alex", m.Name)
	assert.Equal(t, "alex@example.com", m.Email)
	assert.Equal(t, "Are you free on Friday?", m.Message)
	assert.Equal(t, models.MessageStatusNew, m.Status)
	assert.False(t, m.ID.IsZero())

	all, err := f.messageSvc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func TestMessageCreateRejectsBeforeWrite(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.messageSvc.Create(ctx, dto.MessageCreateRequest{Name: "A", Email: "not-an-email", Message: "hi"})
	requireValidation(t, err, validate.MsgInvalidEmail)

	_, err = f.messageSvc.Create(ctx, dto.MessageCreateRequest{Name: "A", Email: "a@b.co", Message: "   "})
	requireValidation(t, err, "Name, email, and message are required")

	all, err := f.messageSvc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestMessageDeleteAndStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	m, err := f.messageSvc.Create(ctx, dto.MessageCreateRequest{Name: "A", Email: "a@b.co", Message: "hi"})
	require.NoError(t, err)

	require.NoError(t, f.messageSvc.UpdateStatus(ctx, dto.MessageStatusRequest{MessageID: m.ID.Hex(), Status: "read"}))
	all, err := f.messageSvc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.MessageStatusRead, all[0].Status)

	err = f.messageSvc.UpdateStatus(ctx, dto.MessageStatusRequest{MessageID: m.ID.Hex(), Status: "archived"})
	requireValidation(t, err, validate.MsgInvalidStatus)

	err = f.messageSvc.UpdateStatus(ctx, dto.MessageStatusRequest{Status: "read"})
	requireValidation(t, err, "Message ID is required")

	err = f.messageSvc.UpdateStatus(ctx, dto.MessageStatusRequest{MessageID: bson.NewObjectID().Hex(), Status: "read"})
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, f.messageSvc.Delete(ctx, dto.MessageDeleteRequest{MessageID: m.ID.Hex()}))
	err = f.messageSvc.Delete(ctx, dto.MessageDeleteRequest{MessageID: m.ID.Hex()})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.EqualError(t, err, "Message not found")

	err = f.messageSvc.Delete(ctx, dto.MessageDeleteRequest{MessageID: "zzz"})
	assert.ErrorIs(t, err, ErrNotFound)
}
