package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dj-site/dto"
	"dj-site/internal/screenstack"
)

func TestLayoutFollowsContent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.layoutSvc.Layout(ctx, dto.LayoutQuery{ViewportHeight: 800})
	require.NoError(t, err)
	assert.Equal(t, 3, res.Frame.SectionCount)

	for _, name := range []string{"A", "B"} {
		_, err := f.eventSvc.Create(ctx, eventReq(name), nil)
		require.NoError(t, err)
	}
	_, err = f.settingsSvc.Update(ctx, dto.SettingsUpdateRequest{YoutubeLink: "https://youtu.be/abc123"})
	require.NoError(t, err)

	res, err = f.layoutSvc.Layout(ctx, dto.LayoutQuery{ViewportHeight: 800, ScrollY: 1600})
	require.NoError(t, err)
	require.Len(t, res.Sections, 6)
	assert.Equal(t, screenstack.KindMedia, res.Sections[3].Kind)
	assert.Equal(t, "A", res.Sections[1].Event.Name)
	assert.Equal(t, 5200.0, res.Frame.ContainerHeight)
	assert.Equal(t, 400.0, res.Frame.Offsets[1])
	assert.Equal(t, screenstack.RestScroll(4, 800), res.Frame.ContactScrollTarget)
	assert.Equal(t, int64(150), res.Timing.DebounceMs)
	assert.Equal(t, int64(300), res.Timing.Idle.DurationMs)
}

func TestLayoutValidation(t *testing.T) {
	f := newFixture(t)

	_, err := f.layoutSvc.Layout(context.Background(), dto.LayoutQuery{ViewportHeight: 0})
	requireValidation(t, err, "ViewportHeight must be greater than 0")
}
