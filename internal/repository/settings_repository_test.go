package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"dj-site/internal/models"
)

func raw(t *testing.T, doc any) bson.Raw {
	t.Helper()
	b, err := bson.Marshal(doc)
	require.NoError(t, err)
	return b
}

func TestDecodeSettingsCurrentShape(t *testing.T) {
	s, legacy, err := DecodeSettings(raw(t, bson.M{
		"_id":             models.SettingsID,
		"soundcloudLinks": bson.A{bson.M{"title": "Mix", "url": "https://soundcloud.com/dj/mix"}},
		"youtubeLink":     "https://youtu.be/abc",
		"siteTitle":       "DJ",
		"maintenanceMode": true,
	}))
	require.NoError(t, err)
	assert.False(t, legacy)
	assert.Equal(t, []models.MusicLink{{Title: "Mix", URL: "https://soundcloud.com/dj/mix"}}, s.SoundcloudLinks)
	assert.Equal(t, "https://youtu.be/abc", s.YoutubeLink)
	assert.Equal(t, "DJ", s.SiteTitle)
	assert.True(t, s.MaintenanceMode)
}

func TestDecodeSettingsLegacyStrings(t *testing.T) {
	s, legacy, err := DecodeSettings(raw(t, bson.M{
		"soundcloudLinks": bson.A{"url1", "url2"},
	}))
	require.NoError(t, err)
	assert.True(t, legacy)
	assert.Equal(t, []models.MusicLink{{URL: "url1"}, {URL: "url2"}}, s.SoundcloudLinks)
}

func TestDecodeSettingsMixedAndJunk(t *testing.T) {
	s, legacy, err := DecodeSettings(raw(t, bson.M{
		"soundcloudLinks": bson.A{bson.M{"title": "A", "url": "a"}, "b", nil},
	}))
	require.NoError(t, err)
	assert.True(t, legacy)
	assert.Equal(t, []models.MusicLink{{Title: "A", URL: "a"}, {URL: "b"}, {}}, s.SoundcloudLinks)
}

func TestDecodeSettingsMissingLinks(t *testing.T) {
	s, legacy, err := DecodeSettings(raw(t, bson.M{"siteTitle": "Only title"}))
	require.NoError(t, err)
	assert.False(t, legacy)
	assert.Empty(t, s.SoundcloudLinks)
	assert.Equal(t, "Only title", s.SiteTitle)
}
