package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSoundCloud(t *testing.T) {
	tests := []struct {
		name string
		in   string
		ok   bool
		path string
	}{
		{"track", "https://soundcloud.com/artist/track", true, "/artist/track"},
		{"query dropped", "https://soundcloud.com/artist/track?si=abc", true, "/artist/track"},
		{"mixed case host", "https://SoundCloud.com/artist/track", true, "/artist/track"},
		{"other host", "https://example.com/x", false, ""},
		{"subdomain", "https://m.soundcloud.com/artist/track", false, ""},
		{"lookalike", "https://soundcloud.com.evil.io/artist", false, ""},
		{"no scheme", "soundcloud.com/artist/track", false, ""},
		{"malformed", "http://[::1", false, ""},
		{"empty", "", false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SoundCloud(tt.in)
			require.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.path, got.Path)
		})
	}
}

func TestSoundCloudEmbedURL(t *testing.T) {
	got, ok := SoundCloud("https://soundcloud.com/artist/track")
	require.True(t, ok)
	assert.Equal(t,
		"https://w.soundcloud.com/player/?url=https://soundcloud.com/artist/track&color=%23ff5500&auto_play=false&hide_related=false&show_comments=true&show_user=true&show_reposts=false&show_teaser=true&visual=true",
		got.EmbedURL)
}

func TestYouTubeID(t *testing.T) {
	tests := []struct {
		in string
		id string
		ok bool
	}{
		{"https://youtu.be/abc123", "abc123", true},
		{"https://youtube.com/watch?v=abc123", "abc123", true},
		{"https://www.youtube.com/watch?v=abc123&t=42", "abc123", true},
		{"https://www.youtube.com/embed/abc123?rel=0", "abc123", true},
		{"https://www.youtube.com/watch?feature=share&v=abc123", "abc123", true},
		{"https://youtu.be/abc123#t=1", "abc123", true},
		{"https://youtube.com/", "", false},
		{"https://vimeo.com/123", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			id, ok := YouTubeID(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.id, id)
		})
	}
}

func TestYouTubeEmbed(t *testing.T) {
	got, ok := YouTube("https://youtu.be/abc123")
	require.True(t, ok)
	assert.Equal(t, "https://www.youtube.com/embed/abc123?rel=0&modestbranding=1&showinfo=0", got.EmbedURL)

	_, ok = YouTube("not a url")
	assert.False(t, ok)
}
