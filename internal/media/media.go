// Package media turns track and video links into embeddable player
// references. Resolvers never fail: an unusable link yields ok == false.
package media

import (
	"net/url"
	"regexp"
	"strings"
)

const soundCloudHost = "soundcloud.com"

type SoundCloudEmbed struct {
	Path     string `json:"path"`
	EmbedURL string `json:"embedUrl"`
}

// SoundCloud accepts only links whose host is exactly soundcloud.com. Hosts
// compare case-insensitively.
func SoundCloud(raw string) (SoundCloudEmbed, bool) {
	if raw == "" {
		return SoundCloudEmbed{}, false
	}
	u, err := url.Parse(raw)
	if err != nil || !strings.EqualFold(u.Hostname(), soundCloudHost) {
		return SoundCloudEmbed{}, false
	}
	path := u.EscapedPath()
	if path == "" {
		path = "/"
	}
	return SoundCloudEmbed{
		Path: path,
		EmbedURL: "https://w.soundcloud.com/player/?url=https://soundcloud.com" + path +
			"&color=%23ff5500&auto_play=false&hide_related=false&show_comments=true" +
			"&show_user=true&show_reposts=false&show_teaser=true&visual=true",
	}, true
}

type YouTubeEmbed struct {
	VideoID  string `json:"videoId"`
	EmbedURL string `json:"embedUrl"`
}

// Tried in order, first match wins.
var youTubePatterns = []*regexp.Regexp{
	regexp.MustCompile(`youtube\.com/watch\?v=([^&\n?#]+)`),
	regexp.MustCompile(`youtu\.be/([^&\n?#]+)`),
	regexp.MustCompile(`youtube\.com/embed/([^&\n?#]+)`),
	regexp.MustCompile(`youtube\.com/watch\?.*v=([^&\n?#]+)`),
}

// YouTubeID extracts the video id from a watch, short or embed link.
func YouTubeID(raw string) (string, bool) {
	for _, p := range youTubePatterns {
		if m := p.FindStringSubmatch(raw); len(m) == 2 && m[1] != "" {
			return m[1], true
		}
	}
	return "", false
}

func YouTube(raw string) (YouTubeEmbed, bool) {
	id, ok := YouTubeID(raw)
	if !ok {
		return YouTubeEmbed{}, false
	}
	return YouTubeEmbed{
		VideoID:  id,
		EmbedURL: "https://www.youtube.com/embed/" + url.PathEscape(id) + "?rel=0&modestbranding=1&showinfo=0",
	}, true
}
