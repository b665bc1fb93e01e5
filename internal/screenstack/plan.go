// Package screenstack computes the layered "card stack" page layout: which
// full-viewport sections exist, and how far each one has slid over the
// previous one for a given scroll position.
package screenstack

import (
	"dj-site/internal/media"
	"dj-site/internal/models"
)

type Kind string

const (
	KindHeader  Kind = "header"
	KindEvent   Kind = "event"
	KindMedia   Kind = "media"
	KindContact Kind = "contact"
	KindFooter  Kind = "footer"
)

type Player struct {
	Provider string `json:"provider"`
	Title    string `json:"title,omitempty"`
	URL      string `json:"url"`
	EmbedURL string `json:"embedUrl,omitempty"`
	Valid    bool   `json:"valid"`
}

type Section struct {
	Index int  `json:"index"`
	Kind  Kind `json:"kind"`
	// Stacked sections slide in over their predecessor; the header stays put.
	Stacked bool `json:"stacked"`

	Event   *models.Event `json:"event,omitempty"`
	Variant string        `json:"variant,omitempty"`
	Players []Player      `json:"players,omitempty"`
}

// Plan is the ordered list of sections for one page render.
type Plan struct {
	Sections []Section
}

// Build lays out header, one section per event, the media block when any
// link is configured, contact and footer, in that order.
func Build(events []models.Event, settings models.SystemSettings) Plan {
	sections := make([]Section, 0, len(events)+4)
	add := func(s Section) {
		s.Index = len(sections)
		s.Stacked = s.Kind != KindHeader
		sections = append(sections, s)
	}

	add(Section{Kind: KindHeader})
	for i := range events {
		e := events[i]
		add(Section{Kind: KindEvent, Event: &e, Variant: string(e.Type)})
	}
	if settings.HasMusic() {
		add(Section{Kind: KindMedia, Players: players(settings)})
	}
	add(Section{Kind: KindContact})
	add(Section{Kind: KindFooter})
	return Plan{Sections: sections}
}

func players(settings models.SystemSettings) []Player {
	var out []Player
	for _, l := range settings.SoundcloudLinks {
		if l.URL == "" {
			continue
		}
		p := Player{Provider: "soundcloud", Title: l.Title, URL: l.URL}
		if embed, ok := media.SoundCloud(l.URL); ok {
			p.EmbedURL, p.Valid = embed.EmbedURL, true
		}
		out = append(out, p)
	}
	if settings.YoutubeLink != "" {
		p := Player{Provider: "youtube", Title: "Latest Performance", URL: settings.YoutubeLink}
		if embed, ok := media.YouTube(settings.YoutubeLink); ok {
			p.EmbedURL, p.Valid = embed.EmbedURL, true
		}
		out = append(out, p)
	}
	return out
}

func (p Plan) Count() int {
	return len(p.Sections)
}

// IndexOf returns the index of the first section of kind k, or -1.
func (p Plan) IndexOf(k Kind) int {
	for _, s := range p.Sections {
		if s.Kind == k {
			return s.Index
		}
	}
	return -1
}
