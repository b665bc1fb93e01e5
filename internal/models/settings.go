package models

import "time"

// SettingsID is the fixed key of the one settings document.
const SettingsID = "site"

type MusicLink struct {
	Title string `bson:"title" json:"title"`
	URL   string `bson:"url" json:"url"`
}

type SystemSettings struct {
	SoundcloudLinks []MusicLink `bson:"soundcloudLinks" json:"soundcloudLinks"`
	YoutubeLink     string      `bson:"youtubeLink" json:"youtubeLink"`
	SiteTitle       string      `bson:"siteTitle" json:"siteTitle"`
	ContactEmail    string      `bson:"contactEmail" json:"contactEmail"`
	MaintenanceMode bool        `bson:"maintenanceMode" json:"maintenanceMode"`
	Theme           string      `bson:"theme" json:"theme"`
	PrimaryColor    string      `bson:"primaryColor" json:"primaryColor"`
	UpdatedAt       *time.Time  `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// PublicSettings is the subset served to anonymous visitors.
type PublicSettings struct {
	SoundcloudLinks []MusicLink `json:"soundcloudLinks"`
	YoutubeLink     string      `json:"youtubeLink"`
}

func (s SystemSettings) Public() PublicSettings {
	return PublicSettings{
		SoundcloudLinks: s.SoundcloudLinks,
		YoutubeLink:     s.YoutubeLink,
	}
}

// HasMusic reports whether the media block has anything to show.
func (s SystemSettings) HasMusic() bool {
	if s.YoutubeLink != "" {
		return true
	}
	for _, l := range s.SoundcloudLinks {
		if l.URL != "" {
			return true
		}
	}
	return false
}
