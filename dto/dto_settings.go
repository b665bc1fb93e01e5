package dto

import "dj-site/internal/models"

// SettingsUpdateRequest mirrors the settings form. Empty fields fall back to
// the site defaults.
type SettingsUpdateRequest struct {
	SoundcloudLinks []models.MusicLink `json:"soundcloudLinks" label:"SoundCloud links" validate:"omitempty,max=10"`
	YoutubeLink     string             `json:"youtubeLink"`
	SiteTitle       string             `json:"siteTitle" validate:"omitempty,max=200"`
	ContactEmail    string             `json:"contactEmail" validate:"omitempty,contactemail"`
	MaintenanceMode bool               `json:"maintenanceMode"`
	Theme           string             `json:"theme" validate:"omitempty,theme"`
	PrimaryColor    string             `json:"primaryColor" label:"Primary color" validate:"omitempty,hexcolor"`
}

type SettingsResponse struct {
	Settings models.SystemSettings `json:"settings"`
}

type PublicSettingsResponse struct {
	Settings models.PublicSettings `json:"settings"`
}

type SettingsUpdateResult struct {
	Message  string                `json:"message"`
	Settings models.SystemSettings `json:"settings"`
}
