package dto

import (
	"dj-site/internal/models"
	"dj-site/internal/screenstack"
)

type ErrorResponse struct {
	Message string `json:"message"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type DashboardResponse struct {
	Events   []models.Event        `json:"events"`
	Settings models.SystemSettings `json:"settings"`
	Messages []models.Message      `json:"messages"`
	Unread   int                   `json:"unread"`
}

type SweepResult struct {
	Message string `json:"message"`
	Removed int    `json:"removed"`
	Failed  int    `json:"failed"`
}

type DiagnosticsResult struct {
	Message                  string   `json:"message"`
	Collections              []string `json:"collections"`
	MessagesCollectionExists bool     `json:"messagesCollectionExists"`
}

type LayoutQuery struct {
	ViewportHeight float64 `query:"viewportHeight" label:"viewportHeight" validate:"gt=0,lte=100000"`
	ScrollY        float64 `query:"scrollY" label:"scrollY" validate:"gte=0"`
}

type LayoutResponse struct {
	Sections []screenstack.Section `json:"sections"`
	Frame    screenstack.Frame     `json:"frame"`
	// Timing lets the client apply the scroll-idle rule locally.
	Timing LayoutTiming `json:"timing"`
}

type LayoutTiming struct {
	DebounceMs int64                  `json:"debounceMs"`
	Scrolling  screenstack.Transition `json:"scrolling"`
	Idle       screenstack.Transition `json:"idle"`
}
