package dto

import "dj-site/internal/models"

// EventCreateRequest is the add-event body. Image is an already-hosted URL;
// a multipart "image" file takes precedence over it.
type EventCreateRequest struct {
	Name      string `json:"name" form:"name" validate:"required"`
	Address   string `json:"address" form:"address" validate:"required"`
	Date      string `json:"date" form:"date" validate:"required"`
	StartTime string `json:"startTime" form:"startTime" validate:"required"`
	EndTime   string `json:"endTime" form:"endTime" validate:"required"`
	Concept   string `json:"concept" form:"concept" validate:"required"`
	Type      string `json:"type" form:"type" validate:"required,eventtype"`
	Image     string `json:"image" form:"image"`
}

// EventUpdateRequest carries only the fields the client sent.
type EventUpdateRequest struct {
	ID        string  `json:"_id" label:"Event ID" validate:"required"`
	Name      *string `json:"name,omitempty"`
	Address   *string `json:"address,omitempty"`
	Date      *string `json:"date,omitempty"`
	StartTime *string `json:"startTime,omitempty"`
	EndTime   *string `json:"endTime,omitempty"`
	Concept   *string `json:"concept,omitempty"`
	Image     *string `json:"image,omitempty"`
	Type      *string `json:"type,omitempty" validate:"omitempty,eventtype"`
}

type EventDeleteRequest struct {
	ID string `json:"_id" label:"Event ID" validate:"required"`
}

type EventReorderRequest struct {
	IDs []string `json:"ids" label:"Event IDs" validate:"required,min=1"`
}

type EventCreateResult struct {
	Message string `json:"message"`
	Event   string `json:"event"`
}

type EventUpdateResult struct {
	Message string        `json:"message"`
	Event   *models.Event `json:"event,omitempty"`
}

type EventDeleteResult struct {
	Message        string `json:"message"`
	DeletedEventID string `json:"deletedEventId"`
}

type EventListResponse struct {
	Events         []models.Event        `json:"events"`
	SystemSettings models.SystemSettings `json:"systemSettings"`
}
