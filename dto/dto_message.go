package dto

import "dj-site/internal/models"

type MessageCreateRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email" validate:"contactemail"`
	Message string `json:"message"`
}

type MessageDeleteRequest struct {
	MessageID string `json:"messageId" label:"Message ID" validate:"required"`
}

type MessageStatusRequest struct {
	MessageID string `json:"messageId" label:"Message ID" validate:"required"`
	Status    string `json:"status" validate:"messagestatus"`
}

type MessageCreateResult struct {
	Message   string `json:"message"`
	MessageID string `json:"messageId"`
}

type MessageListResponse struct {
	Messages []models.Message `json:"messages"`
}

type MessageDeleteResult struct {
	Message          string `json:"message"`
	DeletedMessageID string `json:"deletedMessageId"`
}

type MessageStatusResult struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}
