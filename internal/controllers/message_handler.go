package controllers

import (
	"github.com/gofiber/fiber/v2"

	"dj-site/dto"
	"dj-site/internal/models"
	"dj-site/internal/services"
)

// AddMessageHandler godoc
// @Summary Send a contact message
// @Tags messages
// @Accept json
// @Produce json
// @Param body body dto.MessageCreateRequest true "Contact form"
// @Success 201 {object} dto.MessageCreateResult
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/add-message [post]
func AddMessageHandler(svc *services.MessageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.MessageCreateRequest
		if err := c.BodyParser(&body); err != nil {
			return fail(c, fiber.StatusBadRequest, msgInvalidBody)
		}
		m, err := svc.Create(c.UserContext(), body)
		if err != nil {
			return respondError(c, err, "Failed to send message")
		}
		return c.Status(fiber.StatusCreated).JSON(dto.MessageCreateResult{
			Message:   "Message sent successfully",
			MessageID: m.ID.Hex(),
		})
	}
}

// ListMessagesHandler godoc
// @Summary List contact messages
// @Description Served under both all-messages and get-messages
// @Tags messages
// @Produce json
// @Success 200 {object} dto.MessageListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/all-messages [get]
// @Router /api/get-messages [get]
func ListMessagesHandler(svc *services.MessageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		messages, err := svc.List(c.UserContext())
		if err != nil {
			return respondError(c, err, "Failed to fetch messages")
		}
		if messages == nil {
			messages = []models.Message{}
		}
		return c.JSON(dto.MessageListResponse{Messages: messages})
	}
}

// DeleteMessageHandler godoc
// @Summary Delete a contact message
// @Tags messages
// @Accept json
// @Produce json
// @Param body body dto.MessageDeleteRequest true "Message id"
// @Success 200 {object} dto.MessageDeleteResult
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/delete-message [delete]
func DeleteMessageHandler(svc *services.MessageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.MessageDeleteRequest
		if err := c.BodyParser(&body); err != nil {
			return fail(c, fiber.StatusBadRequest, msgInvalidBody)
		}
		if err := svc.Delete(c.UserContext(), body); err != nil {
			return respondError(c, err, "Failed to delete message")
		}
		return c.JSON(dto.MessageDeleteResult{
			Message:          "Message deleted successfully",
			DeletedMessageID: body.MessageID,
		})
	}
}

// UpdateMessageStatusHandler godoc
// @Summary Mark a message new or read
// @Tags messages
// @Accept json
// @Produce json
// @Param body body dto.MessageStatusRequest true "Message id and status"
// @Success 200 {object} dto.MessageStatusResult
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/update-message-status [put]
func UpdateMessageStatusHandler(svc *services.MessageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.MessageStatusRequest
		if err := c.BodyParser(&body); err != nil {
			return fail(c, fiber.StatusBadRequest, msgInvalidBody)
		}
		if err := svc.UpdateStatus(c.UserContext(), body); err != nil {
			return respondError(c, err, "Failed to update message status")
		}
		return c.JSON(dto.MessageStatusResult{
			Message: "Message status updated successfully",
			Status:  body.Status,
		})
	}
}
