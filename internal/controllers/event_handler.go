package controllers

import (
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"

	"dj-site/dto"
	"dj-site/internal/models"
	"dj-site/internal/services"
)

func isMultipart(c *fiber.Ctx) bool {
	return strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm)
}

// imageUpload returns the multipart "image" file, nil when none was sent.
// The caller closes the returned file.
func imageUpload(c *fiber.Ctx) (*services.Upload, multipart.File, error) {
	if !isMultipart(c) {
		return nil, nil, nil
	}
	fh, err := c.FormFile("image")
	if err != nil {
		return nil, nil, nil
	}
	f, err := fh.Open()
	if err != nil {
		return nil, nil, err
	}
	return &services.Upload{
		Reader:      f,
		ContentType: fh.Header.Get(fiber.HeaderContentType),
		Size:        fh.Size,
	}, f, nil
}

// updateFromForm keeps absent form keys as nil so they are left unchanged.
func updateFromForm(c *fiber.Ctx) (dto.EventUpdateRequest, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return dto.EventUpdateRequest{}, err
	}
	get := func(key string) *string {
		if v, ok := form.Value[key]; ok && len(v) > 0 {
			s := v[0]
			return &s
		}
		return nil
	}
	req := dto.EventUpdateRequest{
		Name:      get("name"),
		Address:   get("address"),
		Date:      get("date"),
		StartTime: get("startTime"),
		EndTime:   get("endTime"),
		Concept:   get("concept"),
		Image:     get("image"),
		Type:      get("type"),
	}
	if id := get("_id"); id != nil {
		req.ID = *id
	}
	return req, nil
}

// AddEventHandler godoc
// @Summary Create an event
// @Description Create an event from JSON, or from a multipart form with an optional image file
// @Tags events
// @Accept json,mpfd
// @Produce json
// @Param body body dto.EventCreateRequest false "Event (JSON)"
// @Param image formData file false "Event image"
// @Success 200 {object} dto.EventCreateResult
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/add-event [post]
func AddEventHandler(svc *services.EventService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.EventCreateRequest
		if err := c.BodyParser(&body); err != nil {
			return fail(c, fiber.StatusBadRequest, msgInvalidBody)
		}

		img, file, err := imageUpload(c)
		if err != nil {
			return fail(c, fiber.StatusBadRequest, "Invalid image upload")
		}
		if file != nil {
			defer file.Close()
		}

		event, err := svc.Create(c.UserContext(), body, img)
		if err != nil {
			return respondError(c, err, "Failed to add event")
		}
		return c.JSON(dto.EventCreateResult{
			Message: "Event added successfully",
			Event:   event.ID.Hex(),
		})
	}
}

// GetEventsHandler godoc
// @Summary List events with site settings
// @Tags events
// @Produce json
// @Success 200 {object} dto.EventListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/get-events [get]
func GetEventsHandler(events *services.EventService, settings *services.SettingsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		list, err := events.List(c.UserContext())
		if err != nil {
			return respondError(c, err, "Failed to fetch events")
		}
		s, err := settings.Get(c.UserContext())
		if err != nil {
			return respondError(c, err, "Failed to fetch events")
		}
		if list == nil {
			list = []models.Event{}
		}
		return c.JSON(dto.EventListResponse{Events: list, SystemSettings: s})
	}
}

// UpdateEventHandler godoc
// @Summary Update an event
// @Description Only the sent fields change. A multipart "image" file replaces the stored image.
// @Tags events
// @Accept json,mpfd
// @Produce json
// @Param body body dto.EventUpdateRequest true "Event id and changed fields"
// @Success 200 {object} dto.EventUpdateResult
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/update-event [put]
func UpdateEventHandler(svc *services.EventService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var (
			body dto.EventUpdateRequest
			err  error
		)
		if isMultipart(c) {
			body, err = updateFromForm(c)
		} else {
			err = c.BodyParser(&body)
		}
		if err != nil {
			return fail(c, fiber.StatusBadRequest, msgInvalidBody)
		}

		img, file, err := imageUpload(c)
		if err != nil {
			return fail(c, fiber.StatusBadRequest, "Invalid image upload")
		}
		if file != nil {
			defer file.Close()
		}

		event, changed, err := svc.Update(c.UserContext(), body, img)
		if err != nil {
			return respondError(c, err, "Failed to update event")
		}
		if !changed {
			return c.JSON(dto.MessageResponse{Message: "No changes made to event"})
		}
		return c.JSON(dto.EventUpdateResult{Message: "Event updated successfully", Event: event})
	}
}

// DeleteEventHandler godoc
// @Summary Delete an event
// @Description Deletes the record; the stored image is removed best-effort
// @Tags events
// @Accept json
// @Produce json
// @Param body body dto.EventDeleteRequest true "Event id"
// @Success 200 {object} dto.EventDeleteResult
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/delete-event [delete]
func DeleteEventHandler(svc *services.EventService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.EventDeleteRequest
		if err := c.BodyParser(&body); err != nil {
			return fail(c, fiber.StatusBadRequest, msgInvalidBody)
		}
		if err := svc.Delete(c.UserContext(), body.ID); err != nil {
			return respondError(c, err, "Failed to delete event")
		}
		return c.JSON(dto.EventDeleteResult{
			Message:        "Event deleted successfully",
			DeletedEventID: body.ID,
		})
	}
}

// ReorderEventsHandler godoc
// @Summary Set the page order of events
// @Tags events
// @Accept json
// @Produce json
// @Param body body dto.EventReorderRequest true "Event ids in page order"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/reorder-events [put]
func ReorderEventsHandler(svc *services.EventService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.EventReorderRequest
		if err := c.BodyParser(&body); err != nil {
			return fail(c, fiber.StatusBadRequest, msgInvalidBody)
		}
		if err := svc.Reorder(c.UserContext(), body.IDs); err != nil {
			return respondError(c, err, "Failed to reorder events")
		}
		return c.JSON(dto.MessageResponse{Message: "Events reordered successfully"})
	}
}
