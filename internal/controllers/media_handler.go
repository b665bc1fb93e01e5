package controllers

import (
	"context"
	"io"
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"

	"dj-site/internal/services"
)

const mediaReadTimeout = 30 * time.Second

// MediaHandler godoc
// @Summary Stored event image
// @Tags media
// @Produce image/jpeg
// @Param path path string true "Object path, e.g. events/Name_1700000000000.jpg"
// @Success 200 {file} binary
// @Failure 404 {object} dto.ErrorResponse
// @Router /media/{path} [get]
func MediaHandler(storage *services.StorageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		path, err := url.PathUnescape(c.Params("*"))
		if err != nil || path == "" {
			return fail(c, fiber.StatusNotFound, "Image not found")
		}

		ctx, cancel := context.WithTimeout(c.UserContext(), mediaReadTimeout)
		defer cancel()

		obj, err := storage.Open(ctx, path)
		if err != nil {
			return respondError(c, err, "Failed to read image")
		}
		defer obj.Close()

		// read fully while ctx is alive; stored images are bounded by the upload limit
		data, err := io.ReadAll(obj)
		if err != nil {
			return respondError(c, err, "Failed to read image")
		}
		c.Set(fiber.HeaderContentType, obj.ContentType)
		c.Set(fiber.HeaderCacheControl, "public, max-age=31536000, immutable")
		return c.Send(data)
	}
}
