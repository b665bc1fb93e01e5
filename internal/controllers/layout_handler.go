package controllers

import (
	"github.com/gofiber/fiber/v2"

	"dj-site/dto"
	"dj-site/internal/services"
)

// ScreenLayoutHandler godoc
// @Summary Screen stack layout
// @Description Sections of the page and their offsets for a viewport height and scroll position
// @Tags layout
// @Produce json
// @Param viewportHeight query number true "Viewport height in px"
// @Param scrollY query number false "Vertical scroll offset in px"
// @Success 200 {object} dto.LayoutResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/screen-layout [get]
func ScreenLayoutHandler(svc *services.LayoutService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var q dto.LayoutQuery
		if err := c.QueryParser(&q); err != nil {
			return fail(c, fiber.StatusBadRequest, "Invalid query parameters")
		}
		res, err := svc.Layout(c.UserContext(), q)
		if err != nil {
			return respondError(c, err, "Failed to build layout")
		}
		return c.JSON(res)
	}
}
