package handlers

import (
	"html"
	"runtime/debug"

	"github.com/gofiber/fiber/v2"

	"salespredictor/models"
)

// HandleHealth reports liveness and whether a trained model is loaded.
// GET /healthz
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	mode := models.ModeModel
	if !h.Engine.HasModel() {
		mode = models.ModeDemo
	}
	return c.JSON(fiber.Map{
		"status": "success",
		"data":   fiber.Map{"model_loaded": h.Engine.HasModel(), "mode": mode},
	})
}

// HandleVersion prints the build information of the running binary.
// GET /version
func (h *Handler) HandleVersion(c *fiber.Ctx) error {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return c.Status(500).SendString("no build information available")
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTML)
	return c.SendString("<pre>\n" + html.EscapeString(info.String()) + "</pre>\n")
}
