package handlers

import (
	"github.com/gofiber/fiber/v2"

	"salespredictor/advisor"
	"salespredictor/middleware"
	"salespredictor/models"
)

// HandleGenerateInsights returns tips for the submitted sales parameters, from
// Gemini when configured and the static pro tips otherwise.
// POST /api/v1/insights
func (h *Handler) HandleGenerateInsights(c *fiber.Ctx) error {
	in, err := parseSalesInput(c)
	if err != nil {
		return inputError(c, err)
	}

	// Insights do not count as a prediction and do not touch the session.
	res, err := h.Engine.Estimate(in, middleware.CurrentSession(c).DemoMode)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": "Prediction error: " + err.Error(),
		})
	}

	tips, source := advisor.Advise(c.UserContext(), h.Advisor, in, res, h.Metrics)
	return c.JSON(fiber.Map{
		"status": "success",
		"data":   models.InsightResponse{Source: source, Result: res, Tips: tips},
	})
}
