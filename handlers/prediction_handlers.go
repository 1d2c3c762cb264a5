package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// HandleCreatePrediction predicts revenue for the submitted sales parameters.
// POST /api/v1/predictions
func (h *Handler) HandleCreatePrediction(c *fiber.Ctx) error {
	in, err := parseSalesInput(c)
	if err != nil {
		return inputError(c, err)
	}

	resp, err := h.predict(c, in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": "Prediction error: " + err.Error(),
		})
	}

	return c.JSON(fiber.Map{"status": "success", "data": resp})
}
