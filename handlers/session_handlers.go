package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"salespredictor/middleware"
	"salespredictor/models"
)

// HandleGetSession returns the current session flags.
// GET /api/v1/session
func (h *Handler) HandleGetSession(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "success", "data": middleware.CurrentSession(c)})
}

// HandleResetSession clears the last prediction. Demo mode is kept.
// POST /api/v1/session/reset
func (h *Handler) HandleResetSession(c *fiber.Ctx) error {
	sess, err := h.resetSession(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to reset session"})
	}
	return c.JSON(fiber.Map{"status": "success", "data": sess})
}

// HandleEnableDemoMode switches the session to demo predictions. Only allowed
// while no trained model is loaded.
// POST /api/v1/session/demo-mode
func (h *Handler) HandleEnableDemoMode(c *fiber.Ctx) error {
	if h.Engine.HasModel() {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"status": "error", "message": "A trained model is loaded; demo mode is not available"})
	}
	sess, err := h.enableDemoMode(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to enable demo mode"})
	}
	return c.JSON(fiber.Map{"status": "success", "data": sess})
}

func (h *Handler) resetSession(c *fiber.Ctx) (*models.Session, error) {
	sess := middleware.CurrentSession(c)
	sess.Reset()
	if err := h.Sessions.Save(c, sess); err != nil {
		return nil, err
	}
	if h.Metrics != nil {
		h.Metrics.SessionResetsTotal.Inc()
	}
	log.Printf("🔄 [SESSION] Session %s reset", sess.ID)
	return sess, nil
}

func (h *Handler) enableDemoMode(c *fiber.Ctx) (*models.Session, error) {
	sess := middleware.CurrentSession(c)
	sess.DemoMode = true
	if err := h.Sessions.Save(c, sess); err != nil {
		return nil, err
	}
	log.Printf("🎯 [SESSION] Session %s switched to demo mode", sess.ID)
	return sess, nil
}
