package handlers

import (
	"github.com/gofiber/fiber/v2"

	"salespredictor/middleware"
	"salespredictor/models"
	"salespredictor/utils"
)

// HandleGetModelInfo describes the model serving predictions.
// GET /api/v1/model
func (h *Handler) HandleGetModelInfo(c *fiber.Ctx) error {
	sess := middleware.CurrentSession(c)
	return c.JSON(fiber.Map{
		"status": "success",
		"data": fiber.Map{
			"model":     h.Engine.ModelInfo(),
			"has_model": h.Engine.HasModel(),
			"demo_mode": !h.Engine.HasModel() || sess.DemoMode,
		},
	})
}

// HandleListScenarios lists the sample scenarios with a live estimate each.
// GET /api/v1/scenarios?page=1&pageSize=10
func (h *Handler) HandleListScenarios(c *fiber.Ctx) error {
	sess := middleware.CurrentSession(c)
	all := h.scenarioEstimates(c.UserContext(), sess.DemoMode)

	p := utils.CreatePagination(len(all), c.QueryInt("page", 1), c.QueryInt("pageSize", 10))
	start, end := p.Bounds()

	return c.JSON(fiber.Map{
		"status": "success",
		"data": models.PaginatedScenariosResponse{
			Data: all[start:end],
			Pagination: models.PaginationInfo{
				TotalItems:  p.TotalItems,
				TotalPages:  p.TotalPages,
				CurrentPage: p.CurrentPage,
				PageSize:    p.PageSize,
			},
		},
	})
}
