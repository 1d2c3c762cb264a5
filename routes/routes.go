package routes

import (
	"github.com/gofiber/fiber/v2"

	"salespredictor/handlers"
)

// SetupRoutes defines all the routes for the application.
func SetupRoutes(app *fiber.App, h *handlers.Handler) {
	// --- System Routes ---
	app.Get("/healthz", h.HandleHealth)
	app.Get("/version", h.HandleVersion)
	if h.Metrics != nil {
		app.Get("/metrics", h.Metrics.Handler())
	}

	session := h.Sessions.Handler()

	// --- Dashboard Routes ---
	app.Get("/", session, h.HandleDashboard)
	app.Post("/predict", session, h.HandlePredictForm)
	app.Post("/reset", session, h.HandleResetForm)
	app.Post("/demo-mode", session, h.HandleDemoModeForm)

	api := app.Group("/api/v1", session)

	// Predictions
	api.Post("/predictions", h.HandleCreatePrediction)
	api.Post("/insights", h.HandleGenerateInsights)

	// Model & Scenarios
	api.Get("/model", h.HandleGetModelInfo)
	api.Get("/scenarios", h.HandleListScenarios)

	// Session
	api.Get("/session", h.HandleGetSession)
	api.Post("/session/reset", h.HandleResetSession)
	api.Post("/session/demo-mode", h.HandleEnableDemoMode)
}
