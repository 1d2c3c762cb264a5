package handlers

import (
	"bytes"
	_ "embed"
	"html/template"
	"log"

	"github.com/gofiber/fiber/v2"

	"salespredictor/advisor"
	"salespredictor/middleware"
	"salespredictor/models"
	"salespredictor/predictor"
	"salespredictor/utils"
)

//go:embed templates/dashboard.html
var dashboardHTML string

var dashboardTemplate = template.Must(template.New("dashboard").Funcs(template.FuncMap{
	"usd":      utils.FormatUSD,
	"usdWhole": utils.FormatUSDWhole,
	"count":    utils.FormatCount,
	"pct":      utils.FormatPercent,
	"millions": utils.FormatMillions,
	"deref": func(v *float64) float64 {
		if v == nil {
			return 0
		}
		return *v
	},
}).Parse(dashboardHTML))

type dashboardView struct {
	Input       models.SalesInput
	Categories  []string
	MinYear     int
	MaxYear     int
	MaxDiscount float64

	Breakdown models.PriceBreakdown
	Result    *models.PredictionResponse
	Error     string

	Session        *models.Session
	HasModel       bool
	DemoActive     bool
	ShowDemoButton bool
	ModelInfo      models.ModelInfo

	Scenarios  []models.ScenarioEstimate
	Tips       []models.Tip
	TipsSource string
}

func (h *Handler) buildView(c *fiber.Ctx, in models.SalesInput) dashboardView {
	sess := middleware.CurrentSession(c)
	tips, _ := advisor.StaticAdvisor{}.Tips(c.UserContext(), in, models.PredictionResult{})
	return dashboardView{
		Input:          in,
		Categories:     utils.ProductCategories,
		MinYear:        models.MinYear,
		MaxYear:        models.MaxYear,
		MaxDiscount:    models.MaxDiscountPct,
		Breakdown:      predictor.Breakdown(in),
		Session:        sess,
		HasModel:       h.Engine.HasModel(),
		DemoActive:     !h.Engine.HasModel() || sess.DemoMode,
		ShowDemoButton: !h.Engine.HasModel() && !sess.DemoMode,
		ModelInfo:      h.Engine.ModelInfo(),
		Scenarios:      h.scenarioEstimates(c.UserContext(), sess.DemoMode),
		Tips:           tips,
		TipsSource:     "static",
	}
}

func (h *Handler) render(c *fiber.Ctx, status int, view dashboardView) error {
	var buf bytes.Buffer
	if err := h.dashboard.Execute(&buf, view); err != nil {
		log.Printf("❌ [DASHBOARD] Error rendering dashboard: %v", err)
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to render dashboard")
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(status).Send(buf.Bytes())
}

// HandleDashboard renders the dashboard with the default inputs.
// GET /
func (h *Handler) HandleDashboard(c *fiber.Ctx) error {
	return h.render(c, fiber.StatusOK, h.buildView(c, models.DefaultSalesInput()))
}

// HandlePredictForm runs a prediction from the sidebar form and re-renders the dashboard.
// POST /predict
func (h *Handler) HandlePredictForm(c *fiber.Ctx) error {
	in, err := parseSalesInput(c)
	if err != nil {
		view := h.buildView(c, in)
		view.Error = err.Error()
		return h.render(c, fiber.StatusBadRequest, view)
	}

	resp, err := h.predict(c, in)
	if err != nil {
		view := h.buildView(c, in)
		view.Error = "Prediction error: " + err.Error()
		return h.render(c, fiber.StatusInternalServerError, view)
	}

	view := h.buildView(c, in)
	view.Result = &resp
	view.Tips, view.TipsSource = advisor.Advise(c.UserContext(), h.Advisor, in, resp.Result, h.Metrics)
	return h.render(c, fiber.StatusOK, view)
}

// HandleResetForm clears the last prediction and goes back to the dashboard.
// POST /reset
func (h *Handler) HandleResetForm(c *fiber.Ctx) error {
	if _, err := h.resetSession(c); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to reset session")
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

// HandleDemoModeForm enables demo mode when no model is loaded.
// POST /demo-mode
func (h *Handler) HandleDemoModeForm(c *fiber.Ctx) error {
	if !h.Engine.HasModel() {
		if _, err := h.enableDemoMode(c); err != nil {
			return c.Status(fiber.StatusInternalServerError).SendString("Failed to enable demo mode")
		}
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}
