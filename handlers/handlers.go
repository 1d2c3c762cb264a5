package handlers

import (
	"context"
	"errors"
	"html/template"
	"log"

	"github.com/gofiber/fiber/v2"

	"salespredictor/advisor"
	"salespredictor/database"
	"salespredictor/middleware"
	"salespredictor/models"
	"salespredictor/observability"
	"salespredictor/predictor"
	"salespredictor/utils"
)

// Handler carries the dependencies shared by every route.
type Handler struct {
	Engine    *predictor.Engine
	Scenarios database.ScenarioStore
	Advisor   advisor.Advisor
	Sessions  *middleware.SessionManager
	Metrics   *observability.Metrics

	dashboard *template.Template
}

// New builds a Handler. A nil scenario store or advisor falls back to the
// built-in ones, and a nil session manager to one with a per-process key.
func New(engine *predictor.Engine, scenarios database.ScenarioStore, adv advisor.Advisor, sessions *middleware.SessionManager, metrics *observability.Metrics) *Handler {
	if scenarios == nil {
		scenarios = database.DefaultScenarios()
	}
	if adv == nil {
		adv = advisor.StaticAdvisor{}
	}
	if sessions == nil {
		// An empty secret only fails if the system random source does.
		key, err := middleware.DeriveSessionKey("")
		if err != nil {
			log.Fatalf("❌ [SESSION] Unable to create session key: %v", err)
		}
		sessions = middleware.NewSessionManager(key)
	}
	return &Handler{
		Engine:    engine,
		Scenarios: scenarios,
		Advisor:   adv,
		Sessions:  sessions,
		Metrics:   metrics,
		dashboard: dashboardTemplate,
	}
}

// parseSalesInput reads a JSON or form body on top of the dashboard defaults.
func parseSalesInput(c *fiber.Ctx) (models.SalesInput, error) {
	in := models.DefaultSalesInput()
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return in, errInvalidBody
		}
	}
	in = in.Normalize()
	return in, in.Validate()
}

var errInvalidBody = errors.New("invalid request body")

func inputError(c *fiber.Ctx, err error) error {
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid sales input", "errors": verr.Problems})
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
}

func formatMetrics(m models.DisplayMetrics) models.FormattedMetrics {
	return models.FormattedMetrics{
		PredictedRevenue:     utils.FormatUSD(m.PredictedRevenue),
		DiscountedUnitPrice:  utils.FormatUSD(m.DiscountedUnitPrice),
		TotalUnits:           utils.FormatCount(m.TotalUnits),
		TotalDiscount:        utils.FormatUSD(m.TotalDiscount),
		DiscountLabel:        utils.FormatPercentOff(m.DiscountPct),
		AvgRevenuePerUnit:    utils.FormatUSD(m.AvgRevenuePerUnit),
		AvgVsDiscountedPrice: utils.FormatUSD(m.AvgVsDiscountedPrice) + " vs discounted",
	}
}

// predict runs a prediction for the current session and records it on success.
// The session is left untouched when the model fails.
func (h *Handler) predict(c *fiber.Ctx, in models.SalesInput) (models.PredictionResponse, error) {
	sess := middleware.CurrentSession(c)

	res, err := h.Engine.Predict(in, sess.DemoMode)
	if err != nil {
		log.Printf("❌ [PREDICT] Session %s: %v", sess.ID, err)
		return models.PredictionResponse{}, err
	}

	sess.RecordPrediction(res.Revenue)
	if err := h.Sessions.Save(c, sess); err != nil {
		log.Printf("⚠️ [PREDICT] Could not persist session %s: %v", sess.ID, err)
	}

	metrics := predictor.Metrics(in, res)
	log.Printf("✅ [PREDICT] Session %s: %s revenue %.2f (%s)", sess.ID, in.ProductCategory, res.Revenue, res.Mode)
	return models.PredictionResponse{
		Input:     in,
		Result:    res,
		Metrics:   metrics,
		Breakdown: predictor.Breakdown(in),
		Formatted: formatMetrics(metrics),
	}, nil
}

// scenarioEstimates lists the scenarios with a live estimate each. A failing
// store falls back to the built-in catalog.
func (h *Handler) scenarioEstimates(ctx context.Context, demo bool) []models.ScenarioEstimate {
	scenarios, err := h.Scenarios.ListScenarios(ctx)
	if err != nil {
		log.Printf("⚠️ [SCENARIOS] Error listing scenarios, using defaults: %v", err)
		scenarios, _ = database.DefaultScenarios().ListScenarios(ctx)
	}

	out := make([]models.ScenarioEstimate, 0, len(scenarios))
	for _, s := range scenarios {
		est := models.ScenarioEstimate{Scenario: s}
		if res, err := h.Engine.Estimate(s.Input().Normalize(), demo); err == nil {
			est.LiveRevenue = res.Revenue
			est.LiveMode = res.Mode
		} else {
			log.Printf("⚠️ [SCENARIOS] No live estimate for %q: %v", s.Name, err)
		}
		out = append(out, est)
	}
	return out
}
