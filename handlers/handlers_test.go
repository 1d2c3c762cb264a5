package handlers

import (
	"bytes"
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salespredictor/database"
	"salespredictor/models"
	"salespredictor/observability"
	"salespredictor/predictor"
)

type failingStore struct{}

func (failingStore) ListScenarios(context.Context) ([]models.Scenario, error) {
	return nil, errors.New("connection refused")
}

func TestNewDefaultsSessionManager(t *testing.T) {
	h := New(predictor.NewEngine(nil, nil), nil, nil, nil, nil)
	require.NotNil(t, h.Sessions)

	app := fiber.New()
	app.Post("/reset", h.Sessions.Handler(), h.HandleResetForm)
	app.Post("/demo-mode", h.Sessions.Handler(), h.HandleDemoModeForm)

	for _, path := range []string{"/reset", "/demo-mode"} {
		resp, err := app.Test(httptest.NewRequest("POST", path, nil), -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode, path)
	}
}

func TestFormatMetrics(t *testing.T) {
	m := models.DisplayMetrics{
		PredictedRevenue:     49500,
		DiscountedUnitPrice:  9,
		TotalUnits:           5000,
		TotalDiscount:        5000,
		AvgRevenuePerUnit:    9.9,
		AvgVsDiscountedPrice: 0.9,
		DiscountPct:          10,
	}

	f := formatMetrics(m)
	assert.Equal(t, "$49,500.00", f.PredictedRevenue)
	assert.Equal(t, "$9.00", f.DiscountedUnitPrice)
	assert.Equal(t, "5,000", f.TotalUnits)
	assert.Equal(t, "$5,000.00", f.TotalDiscount)
	assert.Equal(t, "10% off", f.DiscountLabel)
	assert.Equal(t, "$9.90", f.AvgRevenuePerUnit)
	assert.Equal(t, "$0.90 vs discounted", f.AvgVsDiscountedPrice)
}

func TestScenarioEstimatesFallBackToDefaults(t *testing.T) {
	metrics := observability.NewMetrics()
	h := New(predictor.NewEngine(nil, metrics), failingStore{}, nil, nil, metrics)

	out := h.scenarioEstimates(context.Background(), false)
	defaults, _ := database.DefaultScenarios().ListScenarios(context.Background())
	require.Len(t, out, len(defaults))
	for i, est := range out {
		assert.Equal(t, defaults[i].Name, est.Name)
		assert.Equal(t, models.ModeDemo, est.LiveMode)
		assert.InDelta(t, predictor.DemoRevenue(defaults[i].Input()), est.LiveRevenue, 1e-6)
	}
}

func TestDashboardTemplateShowsLastPrediction(t *testing.T) {
	last := 12345.0
	view := dashboardView{
		Input:      models.DefaultSalesInput(),
		Session:    &models.Session{ID: "s1", PredictionMade: true, PredictionValue: &last},
		HasModel:   true,
		ModelInfo:  models.ModelInfo{Type: "LinearRegression", FeatureCount: 5, Metrics: models.ModelMetrics{R2: 0.85}},
		TipsSource: "static",
	}

	var buf bytes.Buffer
	require.NoError(t, dashboardTemplate.Execute(&buf, view))
	html := buf.String()
	assert.Contains(t, html, "Last prediction this session: $12,345.00")
	assert.Contains(t, html, "0.850")
	assert.NotContains(t, html, "Enable Demo Mode")
	assert.Contains(t, html, "model mode")
}
