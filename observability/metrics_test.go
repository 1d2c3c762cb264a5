package observability

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsHandler(t *testing.T) {
	m := NewMetrics()
	m.PredictionsTotal.WithLabelValues("demo").Inc()
	m.ModelLoaded.Set(1)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.PredictionsTotal.WithLabelValues("demo")))

	app := fiber.New()
	app.Get("/metrics", m.Handler())

	resp, err := app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `predictions_total{mode="demo"} 1`)
	assert.Contains(t, string(body), "model_loaded 1")
}

func TestNewMetricsIsolated(t *testing.T) {
	a := NewMetrics()
	b := NewMetrics()
	a.SessionResetsTotal.Inc()
	assert.Equal(t, 1.0, testutil.ToFloat64(a.SessionResetsTotal))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.SessionResetsTotal))
}
