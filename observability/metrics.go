package observability

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups the collectors exported by the service.
type Metrics struct {
	registry *prometheus.Registry

	PredictionsTotal      *prometheus.CounterVec
	PredictionFailures    prometheus.Counter
	ModelLoaded           prometheus.Gauge
	SessionResetsTotal    prometheus.Counter
	InsightFallbacksTotal prometheus.Counter
}

// NewMetrics registers the service collectors on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		PredictionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "predictions_total",
				Help: "Total predictions served, by mode",
			},
			[]string{"mode"},
		),
		PredictionFailures: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "prediction_failures_total",
				Help: "Total predictions aborted by a model failure",
			},
		),
		ModelLoaded: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "model_loaded",
				Help: "1 when a trained model is loaded, 0 in demo mode",
			},
		),
		SessionResetsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "session_resets_total",
				Help: "Total session resets",
			},
		),
		InsightFallbacksTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "insight_fallbacks_total",
				Help: "Total static tips served after a Gemini failure",
			},
		),
	}
	m.registry.MustRegister(
		m.PredictionsTotal,
		m.PredictionFailures,
		m.ModelLoaded,
		m.SessionResetsTotal,
		m.InsightFallbacksTotal,
		collectors.NewGoCollector(),
	)
	return m
}

// Registry exposes the underlying registry, mostly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
