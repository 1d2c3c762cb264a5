package predictor

import (
	"errors"
	"log"

	"salespredictor/models"
	"salespredictor/observability"
)

// Engine holds the model selected at startup and serves predictions from it.
// It is safe for concurrent use: the model is read-only after construction.
type Engine struct {
	model   Model
	metrics *observability.Metrics
}

// NewEngine builds an engine. A nil model puts the whole process in demo mode.
// metrics may be nil.
func NewEngine(m Model, metrics *observability.Metrics) *Engine {
	e := &Engine{model: m, metrics: metrics}
	if metrics != nil {
		if m != nil {
			metrics.ModelLoaded.Set(1)
		} else {
			metrics.ModelLoaded.Set(0)
		}
	}
	return e
}

// NewEngineFromCache resolves the cached artifact and falls back to demo mode
// when it cannot be loaded. The load error is returned for the caller to report.
func NewEngineFromCache(cache *ModelCache, metrics *observability.Metrics) (*Engine, error) {
	m, err := cache.Get()
	if err != nil {
		if errors.Is(err, ErrModelNotFound) {
			log.Printf("⚠️ [MODEL] No artifact at %s, running in demo mode", cache.Path())
		} else {
			log.Printf("❌ [MODEL] Error loading model: %v", err)
		}
		return NewEngine(nil, metrics), err
	}
	log.Printf("✅ [MODEL] Loaded %s with %d features", cache.Path(), len(m.FeatureNames()))
	return NewEngine(m, metrics), nil
}

// HasModel reports whether a trained model is loaded.
func (e *Engine) HasModel() bool {
	return e.model != nil
}

// Predict runs one prediction and records it in the metrics. demo forces the
// heuristic even when a model is loaded.
func (e *Engine) Predict(in models.SalesInput, demo bool) (models.PredictionResult, error) {
	res, err := e.Estimate(in, demo)
	if e.metrics != nil {
		if err != nil {
			e.metrics.PredictionFailures.Inc()
		} else {
			e.metrics.PredictionsTotal.WithLabelValues(res.Mode).Inc()
		}
	}
	return res, err
}

// Estimate is Predict without metrics, for derived figures such as scenario tables.
func (e *Engine) Estimate(in models.SalesInput, demo bool) (models.PredictionResult, error) {
	if e.model == nil || demo {
		return Resolve(nil, models.FeatureVector{}, in)
	}
	return Resolve(e.model, Assemble(e.model.FeatureNames(), in), in)
}

// ModelInfo describes the active model, or the heuristic in demo mode.
func (e *Engine) ModelInfo() models.ModelInfo {
	if d, ok := e.model.(Describer); ok {
		return d.Describe()
	}
	if e.model != nil {
		names := e.model.FeatureNames()
		return models.ModelInfo{Type: "Custom", FeatureCount: len(names), FeatureNames: names}
	}
	return HeuristicModel{}.Describe()
}

// Metrics derives the dashboard figures for a prediction.
func Metrics(in models.SalesInput, res models.PredictionResult) models.DisplayMetrics {
	var perUnit float64
	if in.UnitsSold > 0 {
		perUnit = res.Revenue / float64(in.UnitsSold)
	}
	return models.DisplayMetrics{
		PredictedRevenue:     res.Revenue,
		DiscountedUnitPrice:  res.DiscountedUnitPrice,
		TotalUnits:           in.UnitsSold,
		TotalDiscount:        in.UnitPriceUSD * (in.DiscountPct / 100) * float64(in.UnitsSold),
		AvgRevenuePerUnit:    perUnit,
		AvgVsDiscountedPrice: perUnit - res.DiscountedUnitPrice,
		DiscountPct:          in.DiscountPct,
	}
}

// Breakdown is the model-independent price summary of an input.
func Breakdown(in models.SalesInput) models.PriceBreakdown {
	final := DiscountedUnitPrice(in)
	return models.PriceBreakdown{
		OriginalPrice:   in.UnitPriceUSD,
		DiscountPerUnit: in.UnitPriceUSD * in.DiscountPct / 100,
		FinalPrice:      final,
		TotalValue:      float64(in.UnitsSold) * final,
	}
}
