package predictor

import (
	"fmt"

	"salespredictor/models"
)

// DemoMarkup is the fixed markup applied over the discounted list price in demo mode.
const DemoMarkup = 1.1

// DiscountedUnitPrice is the list price reduced by the discount percentage.
func DiscountedUnitPrice(in models.SalesInput) float64 {
	return in.UnitPriceUSD * (1 - in.DiscountPct/100)
}

// DemoRevenue is the closed-form estimate used when no trained model is available.
func DemoRevenue(in models.SalesInput) float64 {
	return float64(in.UnitsSold) * in.UnitPriceUSD * (1 - in.DiscountPct/100) * DemoMarkup
}

// Resolve predicts revenue for an input. A nil model selects the demo formula and
// is never called; otherwise the first value returned by the model is the revenue.
// Model failures come back wrapped in ErrPrediction and are not retried.
func Resolve(m Model, features models.FeatureVector, in models.SalesInput) (models.PredictionResult, error) {
	res := models.PredictionResult{DiscountedUnitPrice: DiscountedUnitPrice(in)}

	if m == nil {
		res.Revenue = DemoRevenue(in)
		res.Mode = models.ModeDemo
		return res, nil
	}

	out, err := callModel(m, features)
	if err != nil {
		return models.PredictionResult{}, fmt.Errorf("%w: %w", ErrPrediction, err)
	}
	if len(out) == 0 {
		return models.PredictionResult{}, fmt.Errorf("%w: model returned no values", ErrPrediction)
	}

	res.Revenue = out[0]
	res.Mode = models.ModeModel
	return res, nil
}

func callModel(m Model, features models.FeatureVector) (out []float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, fmt.Errorf("model panicked: %v", r)
		}
	}()
	return m.Predict(features)
}
