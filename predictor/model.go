// Package predictor turns sales inputs into revenue predictions, either through
// a trained model artifact or through the demo-mode heuristic.
package predictor

import (
	"errors"

	"salespredictor/models"
)

// Feature names the assembler knows how to fill.
const (
	FeatureYear         = "year"
	FeatureUnitPriceUSD = "unit_price_usd"
	FeatureDiscountPct  = "discount_pct"
	FeatureUnitsSold    = "units_sold"
)

var (
	// ErrModelLoad wraps every failure to produce a model from an artifact.
	ErrModelLoad = errors.New("model load failure")
	// ErrModelNotFound is returned alongside ErrModelLoad when the artifact file is missing.
	ErrModelNotFound = errors.New("model artifact not found")
	// ErrPrediction wraps any failure raised by a model while predicting.
	ErrPrediction = errors.New("prediction failure")
	// ErrFeatureMismatch reports a feature vector that does not match the model's declared features.
	ErrFeatureMismatch = errors.New("feature mismatch")
)

// Model is a predictor that declares its ordered input features.
type Model interface {
	FeatureNames() []string
	Predict(features models.FeatureVector) ([]float64, error)
}

// Describer is implemented by models that can report what they are.
type Describer interface {
	Describe() models.ModelInfo
}
