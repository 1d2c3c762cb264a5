package predictor

import (
	"fmt"
	"math"

	"salespredictor/models"
)

// TrainedModel is a linear regression exported from the training pipeline.
type TrainedModel struct {
	Type           string              `json:"type" yaml:"type"`
	FeatureNamesIn []string            `json:"feature_names_in" yaml:"feature_names_in"`
	Coefficients   []float64           `json:"coefficients" yaml:"coefficients"`
	Intercept      float64             `json:"intercept" yaml:"intercept"`
	TrainedAt      string              `json:"trained_at" yaml:"trained_at"`
	Metrics        models.ModelMetrics `json:"metrics" yaml:"metrics"`

	source string
}

// FeatureNames returns the features in the order the model was trained on.
func (m *TrainedModel) FeatureNames() []string {
	out := make([]string, len(m.FeatureNamesIn))
	copy(out, m.FeatureNamesIn)
	return out
}

// Predict evaluates intercept + Σ coef·x. The vector must carry exactly the
// model's features in the trained order.
func (m *TrainedModel) Predict(features models.FeatureVector) ([]float64, error) {
	names := features.Names()
	if len(names) != len(m.FeatureNamesIn) {
		return nil, fmt.Errorf("%w: expected %d features, got %d", ErrFeatureMismatch, len(m.FeatureNamesIn), len(names))
	}
	for i, name := range names {
		if name != m.FeatureNamesIn[i] {
			return nil, fmt.Errorf("%w: feature %d is %q, expected %q", ErrFeatureMismatch, i, name, m.FeatureNamesIn[i])
		}
	}

	y := m.Intercept
	for i, x := range features.Values() {
		y += m.Coefficients[i] * x
	}
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return nil, fmt.Errorf("model produced a non-finite value")
	}
	return []float64{y}, nil
}

// Describe reports the model type, features and offline scores.
func (m *TrainedModel) Describe() models.ModelInfo {
	typ := m.Type
	if typ == "" {
		typ = "LinearRegression"
	}
	return models.ModelInfo{
		Type:         typ,
		FeatureCount: len(m.FeatureNamesIn),
		FeatureNames: m.FeatureNames(),
		TrainedAt:    m.TrainedAt,
		Metrics:      m.Metrics,
		Source:       m.source,
	}
}

func (m *TrainedModel) validate() error {
	if len(m.FeatureNamesIn) == 0 {
		return fmt.Errorf("artifact declares no features")
	}
	if len(m.Coefficients) != len(m.FeatureNamesIn) {
		return fmt.Errorf("artifact has %d coefficients for %d features", len(m.Coefficients), len(m.FeatureNamesIn))
	}
	seen := make(map[string]struct{}, len(m.FeatureNamesIn))
	for _, name := range m.FeatureNamesIn {
		if name == "" {
			return fmt.Errorf("artifact declares an empty feature name")
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("artifact declares feature %q twice", name)
		}
		seen[name] = struct{}{}
	}
	return nil
}
