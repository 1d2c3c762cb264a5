package models

import (
	"bytes"
	"encoding/json"
)

// Prediction modes.
const (
	ModeModel = "model"
	ModeDemo  = "demo"
)

// FeatureVector is an ordered name -> value mapping in the order a model declares.
type FeatureVector struct {
	names  []string
	values map[string]float64
}

// NewFeatureVector creates a vector with every name set to zero.
// Repeated names keep their first position.
func NewFeatureVector(names []string) FeatureVector {
	fv := FeatureVector{
		names:  make([]string, 0, len(names)),
		values: make(map[string]float64, len(names)),
	}
	for _, name := range names {
		if _, seen := fv.values[name]; seen {
			continue
		}
		fv.names = append(fv.names, name)
		fv.values[name] = 0
	}
	return fv
}

// Set overwrites an existing feature. Unknown names are ignored and reported as false.
func (fv FeatureVector) Set(name string, value float64) bool {
	if _, ok := fv.values[name]; !ok {
		return false
	}
	fv.values[name] = value
	return true
}

// Get returns the value of a feature and whether it exists.
func (fv FeatureVector) Get(name string) (float64, bool) {
	v, ok := fv.values[name]
	return v, ok
}

func (fv FeatureVector) Has(name string) bool {
	_, ok := fv.values[name]
	return ok
}

// Names returns the feature names in order.
func (fv FeatureVector) Names() []string {
	out := make([]string, len(fv.names))
	copy(out, fv.names)
	return out
}

// Values returns the feature values in name order.
func (fv FeatureVector) Values() []float64 {
	out := make([]float64, len(fv.names))
	for i, name := range fv.names {
		out[i] = fv.values[name]
	}
	return out
}

func (fv FeatureVector) Len() int { return len(fv.names) }

// MarshalJSON writes the vector as a JSON object keeping feature order.
func (fv FeatureVector) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range fv.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(fv.values[name])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// PredictionResult is the outcome of a single prediction.
type PredictionResult struct {
	Revenue             float64 `json:"revenue"`
	DiscountedUnitPrice float64 `json:"discounted_unit_price"`
	Mode                string  `json:"mode"`
}

// DisplayMetrics are the figures shown next to a prediction.
type DisplayMetrics struct {
	PredictedRevenue     float64 `json:"predicted_revenue"`
	DiscountedUnitPrice  float64 `json:"discounted_unit_price"`
	TotalUnits           int     `json:"total_units"`
	TotalDiscount        float64 `json:"total_discount"`
	AvgRevenuePerUnit    float64 `json:"avg_revenue_per_unit"`
	AvgVsDiscountedPrice float64 `json:"avg_vs_discounted_price"`
	DiscountPct          float64 `json:"discount_pct"`
}

// PriceBreakdown is the per-unit price summary of an input, independent of any model.
type PriceBreakdown struct {
	OriginalPrice   float64 `json:"original_price"`
	DiscountPerUnit float64 `json:"discount_per_unit"`
	FinalPrice      float64 `json:"final_price"`
	TotalValue      float64 `json:"total_value"`
}

// ModelMetrics are the offline evaluation scores shipped with a model.
type ModelMetrics struct {
	R2   float64 `json:"r2" yaml:"r2"`
	RMSE float64 `json:"rmse" yaml:"rmse"`
	MAE  float64 `json:"mae" yaml:"mae"`
}

// ModelInfo describes the model serving predictions.
type ModelInfo struct {
	Type         string       `json:"type"`
	FeatureCount int          `json:"feature_count"`
	FeatureNames []string     `json:"feature_names"`
	TrainedAt    string       `json:"trained_at,omitempty"`
	Metrics      ModelMetrics `json:"metrics"`
	Source       string       `json:"source,omitempty"`
}

// FormattedMetrics are DisplayMetrics rendered for people.
type FormattedMetrics struct {
	PredictedRevenue     string `json:"predicted_revenue"`
	DiscountedUnitPrice  string `json:"discounted_unit_price"`
	TotalUnits           string `json:"total_units"`
	TotalDiscount        string `json:"total_discount"`
	DiscountLabel        string `json:"discount_label"`
	AvgRevenuePerUnit    string `json:"avg_revenue_per_unit"`
	AvgVsDiscountedPrice string `json:"avg_vs_discounted_price"`
}

// PredictionResponse is the payload of a successful prediction.
type PredictionResponse struct {
	Input     SalesInput       `json:"input"`
	Result    PredictionResult `json:"result"`
	Metrics   DisplayMetrics   `json:"metrics"`
	Breakdown PriceBreakdown   `json:"breakdown"`
	Formatted FormattedMetrics `json:"formatted"`
}
