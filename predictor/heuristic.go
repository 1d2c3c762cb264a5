package predictor

import "salespredictor/models"

// HeuristicModel is the demo-mode formula exposed through the Model interface.
type HeuristicModel struct{}

func (HeuristicModel) FeatureNames() []string {
	return []string{FeatureUnitPriceUSD, FeatureDiscountPct, FeatureUnitsSold}
}

// Predict reads price, discount and units from the vector and applies the demo formula.
func (HeuristicModel) Predict(features models.FeatureVector) ([]float64, error) {
	price, _ := features.Get(FeatureUnitPriceUSD)
	discount, _ := features.Get(FeatureDiscountPct)
	units, _ := features.Get(FeatureUnitsSold)
	return []float64{units * price * (1 - discount/100) * DemoMarkup}, nil
}

func (h HeuristicModel) Describe() models.ModelInfo {
	names := h.FeatureNames()
	return models.ModelInfo{
		Type:         "Heuristic",
		FeatureCount: len(names),
		FeatureNames: names,
		Source:       "demo mode",
	}
}
