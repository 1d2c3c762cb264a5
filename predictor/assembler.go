package predictor

import "salespredictor/models"

// Assemble builds the feature vector a model expects from a sales input.
// Every expected name starts at zero; the four known fields overwrite their
// feature when the model declares it. ProductCategory is never mapped.
func Assemble(expectedFeatureNames []string, in models.SalesInput) models.FeatureVector {
	fv := models.NewFeatureVector(expectedFeatureNames)
	fv.Set(FeatureYear, float64(in.Year))
	fv.Set(FeatureUnitPriceUSD, in.UnitPriceUSD)
	fv.Set(FeatureDiscountPct, in.DiscountPct)
	fv.Set(FeatureUnitsSold, float64(in.UnitsSold))
	return fv
}
