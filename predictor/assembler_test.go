package predictor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"salespredictor/models"
)

func TestAssembleMapsKnownFeatures(t *testing.T) {
	names := []string{"year", "unit_price_usd", "discount_pct", "units_sold", "extra_feature"}
	in := models.SalesInput{Year: 2023, UnitPriceUSD: 999, DiscountPct: 10, UnitsSold: 5000, ProductCategory: "iPhone"}

	fv := Assemble(names, in)

	assert.Equal(t, names, fv.Names())
	assert.Equal(t, []float64{2023, 999, 10, 5000, 0}, fv.Values())
}

func TestAssembleKeepsModelOrder(t *testing.T) {
	names := []string{"units_sold", "extra", "year"}
	fv := Assemble(names, models.SalesInput{Year: 2021, UnitPriceUSD: 50, DiscountPct: 5, UnitsSold: 7})

	assert.Equal(t, names, fv.Names())
	assert.Equal(t, []float64{7, 0, 2021}, fv.Values())
	assert.False(t, fv.Has(FeatureUnitPriceUSD))
}

func TestAssembleEmpty(t *testing.T) {
	assert.Equal(t, 0, Assemble([]string{}, models.DefaultSalesInput()).Len())
	assert.Equal(t, 0, Assemble(nil, models.DefaultSalesInput()).Len())
}

func TestAssembleIgnoresCategory(t *testing.T) {
	fv := Assemble([]string{"product_category"}, models.SalesInput{ProductCategory: "Mac"})
	v, ok := fv.Get("product_category")
	assert.True(t, ok)
	assert.Equal(t, 0.0, v)
}
