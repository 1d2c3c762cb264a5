package models

import (
	"fmt"
	"math"
	"strings"

	"github.com/golang-jwt/jwt/v4"

	"salespredictor/utils"
)

// --- Input bounds ---

const (
	MinYear        = 2020
	MaxYear        = 2030
	MaxDiscountPct = 50.0
)

// --- JWT & Session ---

// SessionClaims is the signed payload of the session cookie.
type SessionClaims struct {
	SessionID       string   `json:"sid"`
	PredictionMade  bool     `json:"pm"`
	PredictionValue *float64 `json:"pv,omitempty"`
	DemoMode        bool     `json:"dm"`
	jwt.RegisteredClaims
}

// Session holds the per-visitor dashboard flags.
type Session struct {
	ID              string   `json:"id"`
	PredictionMade  bool     `json:"prediction_made"`
	PredictionValue *float64 `json:"prediction_value,omitempty"`
	DemoMode        bool     `json:"demo_mode"`
}

// RecordPrediction marks a successful prediction.
func (s *Session) RecordPrediction(revenue float64) {
	s.PredictionMade = true
	s.PredictionValue = &revenue
}

// Reset clears the prediction flags. Demo mode survives a reset.
func (s *Session) Reset() {
	s.PredictionMade = false
	s.PredictionValue = nil
}

// --- Core Models ---

// SalesInput is one set of user-entered sales parameters.
type SalesInput struct {
	Year            int     `json:"year" form:"year"`
	UnitPriceUSD    float64 `json:"unit_price_usd" form:"unit_price_usd"`
	DiscountPct     float64 `json:"discount_pct" form:"discount_pct"`
	UnitsSold       int     `json:"units_sold" form:"units_sold"`
	ProductCategory string  `json:"product_category" form:"product_category"`
}

// DefaultSalesInput returns the values the dashboard starts with.
func DefaultSalesInput() SalesInput {
	return SalesInput{
		Year:            2023,
		UnitPriceUSD:    999,
		DiscountPct:     10,
		UnitsSold:       5000,
		ProductCategory: utils.DefaultProductCategory,
	}
}

// DiscountFactor is the share of the list price that remains after the discount.
func (in SalesInput) DiscountFactor() float64 {
	return 1 - in.DiscountPct/100
}

// Normalize returns a copy with the category in its canonical spelling,
// defaulting an empty category.
func (in SalesInput) Normalize() SalesInput {
	if strings.TrimSpace(in.ProductCategory) == "" {
		in.ProductCategory = utils.DefaultProductCategory
		return in
	}
	in.ProductCategory, _ = utils.ValidateAndNormalizeCategory(in.ProductCategory)
	return in
}

// Validate checks every field against its allowed range.
func (in SalesInput) Validate() error {
	var problems []string
	if in.Year < MinYear || in.Year > MaxYear {
		problems = append(problems, fmt.Sprintf("year must be between %d and %d", MinYear, MaxYear))
	}
	if !isFinite(in.UnitPriceUSD) || in.UnitPriceUSD < 0 {
		problems = append(problems, "unit_price_usd must be a finite, non-negative number")
	}
	if !isFinite(in.DiscountPct) || in.DiscountPct < 0 || in.DiscountPct > MaxDiscountPct {
		problems = append(problems, fmt.Sprintf("discount_pct must be between 0 and %g", MaxDiscountPct))
	}
	if in.UnitsSold < 0 {
		problems = append(problems, "units_sold must not be negative")
	}
	if !utils.IsValidCategory(in.ProductCategory) {
		problems = append(problems, fmt.Sprintf("product_category must be one of %s", strings.Join(utils.ProductCategories, ", ")))
	}
	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ValidationError lists every invalid field of a request.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid sales input: " + strings.Join(e.Problems, "; ")
}
