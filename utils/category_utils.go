package utils

import (
	"strings"
)

// ProductCategories lists the selectable product categories in display order.
var ProductCategories = []string{"iPhone", "iPad", "Mac", "Watch", "AirPods", "Services"}

// DefaultProductCategory is used when no category was submitted.
const DefaultProductCategory = "iPhone"

var validProductCategories = func() map[string]string {
	m := make(map[string]string, len(ProductCategories))
	for _, c := range ProductCategories {
		m[strings.ToLower(c)] = c
	}
	return m
}()

// ValidateAndNormalizeCategory validates a category case-insensitively.
// Returns the canonical spelling (e.g. "iphone" -> "iPhone") and whether it is known.
func ValidateAndNormalizeCategory(category string) (string, bool) {
	trimmed := strings.TrimSpace(category)
	if canonical, ok := validProductCategories[strings.ToLower(trimmed)]; ok {
		return canonical, true
	}
	return trimmed, false
}

// IsValidCategory checks if a category is valid without normalizing it
func IsValidCategory(category string) bool {
	_, ok := ValidateAndNormalizeCategory(category)
	return ok
}
