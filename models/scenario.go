package models

// Scenario is a row of the sample scenarios table.
type Scenario struct {
	ID                 int     `json:"id"`
	Name               string  `json:"name"`
	Product            string  `json:"product"`
	Year               int     `json:"year"`
	UnitPrice          float64 `json:"unit_price"`
	DiscountPct        float64 `json:"discount_pct"`
	UnitsSold          int     `json:"units_sold"`
	EstRevenueMillions float64 `json:"est_revenue_millions"`
}

// Input converts the scenario into a prediction input.
func (s Scenario) Input() SalesInput {
	return SalesInput{
		Year:            s.Year,
		UnitPriceUSD:    s.UnitPrice,
		DiscountPct:     s.DiscountPct,
		UnitsSold:       s.UnitsSold,
		ProductCategory: s.Product,
	}
}

// ScenarioEstimate pairs a scenario with a live prediction from the current model.
type ScenarioEstimate struct {
	Scenario
	LiveRevenue float64 `json:"live_revenue"`
	LiveMode    string  `json:"live_mode"`
}

// PaginatedScenariosResponse is the response structure for paginated scenarios.
type PaginatedScenariosResponse struct {
	Data       []ScenarioEstimate `json:"data"`
	Pagination PaginationInfo     `json:"pagination"`
}

// PaginationInfo holds metadata for paginated responses.
type PaginationInfo struct {
	TotalItems  int `json:"totalItems"`
	TotalPages  int `json:"totalPages"`
	CurrentPage int `json:"currentPage"`
	PageSize    int `json:"pageSize"`
}
