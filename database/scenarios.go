package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"salespredictor/models"
)

// ScenarioStore lists the sample scenarios shown on the dashboard.
type ScenarioStore interface {
	ListScenarios(ctx context.Context) ([]models.Scenario, error)
}

// StaticScenarios is the built-in catalog used when no database is configured.
type StaticScenarios []models.Scenario

// DefaultScenarios returns the four built-in sample scenarios.
func DefaultScenarios() StaticScenarios {
	return StaticScenarios{
		{ID: 1, Name: "Base Case", Product: "iPhone", Year: 2023, UnitPrice: 999, DiscountPct: 10, UnitsSold: 5000, EstRevenueMillions: 4.5},
		{ID: 2, Name: "High Discount", Product: "iPhone", Year: 2023, UnitPrice: 999, DiscountPct: 25, UnitsSold: 8000, EstRevenueMillions: 6.0},
		{ID: 3, Name: "Premium Pricing", Product: "Mac", Year: 2023, UnitPrice: 1299, DiscountPct: 5, UnitsSold: 3000, EstRevenueMillions: 3.7},
		{ID: 4, Name: "Bulk Sales", Product: "iPad", Year: 2023, UnitPrice: 899, DiscountPct: 15, UnitsSold: 12000, EstRevenueMillions: 9.2},
	}
}

func (s StaticScenarios) ListScenarios(context.Context) ([]models.Scenario, error) {
	out := make([]models.Scenario, len(s))
	copy(out, s)
	return out, nil
}

// querier is the subset of pgxpool.Pool the repository needs.
type querier interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
}

// ScenarioRepository reads scenarios from the sales_scenarios table.
type ScenarioRepository struct {
	DB querier
}

// NewScenarioRepository wraps a connection pool.
func NewScenarioRepository(pool *pgxpool.Pool) *ScenarioRepository {
	return &ScenarioRepository{DB: pool}
}

// CreateScenariosTable is the DDL the repository expects.
const CreateScenariosTable = `
	CREATE TABLE IF NOT EXISTS sales_scenarios (
		id                   SERIAL PRIMARY KEY,
		name                 TEXT NOT NULL,
		product              TEXT NOT NULL,
		year                 INTEGER NOT NULL DEFAULT 2023,
		unit_price           DOUBLE PRECISION NOT NULL,
		discount_pct         DOUBLE PRECISION NOT NULL,
		units_sold           INTEGER NOT NULL,
		est_revenue_millions DOUBLE PRECISION NOT NULL
	)
`

func (r *ScenarioRepository) ListScenarios(ctx context.Context) ([]models.Scenario, error) {
	query := `
		SELECT id, name, product, year, unit_price, discount_pct, units_sold, est_revenue_millions
		FROM sales_scenarios
		ORDER BY id
	`
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query scenarios: %w", err)
	}
	defer rows.Close()

	var scenarios []models.Scenario
	for rows.Next() {
		var s models.Scenario
		if err := rows.Scan(&s.ID, &s.Name, &s.Product, &s.Year, &s.UnitPrice, &s.DiscountPct, &s.UnitsSold, &s.EstRevenueMillions); err != nil {
			return nil, fmt.Errorf("failed to scan scenario: %w", err)
		}
		scenarios = append(scenarios, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read scenarios: %w", err)
	}
	return scenarios, nil
}

// SeedScenarios creates the table and inserts the default catalog when it is empty.
func SeedScenarios(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, CreateScenariosTable); err != nil {
		return fmt.Errorf("failed to create sales_scenarios: %w", err)
	}

	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM sales_scenarios").Scan(&count); err != nil {
		return fmt.Errorf("failed to count scenarios: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, s := range DefaultScenarios() {
		_, err := tx.Exec(ctx,
			`INSERT INTO sales_scenarios (name, product, year, unit_price, discount_pct, units_sold, est_revenue_millions)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			s.Name, s.Product, s.Year, s.UnitPrice, s.DiscountPct, s.UnitsSold, s.EstRevenueMillions,
		)
		if err != nil {
			return fmt.Errorf("failed to seed scenario %q: %w", s.Name, err)
		}
	}
	return tx.Commit(ctx)
}
