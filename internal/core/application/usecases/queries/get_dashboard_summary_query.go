package queries

import (
	"errors"
	"time"

	"shopadmin/internal/pkg/guard"
)

var (
	ErrGetDashboardSummaryQueryIsNotConstructed = errors.New(
		"GetDashboardSummaryQuery must be created via NewGetDashboardSummaryQuery constructor",
	)
)

// GetDashboardSummaryQuery retrieves the admin dashboard counters.
type GetDashboardSummaryQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDashboardSummaryQuery creates a dashboard summary query.
func NewGetDashboardSummaryQuery() GetDashboardSummaryQuery {
	return GetDashboardSummaryQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDashboardSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardSummaryQueryIsNotConstructed)
}

// GetDashboardSummaryQueryResponse carries the dashboard counters.
// OrdersByStatus is keyed by status code name and includes every status,
// zero counts included, so the UI renders a stable set of tiles.
type GetDashboardSummaryQueryResponse struct {
	OrdersByStatus   map[string]int `json:"orders_by_status"`
	LowStockProducts int            `json:"low_stock_products"`
	GeneratedAt      time.Time      `json:"generated_at"`
}
