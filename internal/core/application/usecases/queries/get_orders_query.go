// Package queries contains read-only operations for the admin panel.
// Query handlers run raw SQL against the database, bypassing the aggregates
// for efficient list views in the CQRS architecture.
package queries

import (
	"errors"
	"time"

	"shopadmin/internal/core/domain/model/kernel"
	"shopadmin/internal/core/domain/model/order"
	"shopadmin/internal/pkg/guard"
)

// Pagination bounds shared by the list queries.
const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
	)
)

// GetOrdersQuery retrieves a page of orders for the admin list view,
// optionally filtered by status.
type GetOrdersQuery struct {
	status *order.Status
	limit  int
	offset int

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates an order list query. A nil status means no
// filter. Limits outside [1, 100] are clamped.
func NewGetOrdersQuery(status *order.Status, limit, offset int) (GetOrdersQuery, error) {
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}

	return GetOrdersQuery{
		status: status,
		limit:  clampLimit(limit),
		offset: max(offset, 0),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Status returns the optional status filter.
func (q GetOrdersQuery) Status() *order.Status { return q.status }

// Limit returns the page size.
func (q GetOrdersQuery) Limit() int { return q.limit }

// Offset returns the page offset.
func (q GetOrdersQuery) Offset() int { return q.offset }

// GetOrdersQueryResponse is one row of the admin order list.
type GetOrdersQueryResponse struct {
	ID                kernel.UUID
	CustomerName      string
	Status            string
	StatusDisplayName string
	PaymentMethod     string
	PaymentStatus     string
	TotalCents        int64
	ShipperID         *kernel.UUID
	CreatedAt         time.Time
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultPageLimit
	}
	if limit > maxPageLimit {
		return maxPageLimit
	}
	return limit
}
