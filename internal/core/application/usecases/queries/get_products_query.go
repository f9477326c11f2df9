package queries

import (
	"errors"

	"shopadmin/internal/core/domain/model/kernel"
	"shopadmin/internal/pkg/guard"
)

// lowStockThreshold marks products that need restocking in list views.
const lowStockThreshold = 5

var (
	ErrGetProductsQueryIsNotConstructed = errors.New(
		"GetProductsQuery must be created via NewGetProductsQuery constructor",
	)
)

// GetProductsQuery retrieves a page of catalog products, optionally
// restricted by a name/brand search term or to low-stock products only.
// Inactive products are included: the admin panel manages the whole catalog.
type GetProductsQuery struct {
	search       string
	lowStockOnly bool
	limit        int
	offset       int

	guard guard.ConstructorGuard
}

// NewGetProductsQuery creates a product list query.
func NewGetProductsQuery(search string, lowStockOnly bool, limit, offset int) GetProductsQuery {
	return GetProductsQuery{
		search:       search,
		lowStockOnly: lowStockOnly,
		limit:        clampLimit(limit),
		offset:       max(offset, 0),
		guard:        guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetProductsQueryIsNotConstructed)
}

// Search returns the name/brand search term, empty for no filter.
func (q GetProductsQuery) Search() string { return q.search }

// LowStockOnly reports whether only low-stock products are wanted.
func (q GetProductsQuery) LowStockOnly() bool { return q.lowStockOnly }

// Limit returns the page size.
func (q GetProductsQuery) Limit() int { return q.limit }

// Offset returns the page offset.
func (q GetProductsQuery) Offset() int { return q.offset }

// GetProductsQueryResponse is one row of the admin product list.
type GetProductsQueryResponse struct {
	ID           kernel.UUID
	Name         string
	Brand        string
	PriceCents   int64
	Stock        int
	LowStock     bool
	Active       bool
	VariantCount int
	PrimaryImage string
}
