package queries

import (
	"errors"
	"time"

	"shopadmin/internal/core/domain/model/kernel"
	"shopadmin/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves a single order with its items for the admin
// detail view.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates an order detail query.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order's ID.
func (q GetOrderQuery) OrderID() kernel.UUID { return q.orderID }

// GetOrderQueryItemResponse is one order line in the detail view.
type GetOrderQueryItemResponse struct {
	ProductID   kernel.UUID
	ProductName string
	Quantity    int
	PriceCents  int64
}

// GetOrderQueryResponse is the admin order detail view.
type GetOrderQueryResponse struct {
	ID                 kernel.UUID
	CustomerName       string
	Status             string
	StatusDisplayName  string
	NextStatuses       []string
	PaymentMethod      string
	PaymentStatus      string
	CanConfirmCod      bool
	ShipperID          *kernel.UUID
	CancellationReason *string
	TotalCents         int64
	Items              []GetOrderQueryItemResponse
	CreatedAt          time.Time
}
