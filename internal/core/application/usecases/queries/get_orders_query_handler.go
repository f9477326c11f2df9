package queries

import (
	"context"
	"time"

	"shopadmin/internal/core/domain/model/kernel"
	"shopadmin/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler retrieves the paginated admin order list.
// Joins payment methods and sums item totals in SQL; newest orders first.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order list queries.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the order list query.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var statusFilter int
	if query.Status() != nil {
		statusFilter = int(*query.Status())
	}

	orders := make([]GetOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.customer_name,
			o.status_id,
			pm.name AS payment_method,
			o.payment_status,
			o.shipper_id,
			o.created_at,
			COALESCE((
				SELECT SUM(oi.quantity * oi.price_cents)
				FROM order_items oi
				WHERE oi.order_id = o.id
			), 0) AS total_cents
		FROM orders o
		JOIN payment_methods pm ON pm.id = o.payment_method_id
		WHERE (? = 0 OR o.status_id = ?)
		ORDER BY o.created_at DESC
		LIMIT ? OFFSET ?
	`, statusFilter, statusFilter, query.Limit(), query.Offset()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetOrdersQueryResponse
		var id uuid.UUID
		var shipperID *uuid.UUID
		var statusID int
		var createdAt time.Time

		err = rows.Scan(
			&id,
			&resp.CustomerName,
			&statusID,
			&resp.PaymentMethod,
			&resp.PaymentStatus,
			&shipperID,
			&createdAt,
			&resp.TotalCents,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID

		if shipperID != nil {
			sid, sidErr := kernel.UUIDFromBytes(shipperID[:])
			if sidErr != nil {
				return nil, sidErr
			}
			resp.ShipperID = &sid
		}

		status := order.Status(statusID)
		resp.Status = status.String()
		resp.StatusDisplayName = status.DisplayName()
		resp.CreatedAt = createdAt

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
