package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"shopadmin/internal/core/domain/model/kernel"
	"shopadmin/internal/core/domain/model/order"
	"shopadmin/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves one order with its items.
// The response includes the statuses reachable from the current one and
// whether the COD confirmation action applies, so the admin UI can render
// its action buttons without re-implementing workflow rules.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for order detail queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the order detail query.
// Returns errs.ErrObjectNotFound when no order has the requested ID.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var resp GetOrderQueryResponse
	var id uuid.UUID
	var shipperID *uuid.UUID
	var statusID, methodID int
	var methodName string
	var createdAt time.Time

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.customer_name,
			o.status_id,
			o.payment_method_id,
			pm.name,
			o.payment_status,
			o.shipper_id,
			o.cancellation_reason,
			o.created_at
		FROM orders o
		JOIN payment_methods pm ON pm.id = o.payment_method_id
		WHERE o.id = ?
	`, query.OrderID().Bytes()).Row()

	err := row.Scan(
		&id,
		&resp.CustomerName,
		&statusID,
		&methodID,
		&methodName,
		&resp.PaymentStatus,
		&shipperID,
		&resp.CancellationReason,
		&createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().Bytes())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.ID = orderID

	if shipperID != nil {
		sid, sidErr := kernel.UUIDFromBytes(shipperID[:])
		if sidErr != nil {
			return GetOrderQueryResponse{}, sidErr
		}
		resp.ShipperID = &sid
	}

	status := order.Status(statusID)
	resp.Status = status.String()
	resp.StatusDisplayName = status.DisplayName()
	resp.CreatedAt = createdAt

	for _, next := range status.NextStatuses() {
		resp.NextStatuses = append(resp.NextStatuses, next.String())
	}

	method, err := order.NewPaymentMethod(methodID, methodName)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.CanConfirmCod = method.IsCod() &&
		status == order.Delivered &&
		order.PaymentStatus(resp.PaymentStatus) == order.PaymentPending

	if err = h.loadItems(ctx, &resp); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return resp, nil
}

func (h GetOrderQueryHandler) loadItems(ctx context.Context, resp *GetOrderQueryResponse) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			oi.product_id,
			p.name,
			oi.quantity,
			oi.price_cents
		FROM order_items oi
		JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = ?
		ORDER BY p.name
	`, resp.ID.Bytes()).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var item GetOrderQueryItemResponse
		var productID uuid.UUID

		if err = rows.Scan(&productID, &item.ProductName, &item.Quantity, &item.PriceCents); err != nil {
			return err
		}

		pid, pidErr := kernel.UUIDFromBytes(productID[:])
		if pidErr != nil {
			return pidErr
		}
		item.ProductID = pid

		resp.TotalCents += int64(item.Quantity) * item.PriceCents
		resp.Items = append(resp.Items, item)
	}

	return rows.Err()
}
