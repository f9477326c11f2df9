package ports

import (
	"context"
	"time"
)

// OrderStatusChangedEvent announces a committed order status transition to
// downstream consumers (notifications, analytics). Statuses are carried by
// code name.
type OrderStatusChangedEvent struct {
	OrderID    string    `json:"order_id"`
	FromStatus string    `json:"from_status"`
	ToStatus   string    `json:"to_status"`
	ChangedBy  string    `json:"changed_by"`
	Reason     string    `json:"reason,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher publishes domain events after a successful commit.
// Delivery is best effort: publish failures are logged by the caller and
// never roll back the committed transaction.
type EventPublisher interface {
	PublishOrderStatusChanged(ctx context.Context, event OrderStatusChangedEvent) error
}
