package commands

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"shopadmin/internal/core/domain/model/activity"
	"shopadmin/internal/core/domain/model/order"
	"shopadmin/internal/core/ports"
)

// CancelOrderCommandHandler cancels an order with a mandatory reason.
// Cancelling a paid order carries a refund warning that must be acknowledged
// via the command's confirmed flag, same as ChangeOrderStatusCommandHandler.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
	logger     *zap.Logger
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
	logger *zap.Logger,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle processes the cancellation command.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, command CancelOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	ord, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	from := ord.Status()

	result := ord.ValidateStatusChange(order.Cancelled)
	if !result.IsValid {
		return fmt.Errorf("%w: %s", ErrTransitionRejected, result.Message)
	}
	if result.RequiresConfirmation() && !command.Confirmed() {
		return fmt.Errorf("%w: %s", ErrConfirmationRequired, result.Message)
	}

	if _, err = ord.Cancel(command.Reason()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	entry, err := activity.NewEntry(
		command.ActorID(),
		activity.ActionOrderCancelled,
		"order",
		ord.ID().String(),
		command.Reason(),
	)
	if err != nil {
		return err
	}
	if err = uow.ActivityRepository().Add(ctx, entry); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	event := ports.OrderStatusChangedEvent{
		OrderID:    ord.ID().String(),
		FromStatus: from.String(),
		ToStatus:   order.Cancelled.String(),
		ChangedBy:  command.ActorID().String(),
		Reason:     command.Reason(),
		OccurredAt: time.Now().UTC(),
	}
	if err = h.publisher.PublishOrderStatusChanged(ctx, event); err != nil {
		h.logger.Warn("publish order cancellation failed",
			zap.String("order_id", event.OrderID),
			zap.Error(err))
	}

	return nil
}
