package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"shopadmin/internal/core/domain/model/activity"
	"shopadmin/internal/core/domain/model/order"
	"shopadmin/internal/core/domain/model/user"
	"shopadmin/internal/core/ports"
)

var (
	// ErrTransitionRejected means the requested status change violates the
	// order workflow. The wrapped message explains the violated rule.
	ErrTransitionRejected = errors.New("status transition rejected")

	// ErrConfirmationRequired means the transition is allowed but carries a
	// warning the caller must acknowledge by resubmitting with confirmed=true.
	ErrConfirmationRequired = errors.New("confirmation required")

	// ErrShipperNotPermitted means a shipper tried to change an order that is
	// not assigned to them, or to a status other than delivered.
	ErrShipperNotPermitted = errors.New("shippers may only mark their own orders as delivered")
)

// ChangeOrderStatusCommandHandler orchestrates order status transitions.
// Validates the transition against the order workflow, applies it, deducts
// product stock when the order is delivered, and records an activity log
// entry, all within a single transaction. After a successful commit the
// status change is published for downstream consumers; publish failures are
// logged and never fail the command.
//
// Example:
//
//	handler := NewChangeOrderStatusCommandHandler(uowFactory, publisher, logger)
//	cmd, _ := NewChangeOrderStatusCommand(orderID, order.Confirmed, adminID, user.RoleAdmin, false)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrConfirmationRequired):
//	    // surface the warning and retry with confirmed=true
//	case errors.Is(err, ErrTransitionRejected):
//	    // invalid transition, show the reason
//	}
type ChangeOrderStatusCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.EventPublisher
	logger     *zap.Logger
}

// NewChangeOrderStatusCommandHandler creates a handler for order status changes.
func NewChangeOrderStatusCommandHandler(
	uowFactory UoWFactory,
	publisher ports.EventPublisher,
	logger *zap.Logger,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle processes the status change command.
// Changing to the current status is a no-op. Warning-severity transitions
// require the command's confirmed flag; invalid transitions return
// ErrTransitionRejected wrapping the rule message.
func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, command ChangeOrderStatusCommand) error {
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

	if command.ActorRole() == user.RoleShipper {
		if ord.Shipper() == nil || !ord.Shipper().IsEqual(command.ActorID()) {
			return ErrShipperNotPermitted
		}
		if command.Target() != order.Delivered {
			return ErrShipperNotPermitted
		}
	}

	from := ord.Status()
	if from == command.Target() {
		return nil
	}

	result := ord.ValidateStatusChange(command.Target())
	if !result.IsValid {
		return fmt.Errorf("%w: %s", ErrTransitionRejected, result.Message)
	}
	if result.RequiresConfirmation() && !command.Confirmed() {
		return fmt.Errorf("%w: %s", ErrConfirmationRequired, result.Message)
	}

	if _, err = ord.ChangeStatus(command.Target()); err != nil {
		return err
	}

	if command.Target() == order.Delivered {
		if err = h.deductStock(ctx, uow, ord); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	entry, err := activity.NewEntry(
		command.ActorID(),
		activity.ActionOrderStatusChanged,
		"order",
		ord.ID().String(),
		fmt.Sprintf("%s -> %s", from.String(), command.Target().String()),
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

	h.publish(ctx, ord, from, command)

	return nil
}

// deductStock removes delivered quantities from product stock.
// Insufficient stock aborts the whole transition.
func (h ChangeOrderStatusCommandHandler) deductStock(ctx context.Context, uow UoW, ord *order.Order) error {
	productRepo := uow.ProductRepository()
	for _, item := range ord.Items() {
		product, err := productRepo.Get(ctx, item.ProductID())
		if err != nil {
			return err
		}
		if err = product.DeductStock(item.Quantity()); err != nil {
			return err
		}
		if err = productRepo.Update(ctx, product); err != nil {
			return err
		}
	}
	return nil
}

func (h ChangeOrderStatusCommandHandler) publish(
	ctx context.Context,
	ord *order.Order,
	from order.Status,
	command ChangeOrderStatusCommand,
) {
	event := ports.OrderStatusChangedEvent{
		OrderID:    ord.ID().String(),
		FromStatus: from.String(),
		ToStatus:   command.Target().String(),
		ChangedBy:  command.ActorID().String(),
		OccurredAt: time.Now().UTC(),
	}
	if err := h.publisher.PublishOrderStatusChanged(ctx, event); err != nil {
		h.logger.Warn("publish order status change failed",
			zap.String("order_id", event.OrderID),
			zap.Error(err))
	}
}
