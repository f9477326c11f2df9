package commands

import (
	"context"
	"errors"
	"fmt"

	"shopadmin/internal/core/domain/model/activity"
)

var (
	// ErrNotAssignableShipper means the chosen user is not a shipper or is
	// blocked, so orders cannot be assigned to them.
	ErrNotAssignableShipper = errors.New("user cannot be assigned as shipper")
)

// AssignShipperCommandHandler assigns or clears the shipper on an order.
// Verifies the target user holds the shipper role and is not blocked before
// assignment. The order aggregate rejects changes once shipping has started.
type AssignShipperCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignShipperCommandHandler creates a handler for shipper assignment.
func NewAssignShipperCommandHandler(uowFactory UoWFactory) AssignShipperCommandHandler {
	return AssignShipperCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipper assignment command.
func (h AssignShipperCommandHandler) Handle(ctx context.Context, command AssignShipperCommand) error {
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

	var detail string
	if shipperID := command.ShipperID(); shipperID != nil {
		shipper, err := uow.UserRepository().Get(ctx, *shipperID)
		if err != nil {
			return err
		}
		if !shipper.CanBeAssignedAsShipper() {
			return fmt.Errorf("%w: %s", ErrNotAssignableShipper, shipper.Email())
		}

		if err = ord.AssignShipper(*shipperID); err != nil {
			return err
		}
		detail = fmt.Sprintf("assigned to %s", shipper.Name())
	} else {
		if err = ord.UnassignShipper(); err != nil {
			return err
		}
		detail = "shipper unassigned"
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	entry, err := activity.NewEntry(
		command.ActorID(),
		activity.ActionOrderShipperChanged,
		"order",
		ord.ID().String(),
		detail,
	)
	if err != nil {
		return err
	}
	if err = uow.ActivityRepository().Add(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
