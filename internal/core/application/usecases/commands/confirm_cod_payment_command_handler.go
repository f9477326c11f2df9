package commands

import (
	"context"

	"shopadmin/internal/core/domain/model/activity"
)

// ConfirmCodPaymentCommandHandler confirms receipt of a cash-on-delivery
// payment. The order aggregate enforces the gate: COD method, delivered
// status, payment still pending. Any deviation returns
// order.ErrCodConfirmationNotAllowed.
type ConfirmCodPaymentCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewConfirmCodPaymentCommandHandler creates a handler for COD confirmation.
func NewConfirmCodPaymentCommandHandler(uowFactory OrderUoWFactory) ConfirmCodPaymentCommandHandler {
	return ConfirmCodPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the COD confirmation command.
func (h ConfirmCodPaymentCommandHandler) Handle(ctx context.Context, command ConfirmCodPaymentCommand) error {
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

	if err = ord.ConfirmCodPayment(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	entry, err := activity.NewEntry(
		command.ActorID(),
		activity.ActionOrderCodConfirmed,
		"order",
		ord.ID().String(),
		"cash payment received",
	)
	if err != nil {
		return err
	}
	if err = uow.ActivityRepository().Add(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
