package commands

import (
	"context"

	"shopadmin/internal/core/domain/model/activity"
)

// SetProductActiveCommandHandler toggles a product's storefront visibility.
type SetProductActiveCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewSetProductActiveCommandHandler creates a handler for the active flag.
func NewSetProductActiveCommandHandler(uowFactory ProductUoWFactory) SetProductActiveCommandHandler {
	return SetProductActiveCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the visibility change command.
func (h SetProductActiveCommandHandler) Handle(ctx context.Context, command SetProductActiveCommand) error {
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

	productRepo := uow.ProductRepository()

	p, err := productRepo.Get(ctx, command.ProductID())
	if err != nil {
		return err
	}

	action := activity.ActionProductDeactivated
	detail := "hidden from storefront"
	if command.Active() {
		p.Activate()
		action = activity.ActionProductUpdated
		detail = "reactivated"
	} else {
		p.Deactivate()
	}

	if err = productRepo.Update(ctx, p); err != nil {
		return err
	}

	entry, err := activity.NewEntry(
		command.ActorID(),
		action,
		"product",
		p.ID().String(),
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
