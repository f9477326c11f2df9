package commands

import (
	"context"
	"fmt"

	"shopadmin/internal/core/domain/model/activity"
)

// AdjustStockCommandHandler applies a manual stock correction to a product
// and records the signed delta in the activity log.
type AdjustStockCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewAdjustStockCommandHandler creates a handler for stock adjustments.
func NewAdjustStockCommandHandler(uowFactory ProductUoWFactory) AdjustStockCommandHandler {
	return AdjustStockCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the stock adjustment command.
// The aggregate rejects adjustments that would drive stock negative.
func (h AdjustStockCommandHandler) Handle(ctx context.Context, command AdjustStockCommand) error {
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

	if err = p.AdjustStock(command.Delta()); err != nil {
		return err
	}

	if err = productRepo.Update(ctx, p); err != nil {
		return err
	}

	entry, err := activity.NewEntry(
		command.ActorID(),
		activity.ActionProductStockAdjust,
		"product",
		p.ID().String(),
		fmt.Sprintf("stock %+d, now %d", command.Delta(), p.Stock()),
	)
	if err != nil {
		return err
	}
	if err = uow.ActivityRepository().Add(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
