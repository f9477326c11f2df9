package commands

import (
	"context"

	"shopadmin/internal/core/domain/model/activity"
	"shopadmin/internal/core/domain/model/product"
)

// UpdateProductCommandHandler edits a product's core fields and replaces
// its image set, recording the change in the activity log.
type UpdateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewUpdateProductCommandHandler creates a handler for product updates.
func NewUpdateProductCommandHandler(uowFactory ProductUoWFactory) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the product update command.
func (h UpdateProductCommandHandler) Handle(ctx context.Context, command UpdateProductCommand) error {
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

	if err = p.Update(command.Name(), command.Brand(), command.Description(), command.PriceCents()); err != nil {
		return err
	}

	if specs := command.Images(); len(specs) > 0 {
		images := make([]product.Image, 0, len(specs))
		for _, spec := range specs {
			image, err := product.NewImage(spec.URL, spec.IsPrimary)
			if err != nil {
				return err
			}
			images = append(images, image)
		}
		if err = p.ReplaceImages(images); err != nil {
			return err
		}
	}

	if err = productRepo.Update(ctx, p); err != nil {
		return err
	}

	entry, err := activity.NewEntry(
		command.ActorID(),
		activity.ActionProductUpdated,
		"product",
		p.ID().String(),
		p.Name(),
	)
	if err != nil {
		return err
	}
	if err = uow.ActivityRepository().Add(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
