package commands

import (
	"context"

	"shopadmin/internal/core/domain/model/activity"
	"shopadmin/internal/core/domain/model/kernel"
	"shopadmin/internal/core/domain/model/product"
)

// CreateProductCommandHandler adds a product with its variants and images
// to the catalog and records the creation in the activity log.
type CreateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewCreateProductCommandHandler creates a handler for product creation.
func NewCreateProductCommandHandler(uowFactory ProductUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the product creation command.
// Returns the new product's ID on success.
func (h CreateProductCommandHandler) Handle(
	ctx context.Context,
	command CreateProductCommand,
) (kernel.UUID, error) {
	if err := command.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	p, err := product.NewProduct(
		kernel.NewUUID(),
		command.Name(),
		command.Brand(),
		command.Description(),
		command.PriceCents(),
		command.Stock(),
	)
	if err != nil {
		return kernel.UUID{}, err
	}

	for _, spec := range command.Variants() {
		variant, err := product.NewVariant(kernel.NewUUID(), spec.Label, spec.PriceCents, spec.Stock)
		if err != nil {
			return kernel.UUID{}, err
		}
		if err = p.AddVariant(variant); err != nil {
			return kernel.UUID{}, err
		}
	}

	if specs := command.Images(); len(specs) > 0 {
		images := make([]product.Image, 0, len(specs))
		for _, spec := range specs {
			image, err := product.NewImage(spec.URL, spec.IsPrimary)
			if err != nil {
				return kernel.UUID{}, err
			}
			images = append(images, image)
		}
		if err = p.ReplaceImages(images); err != nil {
			return kernel.UUID{}, err
		}
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ProductRepository().Add(ctx, p); err != nil {
		return kernel.UUID{}, err
	}

	entry, err := activity.NewEntry(
		command.ActorID(),
		activity.ActionProductCreated,
		"product",
		p.ID().String(),
		p.Name(),
	)
	if err != nil {
		return kernel.UUID{}, err
	}
	if err = uow.ActivityRepository().Add(ctx, entry); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return p.ID(), nil
}
