package commands

import (
	"errors"

	"shopadmin/internal/core/domain/model/kernel"
	"shopadmin/internal/pkg/errs"
	"shopadmin/internal/pkg/guard"
)

var (
	ErrCreateProductCommandIsNotConstructed = errors.New(
		"CreateProductCommand must be created via NewCreateProductCommand constructor",
	)
)

// VariantSpec describes a product variant to create (e.g. a bottle size).
type VariantSpec struct {
	Label      string
	PriceCents int64
	Stock      int
}

// ImageSpec describes a product image to attach.
type ImageSpec struct {
	URL       string
	IsPrimary bool
}

// CreateProductCommand represents a request to add a product to the catalog.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	name        string
	brand       string
	description string
	priceCents  int64
	stock       int
	variants    []VariantSpec
	images      []ImageSpec
	actorID     kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to add a product.
// Field-level validation (non-empty name, non-negative price and stock,
// unique variant labels, single primary image) happens in the aggregate.
func NewCreateProductCommand(
	name, brand, description string,
	priceCents int64,
	stock int,
	variants []VariantSpec,
	images []ImageSpec,
	actorID kernel.UUID,
) (CreateProductCommand, error) {
	command := CreateProductCommand{
		name:        name,
		brand:       brand,
		description: description,
		priceCents:  priceCents,
		stock:       stock,
		variants:    variants,
		images:      images,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setActorID(actorID),
		requireValue("name", name),
	); err != nil {
		return CreateProductCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// Name returns the product name.
func (c CreateProductCommand) Name() string { return c.name }

// Brand returns the product brand.
func (c CreateProductCommand) Brand() string { return c.brand }

// Description returns the product description.
func (c CreateProductCommand) Description() string { return c.description }

// PriceCents returns the base price in cents.
func (c CreateProductCommand) PriceCents() int64 { return c.priceCents }

// Stock returns the initial stock quantity.
func (c CreateProductCommand) Stock() int { return c.stock }

// Variants returns the variant specifications.
func (c CreateProductCommand) Variants() []VariantSpec {
	result := make([]VariantSpec, len(c.variants))
	copy(result, c.variants)
	return result
}

// Images returns the image specifications.
func (c CreateProductCommand) Images() []ImageSpec {
	result := make([]ImageSpec, len(c.images))
	copy(result, c.images)
	return result
}

// ActorID returns the acting user's ID.
func (c CreateProductCommand) ActorID() kernel.UUID { return c.actorID }

func (c *CreateProductCommand) setActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.actorID = id
	return nil
}

func requireValue(param, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(param)
	}
	return nil
}
