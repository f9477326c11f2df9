package commands

import (
	"errors"

	"shopadmin/internal/core/domain/model/kernel"
	"shopadmin/internal/pkg/guard"
)

var (
	ErrUpdateProductCommandIsNotConstructed = errors.New(
		"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
	)
)

// UpdateProductCommand represents a request to edit a product's core fields
// and replace its image set.
type UpdateProductCommand struct { //nolint:recvcheck //using for validation
	productID   kernel.UUID
	name        string
	brand       string
	description string
	priceCents  int64
	images      []ImageSpec
	actorID     kernel.UUID

	guard guard.ConstructorGuard
}

// NewUpdateProductCommand creates a command to update a product.
func NewUpdateProductCommand(
	productID kernel.UUID,
	name, brand, description string,
	priceCents int64,
	images []ImageSpec,
	actorID kernel.UUID,
) (UpdateProductCommand, error) {
	command := UpdateProductCommand{
		name:        name,
		brand:       brand,
		description: description,
		priceCents:  priceCents,
		images:      images,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setProductID(productID),
		command.setActorID(actorID),
		requireValue("name", name),
	); err != nil {
		return UpdateProductCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

// ProductID returns the target product's ID.
func (c UpdateProductCommand) ProductID() kernel.UUID { return c.productID }

// Name returns the new product name.
func (c UpdateProductCommand) Name() string { return c.name }

// Brand returns the new product brand.
func (c UpdateProductCommand) Brand() string { return c.brand }

// Description returns the new product description.
func (c UpdateProductCommand) Description() string { return c.description }

// PriceCents returns the new base price in cents.
func (c UpdateProductCommand) PriceCents() int64 { return c.priceCents }

// Images returns the replacement image specifications.
func (c UpdateProductCommand) Images() []ImageSpec {
	result := make([]ImageSpec, len(c.images))
	copy(result, c.images)
	return result
}

// ActorID returns the acting user's ID.
func (c UpdateProductCommand) ActorID() kernel.UUID { return c.actorID }

func (c *UpdateProductCommand) setProductID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.productID = id
	return nil
}

func (c *UpdateProductCommand) setActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.actorID = id
	return nil
}
