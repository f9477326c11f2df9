package commands

import (
	"errors"

	"shopadmin/internal/core/domain/model/kernel"
	"shopadmin/internal/pkg/guard"
)

var (
	ErrSetProductActiveCommandIsNotConstructed = errors.New(
		"SetProductActiveCommand must be created via NewSetProductActiveCommand constructor",
	)
)

// SetProductActiveCommand hides a product from the storefront or brings it
// back. Deactivation is the soft-delete of the catalog: the product stays
// queryable for existing orders.
type SetProductActiveCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	active    bool
	actorID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewSetProductActiveCommand creates a command to change a product's
// active flag.
func NewSetProductActiveCommand(
	productID kernel.UUID,
	active bool,
	actorID kernel.UUID,
) (SetProductActiveCommand, error) {
	command := SetProductActiveCommand{
		active: active,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setProductID(productID),
		command.setActorID(actorID),
	); err != nil {
		return SetProductActiveCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SetProductActiveCommand) Validate() error {
	return c.guard.Validate(ErrSetProductActiveCommandIsNotConstructed)
}

// ProductID returns the target product's ID.
func (c SetProductActiveCommand) ProductID() kernel.UUID { return c.productID }

// Active returns the desired active flag.
func (c SetProductActiveCommand) Active() bool { return c.active }

// ActorID returns the acting user's ID.
func (c SetProductActiveCommand) ActorID() kernel.UUID { return c.actorID }

func (c *SetProductActiveCommand) setProductID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.productID = id
	return nil
}

func (c *SetProductActiveCommand) setActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.actorID = id
	return nil
}
