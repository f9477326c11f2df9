package commands

import (
	"errors"

	"shopadmin/internal/core/domain/model/kernel"
	"shopadmin/internal/pkg/errs"
	"shopadmin/internal/pkg/guard"
)

var (
	ErrAdjustStockCommandIsNotConstructed = errors.New(
		"AdjustStockCommand must be created via NewAdjustStockCommand constructor",
	)
)

// AdjustStockCommand represents a manual stock correction.
// The delta may be negative but must not be zero.
type AdjustStockCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	delta     int
	actorID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewAdjustStockCommand creates a command to adjust product stock.
func NewAdjustStockCommand(
	productID kernel.UUID,
	delta int,
	actorID kernel.UUID,
) (AdjustStockCommand, error) {
	command := AdjustStockCommand{
		delta: delta,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setProductID(productID),
		command.setActorID(actorID),
		validateDelta(delta),
	); err != nil {
		return AdjustStockCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AdjustStockCommand) Validate() error {
	return c.guard.Validate(ErrAdjustStockCommandIsNotConstructed)
}

// ProductID returns the target product's ID.
func (c AdjustStockCommand) ProductID() kernel.UUID { return c.productID }

// Delta returns the signed stock adjustment.
func (c AdjustStockCommand) Delta() int { return c.delta }

// ActorID returns the acting user's ID.
func (c AdjustStockCommand) ActorID() kernel.UUID { return c.actorID }

func (c *AdjustStockCommand) setProductID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.productID = id
	return nil
}

func (c *AdjustStockCommand) setActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.actorID = id
	return nil
}

func validateDelta(delta int) error {
	if delta == 0 {
		return errs.NewValueIsInvalidErrorWithCause("delta", errors.New("adjustment of zero has no effect"))
	}
	return nil
}
