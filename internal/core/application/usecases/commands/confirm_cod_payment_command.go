package commands

import (
	"errors"

	"shopadmin/internal/core/domain/model/kernel"
	"shopadmin/internal/pkg/guard"
)

var (
	ErrConfirmCodPaymentCommandIsNotConstructed = errors.New(
		"ConfirmCodPaymentCommand must be created via NewConfirmCodPaymentCommand constructor",
	)
)

// ConfirmCodPaymentCommand marks a delivered cash-on-delivery order as paid.
type ConfirmCodPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmCodPaymentCommand creates a command to confirm a COD payment.
func NewConfirmCodPaymentCommand(
	orderID kernel.UUID,
	actorID kernel.UUID,
) (ConfirmCodPaymentCommand, error) {
	command := ConfirmCodPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setActorID(actorID),
	); err != nil {
		return ConfirmCodPaymentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmCodPaymentCommand) Validate() error {
	return c.guard.Validate(ErrConfirmCodPaymentCommandIsNotConstructed)
}

// OrderID returns the target order's ID.
func (c ConfirmCodPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the acting user's ID.
func (c ConfirmCodPaymentCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *ConfirmCodPaymentCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *ConfirmCodPaymentCommand) setActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.actorID = id
	return nil
}
