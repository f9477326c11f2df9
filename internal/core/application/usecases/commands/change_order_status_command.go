package commands

import (
	"errors"

	"shopadmin/internal/core/domain/model/kernel"
	"shopadmin/internal/core/domain/model/order"
	"shopadmin/internal/core/domain/model/user"
	"shopadmin/internal/pkg/guard"
)

var (
	ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
		"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
	)
)

// ChangeOrderStatusCommand represents a request to move an order to a new
// status. The confirmed flag acknowledges a warning-severity transition
// (e.g. cancelling a paid order); without it such transitions are rejected
// with ConfirmationRequiredError so the caller can ask the admin first.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	target    order.Status
	actorID   kernel.UUID
	actorRole user.Role
	confirmed bool

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a command to change an order's status.
// Validates the order ID, the target status, and the acting user.
func NewChangeOrderStatusCommand(
	orderID kernel.UUID,
	target order.Status,
	actorID kernel.UUID,
	actorRole user.Role,
	confirmed bool,
) (ChangeOrderStatusCommand, error) {
	command := ChangeOrderStatusCommand{
		target:    target,
		actorRole: actorRole,
		confirmed: confirmed,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setActorID(actorID),
		target.Validate(),
		actorRole.Validate(),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the target order's ID.
func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the requested status.
func (c ChangeOrderStatusCommand) Target() order.Status {
	return c.target
}

// ActorID returns the acting user's ID.
func (c ChangeOrderStatusCommand) ActorID() kernel.UUID {
	return c.actorID
}

// ActorRole returns the acting user's role.
func (c ChangeOrderStatusCommand) ActorRole() user.Role {
	return c.actorRole
}

// Confirmed reports whether the caller acknowledged a warning.
func (c ChangeOrderStatusCommand) Confirmed() bool {
	return c.confirmed
}

func (c *ChangeOrderStatusCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *ChangeOrderStatusCommand) setActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.actorID = id
	return nil
}
