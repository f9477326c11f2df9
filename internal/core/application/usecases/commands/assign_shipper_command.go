package commands

import (
	"errors"

	"shopadmin/internal/core/domain/model/kernel"
	"shopadmin/internal/pkg/guard"
)

var (
	ErrAssignShipperCommandIsNotConstructed = errors.New(
		"AssignShipperCommand must be created via its constructor",
	)
)

// AssignShipperCommand assigns a shipper to an order, or clears the
// assignment when created via NewUnassignShipperCommand.
type AssignShipperCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	shipperID *kernel.UUID
	actorID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignShipperCommand creates a command to assign a shipper to an order.
func NewAssignShipperCommand(
	orderID kernel.UUID,
	shipperID kernel.UUID,
	actorID kernel.UUID,
) (AssignShipperCommand, error) {
	command := AssignShipperCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setActorID(actorID),
		shipperID.Validate(),
	); err != nil {
		return AssignShipperCommand{}, err
	}

	command.shipperID = &shipperID
	return command, nil
}

// NewUnassignShipperCommand creates a command to clear an order's shipper.
func NewUnassignShipperCommand(
	orderID kernel.UUID,
	actorID kernel.UUID,
) (AssignShipperCommand, error) {
	command := AssignShipperCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setActorID(actorID),
	); err != nil {
		return AssignShipperCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through a constructor.
func (c AssignShipperCommand) Validate() error {
	return c.guard.Validate(ErrAssignShipperCommandIsNotConstructed)
}

// OrderID returns the target order's ID.
func (c AssignShipperCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ShipperID returns the shipper to assign, or nil for an unassignment.
func (c AssignShipperCommand) ShipperID() *kernel.UUID {
	return c.shipperID
}

// ActorID returns the acting user's ID.
func (c AssignShipperCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *AssignShipperCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *AssignShipperCommand) setActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.actorID = id
	return nil
}
