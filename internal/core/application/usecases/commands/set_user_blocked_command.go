package commands

import (
	"errors"

	"shopadmin/internal/core/domain/model/kernel"
	"shopadmin/internal/pkg/guard"
)

var (
	ErrSetUserBlockedCommandIsNotConstructed = errors.New(
		"SetUserBlockedCommand must be created via NewSetUserBlockedCommand constructor",
	)
)

// SetUserBlockedCommand blocks or unblocks a user account. Blocked users
// cannot authenticate and cannot be assigned as shippers.
type SetUserBlockedCommand struct { //nolint:recvcheck //using for validation
	userID  kernel.UUID
	blocked bool
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewSetUserBlockedCommand creates a command to change a user's blocked flag.
func NewSetUserBlockedCommand(
	userID kernel.UUID,
	blocked bool,
	actorID kernel.UUID,
) (SetUserBlockedCommand, error) {
	command := SetUserBlockedCommand{
		blocked: blocked,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setUserID(userID),
		command.setActorID(actorID),
	); err != nil {
		return SetUserBlockedCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SetUserBlockedCommand) Validate() error {
	return c.guard.Validate(ErrSetUserBlockedCommandIsNotConstructed)
}

// UserID returns the target user's ID.
func (c SetUserBlockedCommand) UserID() kernel.UUID { return c.userID }

// Blocked returns the desired blocked flag.
func (c SetUserBlockedCommand) Blocked() bool { return c.blocked }

// ActorID returns the acting user's ID.
func (c SetUserBlockedCommand) ActorID() kernel.UUID { return c.actorID }

func (c *SetUserBlockedCommand) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.userID = id
	return nil
}

func (c *SetUserBlockedCommand) setActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.actorID = id
	return nil
}
