package commands

import (
	"errors"

	"shopadmin/internal/core/domain/model/kernel"
	"shopadmin/internal/core/domain/model/user"
	"shopadmin/internal/pkg/guard"
)

var (
	ErrChangeUserRoleCommandIsNotConstructed = errors.New(
		"ChangeUserRoleCommand must be created via NewChangeUserRoleCommand constructor",
	)
)

// ChangeUserRoleCommand represents a request to change a user's role.
type ChangeUserRoleCommand struct { //nolint:recvcheck //using for validation
	userID  kernel.UUID
	role    user.Role
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewChangeUserRoleCommand creates a command to change a user's role.
func NewChangeUserRoleCommand(
	userID kernel.UUID,
	role user.Role,
	actorID kernel.UUID,
) (ChangeUserRoleCommand, error) {
	command := ChangeUserRoleCommand{
		role:  role,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setUserID(userID),
		command.setActorID(actorID),
		role.Validate(),
	); err != nil {
		return ChangeUserRoleCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeUserRoleCommand) Validate() error {
	return c.guard.Validate(ErrChangeUserRoleCommandIsNotConstructed)
}

// UserID returns the target user's ID.
func (c ChangeUserRoleCommand) UserID() kernel.UUID { return c.userID }

// Role returns the new role.
func (c ChangeUserRoleCommand) Role() user.Role { return c.role }

// ActorID returns the acting user's ID.
func (c ChangeUserRoleCommand) ActorID() kernel.UUID { return c.actorID }

func (c *ChangeUserRoleCommand) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.userID = id
	return nil
}

func (c *ChangeUserRoleCommand) setActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.actorID = id
	return nil
}
