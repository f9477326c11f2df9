package commands

import (
	"errors"

	"shopadmin/internal/core/domain/model/kernel"
	"shopadmin/internal/core/domain/model/user"
	"shopadmin/internal/pkg/errs"
	"shopadmin/internal/pkg/guard"
)

// minPasswordLength is the shortest password accepted for new accounts.
const minPasswordLength = 8

var (
	ErrCreateUserCommandIsNotConstructed = errors.New(
		"CreateUserCommand must be created via NewCreateUserCommand constructor",
	)
)

// CreateUserCommand represents a request to create a user account.
// The password is carried in plain text and hashed by the handler; it never
// reaches storage or logs.
type CreateUserCommand struct { //nolint:recvcheck //using for validation
	email    string
	name     string
	password string
	role     user.Role
	actorID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateUserCommand creates a command to register a user account.
func NewCreateUserCommand(
	email, name, password string,
	role user.Role,
	actorID kernel.UUID,
) (CreateUserCommand, error) {
	command := CreateUserCommand{
		email: email,
		name:  name,
		role:  role,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		requireValue("email", email),
		requireValue("name", name),
		command.setPassword(password),
		role.Validate(),
		command.setActorID(actorID),
	); err != nil {
		return CreateUserCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateUserCommand) Validate() error {
	return c.guard.Validate(ErrCreateUserCommandIsNotConstructed)
}

// Email returns the account email.
func (c CreateUserCommand) Email() string { return c.email }

// Name returns the account holder's name.
func (c CreateUserCommand) Name() string { return c.name }

// Password returns the plain-text password to hash.
func (c CreateUserCommand) Password() string { return c.password }

// Role returns the account role.
func (c CreateUserCommand) Role() user.Role { return c.role }

// ActorID returns the acting user's ID.
func (c CreateUserCommand) ActorID() kernel.UUID { return c.actorID }

func (c *CreateUserCommand) setPassword(password string) error {
	if len(password) < minPasswordLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"password", errors.New("must be at least 8 characters"))
	}
	c.password = password
	return nil
}

func (c *CreateUserCommand) setActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.actorID = id
	return nil
}
