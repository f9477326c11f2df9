package commands

import (
	"errors"

	"shopadmin/internal/pkg/guard"
)

var (
	ErrAuthenticateUserCommandIsNotConstructed = errors.New(
		"AuthenticateUserCommand must be created via NewAuthenticateUserCommand constructor",
	)
)

// AuthenticateUserCommand represents an admin panel login attempt.
type AuthenticateUserCommand struct { //nolint:recvcheck //using for validation
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewAuthenticateUserCommand creates a login command.
func NewAuthenticateUserCommand(email, password string) (AuthenticateUserCommand, error) {
	command := AuthenticateUserCommand{
		email:    email,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		requireValue("email", email),
		requireValue("password", password),
	); err != nil {
		return AuthenticateUserCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AuthenticateUserCommand) Validate() error {
	return c.guard.Validate(ErrAuthenticateUserCommandIsNotConstructed)
}

// Email returns the login email.
func (c AuthenticateUserCommand) Email() string { return c.email }

// Password returns the plain-text password to verify.
func (c AuthenticateUserCommand) Password() string { return c.password }
