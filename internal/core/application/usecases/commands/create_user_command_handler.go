package commands

import (
	"context"
	"errors"
	"fmt"

	"shopadmin/internal/core/domain/model/activity"
	"shopadmin/internal/core/domain/model/kernel"
	"shopadmin/internal/core/domain/model/user"
	"shopadmin/internal/pkg/crypto"
	"shopadmin/internal/pkg/errs"
)

var (
	// ErrEmailAlreadyTaken means another account uses the requested email.
	ErrEmailAlreadyTaken = errors.New("email is already taken")
)

// CreateUserCommandHandler registers a user account with a bcrypt-hashed
// password. Emails are unique across accounts.
type CreateUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewCreateUserCommandHandler creates a handler for account registration.
func NewCreateUserCommandHandler(uowFactory UserUoWFactory) CreateUserCommandHandler {
	return CreateUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the account creation command.
// Returns the new account's ID on success.
func (h CreateUserCommandHandler) Handle(
	ctx context.Context,
	command CreateUserCommand,
) (kernel.UUID, error) {
	if err := command.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	hash, err := crypto.HashPassword(command.Password())
	if err != nil {
		return kernel.UUID{}, err
	}

	account, err := user.NewUser(kernel.NewUUID(), command.Email(), command.Name(), hash, command.Role())
	if err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()

	existing, err := userRepo.GetByEmail(ctx, account.Email())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return kernel.UUID{}, err
	}
	if existing != nil {
		return kernel.UUID{}, fmt.Errorf("%w: %s", ErrEmailAlreadyTaken, account.Email())
	}

	if err = userRepo.Add(ctx, account); err != nil {
		return kernel.UUID{}, err
	}

	entry, err := activity.NewEntry(
		command.ActorID(),
		activity.ActionUserCreated,
		"user",
		account.ID().String(),
		fmt.Sprintf("%s (%s)", account.Email(), account.Role()),
	)
	if err != nil {
		return kernel.UUID{}, err
	}
	if err = uow.ActivityRepository().Add(ctx, entry); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return account.ID(), nil
}
