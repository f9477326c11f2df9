package commands

import (
	"context"
	"errors"
	"fmt"

	"shopadmin/internal/core/domain/model/activity"
)

var (
	// ErrCannotChangeOwnRole blocks admins from demoting themselves, which
	// could leave the panel without an administrator.
	ErrCannotChangeOwnRole = errors.New("users cannot change their own role")
)

// ChangeUserRoleCommandHandler changes a user's role and records the change.
type ChangeUserRoleCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewChangeUserRoleCommandHandler creates a handler for role changes.
func NewChangeUserRoleCommandHandler(uowFactory UserUoWFactory) ChangeUserRoleCommandHandler {
	return ChangeUserRoleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the role change command.
func (h ChangeUserRoleCommandHandler) Handle(ctx context.Context, command ChangeUserRoleCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	if command.UserID().IsEqual(command.ActorID()) {
		return ErrCannotChangeOwnRole
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()

	account, err := userRepo.Get(ctx, command.UserID())
	if err != nil {
		return err
	}

	previous := account.Role()
	if err = account.ChangeRole(command.Role()); err != nil {
		return err
	}

	if err = userRepo.Update(ctx, account); err != nil {
		return err
	}

	entry, err := activity.NewEntry(
		command.ActorID(),
		activity.ActionUserRoleChanged,
		"user",
		account.ID().String(),
		fmt.Sprintf("%s -> %s", previous, command.Role()),
	)
	if err != nil {
		return err
	}
	if err = uow.ActivityRepository().Add(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
