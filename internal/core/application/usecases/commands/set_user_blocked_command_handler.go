package commands

import (
	"context"
	"errors"

	"shopadmin/internal/core/domain/model/activity"
)

var (
	// ErrCannotBlockSelf blocks admins from locking themselves out.
	ErrCannotBlockSelf = errors.New("users cannot block their own account")
)

// SetUserBlockedCommandHandler blocks or unblocks a user account.
type SetUserBlockedCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewSetUserBlockedCommandHandler creates a handler for the blocked flag.
func NewSetUserBlockedCommandHandler(uowFactory UserUoWFactory) SetUserBlockedCommandHandler {
	return SetUserBlockedCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the block/unblock command.
func (h SetUserBlockedCommandHandler) Handle(ctx context.Context, command SetUserBlockedCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	if command.Blocked() && command.UserID().IsEqual(command.ActorID()) {
		return ErrCannotBlockSelf
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

	action := activity.ActionUserBlocked
	detail := "account blocked"
	if command.Blocked() {
		account.Block()
	} else {
		account.Unblock()
		action = activity.ActionUserUnblocked
		detail = "account unblocked"
	}

	if err = userRepo.Update(ctx, account); err != nil {
		return err
	}

	entry, err := activity.NewEntry(
		command.ActorID(),
		action,
		"user",
		account.ID().String(),
		detail,
	)
	if err != nil {
		return err
	}
	if err = uow.ActivityRepository().Add(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
