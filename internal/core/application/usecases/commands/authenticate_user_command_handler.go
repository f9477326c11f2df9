package commands

import (
	"context"
	"errors"

	"shopadmin/internal/core/domain/model/user"
	"shopadmin/internal/pkg/crypto"
	"shopadmin/internal/pkg/errs"
	"shopadmin/internal/pkg/token"
)

var (
	// ErrInvalidCredentials covers both unknown emails and wrong passwords,
	// so responses do not reveal which accounts exist.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrAccountBlocked means the account exists but has been blocked.
	ErrAccountBlocked = errors.New("account is blocked")

	// ErrAdminPanelAccessDenied means the account's role has no admin
	// panel access (customer accounts).
	ErrAdminPanelAccessDenied = errors.New("role has no admin panel access")
)

// AuthenticateUserResult carries the issued token and the authenticated
// account's public attributes.
type AuthenticateUserResult struct {
	Token  string
	UserID string
	Name   string
	Role   user.Role
}

// AuthenticateUserCommandHandler verifies admin panel credentials and
// issues a signed JWT on success.
type AuthenticateUserCommandHandler struct {
	uowFactory UserUoWFactory
	issuer     *token.Issuer
}

// NewAuthenticateUserCommandHandler creates a handler for logins.
func NewAuthenticateUserCommandHandler(
	uowFactory UserUoWFactory,
	issuer *token.Issuer,
) AuthenticateUserCommandHandler {
	return AuthenticateUserCommandHandler{
		uowFactory: uowFactory,
		issuer:     issuer,
	}
}

// Handle processes the login command.
func (h AuthenticateUserCommandHandler) Handle(
	ctx context.Context,
	command AuthenticateUserCommand,
) (AuthenticateUserResult, error) {
	if err := command.Validate(); err != nil {
		return AuthenticateUserResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AuthenticateUserResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	account, err := uow.UserRepository().GetByEmail(ctx, command.Email())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return AuthenticateUserResult{}, ErrInvalidCredentials
	}
	if err != nil {
		return AuthenticateUserResult{}, err
	}

	if err = crypto.CheckPasswordHash(command.Password(), account.PasswordHash()); err != nil {
		return AuthenticateUserResult{}, ErrInvalidCredentials
	}

	if account.IsBlocked() {
		return AuthenticateUserResult{}, ErrAccountBlocked
	}

	if !account.Role().CanAccessAdminPanel() {
		return AuthenticateUserResult{}, ErrAdminPanelAccessDenied
	}

	signed, err := h.issuer.Issue(account.ID().String(), string(account.Role()))
	if err != nil {
		return AuthenticateUserResult{}, err
	}

	return AuthenticateUserResult{
		Token:  signed,
		UserID: account.ID().String(),
		Name:   account.Name(),
		Role:   account.Role(),
	}, nil
}
