package commands

import (
	"context"
	"errors"

	"fasttrack/internal/core/domain/model/account"
	"fasttrack/internal/pkg/errs"
)

// LoginCommandHandler authenticates accounts and issues access tokens.
// Unknown emails and wrong passwords produce the same error, so the endpoint
// cannot be used to probe which emails are registered.
type LoginCommandHandler struct {
	uowFactory AccountUoWFactory
	hasher     PasswordHasher
	tokens     TokenIssuer
}

// NewLoginCommandHandler creates a handler for sign-ins.
func NewLoginCommandHandler(
	uowFactory AccountUoWFactory,
	hasher PasswordHasher,
	tokens TokenIssuer,
) LoginCommandHandler {
	return LoginCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		tokens:     tokens,
	}
}

// Handle processes the sign-in command, returning a signed token and the
// authenticated account.
func (h *LoginCommandHandler) Handle(ctx context.Context, cmd LoginCommand) (string, *account.User, error) {
	if err := cmd.Validate(); err != nil {
		return "", nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	user, err := uow.AccountRepository().GetByEmail(ctx, cmd.Email())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return "", nil, errs.NewUnauthorizedError("invalid email or password")
		}
		return "", nil, err
	}

	if err = h.hasher.Compare(user.PasswordHash(), cmd.Password()); err != nil {
		return "", nil, errs.NewUnauthorizedError("invalid email or password")
	}

	if !user.CanSignIn() {
		return "", nil, errs.NewUnauthorizedError("account is not active")
	}

	token, err := h.tokens.Issue(user)
	if err != nil {
		return "", nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", nil, err
	}

	return token, user, nil
}
