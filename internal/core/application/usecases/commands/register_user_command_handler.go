package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fasttrack/internal/core/domain/model/account"
	"fasttrack/internal/pkg/errs"
)

// RegisterUserCommandHandler creates merchant accounts. The email uniqueness
// check here gives a friendly error; the unique index in the store is the
// actual guarantee under concurrency.
type RegisterUserCommandHandler struct {
	uowFactory AccountUoWFactory
	hasher     PasswordHasher
}

// NewRegisterUserCommandHandler creates a handler for registrations.
func NewRegisterUserCommandHandler(uowFactory AccountUoWFactory, hasher PasswordHasher) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle processes the registration command and returns the created account.
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (*account.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	passwordHash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return nil, err
	}

	user, err := account.NewUser(
		cmd.UserID(),
		cmd.Email(),
		passwordHash,
		cmd.FullName(),
		account.RoleMerchant,
		cmd.BusinessName(),
		cmd.Phone(),
		cmd.Address(),
		time.Now(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	accountRepo := uow.AccountRepository()

	_, err = accountRepo.GetByEmail(ctx, cmd.Email())
	switch {
	case err == nil:
		return nil, errs.NewConflictError(fmt.Sprintf("email %s is already registered", cmd.Email()))
	case !errors.Is(err, errs.ErrObjectNotFound):
		return nil, err
	}

	if err = accountRepo.Add(ctx, user); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return user, nil
}
