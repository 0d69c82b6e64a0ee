package commands_test

import (
	"testing"
	"time"

	"fasttrack/internal/core/application/usecases/commands"
	"fasttrack/internal/core/domain/model/account"
	"fasttrack/internal/core/domain/model/kernel"
	"fasttrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRegisterUserCommand(t *testing.T) commands.RegisterUserCommand {
	t.Helper()

	cmd, err := commands.NewRegisterUserCommand(
		kernel.NewUUID(), "shop@example.com", "s3cret-pass", "Farida Akter",
		"Farida Fashions", "+8801911112222", "Shop 9, New Market")
	require.NoError(t, err)
	return cmd
}

func existingMerchant(t *testing.T) *account.User {
	t.Helper()

	u, err := account.NewUser(kernel.NewUUID(), "shop@example.com", "hash", "Farida Akter",
		account.RoleMerchant, "", "", "", time.Now())
	require.NoError(t, err)
	return u
}

func TestRegisterUserCommand_PasswordPolicy(t *testing.T) {
	_, err := commands.NewRegisterUserCommand(
		kernel.NewUUID(), "shop@example.com", "short", "Farida", "", "", "")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestRegisterUserCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := newRegisterUserCommand(t)

	hasher := new(MockPasswordHasher)
	hasher.On("Hash", "s3cret-pass").Return("bcrypt-hash", nil).Once()

	accountRepo := new(MockAccountRepository)
	accountRepo.On("GetByEmail", mock.Anything, "shop@example.com").
		Return(nil, errs.NewObjectNotFoundError("email", "shop@example.com")).Once()
	accountRepo.On("Add", mock.Anything, mock.AnythingOfType("*account.User")).Return(nil).Once()

	uow := new(MockAccountUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("AccountRepository").Return(accountRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterUserCommandHandler(factory, hasher)
	user, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, account.RoleMerchant, user.Role())
	assert.Equal(t, "bcrypt-hash", user.PasswordHash())
	hasher.AssertExpectations(t)
	accountRepo.AssertExpectations(t)
}

func TestRegisterUserCommandHandler_Handle_DuplicateEmail(t *testing.T) {
	ctx := t.Context()
	cmd := newRegisterUserCommand(t)

	hasher := new(MockPasswordHasher)
	hasher.On("Hash", "s3cret-pass").Return("bcrypt-hash", nil).Once()

	accountRepo := new(MockAccountRepository)
	accountRepo.On("GetByEmail", mock.Anything, "shop@example.com").Return(existingMerchant(t), nil).Once()

	uow := new(MockAccountUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("AccountRepository").Return(accountRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterUserCommandHandler(factory, hasher)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrConflict)
	accountRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}
