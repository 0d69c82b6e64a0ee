package commands_test

import (
	"testing"

	"fasttrack/internal/core/application/usecases/commands"
	"fasttrack/internal/core/domain/model/courier"
	"fasttrack/internal/core/domain/model/kernel"
	"fasttrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateCourierCommand_RequiresNameAndPhone(t *testing.T) {
	_, err := commands.NewCreateCourierCommand(kernel.NewUUID(), "", "+880", "", "", "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewCreateCourierCommand(kernel.NewUUID(), "Rafiq", "", "", "", "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestCreateCourierCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewCreateCourierCommand(
		kernel.NewUUID(), "Rafiq Islam", "+8801811223344", "motorbike", "DHK-1234", "Gulshan")
	require.NoError(t, err)

	courierRepo := new(MockCourierRepository)
	uow := new(MockCourierUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		courierRepo.On("Add", mock.Anything, mock.AnythingOfType("*courier.Courier")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	uow.On("CourierRepository").Return(courierRepo).Once()

	factory := new(MockCourierUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateCourierCommandHandler(factory)
	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, courier.StatusActive, created.Status())
	assert.Equal(t, "Rafiq Islam", created.Name())
	courierRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
