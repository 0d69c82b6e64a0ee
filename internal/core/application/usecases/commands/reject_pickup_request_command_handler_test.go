package commands_test

import (
	"testing"

	"fasttrack/internal/core/application/usecases/commands"
	"fasttrack/internal/core/domain/model/kernel"
	"fasttrack/internal/core/domain/model/pickup"
	"fasttrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRejectPickupRequestCommand_RequiresNotes(t *testing.T) {
	_, err := commands.NewRejectPickupRequestCommand(kernel.NewUUID(), kernel.NewUUID(), "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestRejectPickupRequestCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	merchantID := kernel.NewUUID()
	request := pendingRequest(t, merchantID, kernel.NewUUID())

	cmd, err := commands.NewRejectPickupRequestCommand(request.ID(), kernel.NewUUID(), "address unreachable")
	require.NoError(t, err)

	pickupRepo := new(MockPickupRequestRepository)
	uow := new(MockPickupUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PickupRequestRepository").Return(pickupRepo).Once(),
		pickupRepo.On("Get", mock.Anything, request.ID()).Return(request, nil).Once(),
		pickupRepo.On("Update", mock.Anything, request).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPickupUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRejectPickupRequestCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, pickup.StatusRejected, request.Status())
	assert.Equal(t, "address unreachable", request.AdminNotes())
	pickupRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
