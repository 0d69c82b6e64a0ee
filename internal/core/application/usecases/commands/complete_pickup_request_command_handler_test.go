package commands_test

import (
	"testing"
	"time"

	"fasttrack/internal/core/application/usecases/commands"
	"fasttrack/internal/core/domain/model/kernel"
	"fasttrack/internal/core/domain/model/parcel"
	"fasttrack/internal/core/domain/model/pickup"
	"fasttrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCompletePickupRequestCommandHandler_Handle_CascadesAssignedParcels(t *testing.T) {
	ctx := t.Context()
	merchantID := kernel.NewUUID()
	assigned := pendingParcel(t, merchantID)
	_, err := assigned.ChangeStatus(parcel.StatusAssigned, "", "", nil, time.Now())
	require.NoError(t, err)

	advanced := pendingParcel(t, merchantID)
	_, err = advanced.ChangeStatus(parcel.StatusAssigned, "", "", nil, time.Now())
	require.NoError(t, err)
	_, err = advanced.ChangeStatus(parcel.StatusPickedUp, "", "", nil, time.Now())
	require.NoError(t, err)

	request := pendingRequest(t, merchantID, assigned.ID(), advanced.ID())
	require.NoError(t, request.Approve(kernel.NewUUID(), time.Now()))

	cmd, err := commands.NewCompletePickupRequestCommand(request.ID(), kernel.NewUUID())
	require.NoError(t, err)

	pickupRepo := new(MockPickupRequestRepository)
	pickupRepo.On("Get", mock.Anything, request.ID()).Return(request, nil).Once()
	pickupRepo.On("Update", mock.Anything, request).Return(nil).Once()

	parcelRepo := new(MockParcelRepository)
	parcelRepo.On("Get", mock.Anything, assigned.ID()).Return(assigned, nil).Once()
	parcelRepo.On("Get", mock.Anything, advanced.ID()).Return(advanced, nil).Once()
	parcelRepo.On("Update", mock.Anything, assigned).Return(nil).Once()
	parcelRepo.On("AddTrackingUpdate", mock.Anything, mock.Anything).Return(nil).Once()

	uow := new(MockPickupUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("PickupRequestRepository").Return(pickupRepo).Once()
	uow.On("ParcelRepository").Return(parcelRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockPickupUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompletePickupRequestCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, pickup.StatusCompleted, request.Status())
	assert.Equal(t, parcel.StatusPickedUp, assigned.Status())
	assert.Equal(t, parcel.StatusPickedUp, advanced.Status())
	parcelRepo.AssertExpectations(t)
	pickupRepo.AssertExpectations(t)
}

func TestCompletePickupRequestCommandHandler_Handle_PendingRequest(t *testing.T) {
	ctx := t.Context()
	request := pendingRequest(t, kernel.NewUUID(), kernel.NewUUID())

	cmd, err := commands.NewCompletePickupRequestCommand(request.ID(), kernel.NewUUID())
	require.NoError(t, err)

	pickupRepo := new(MockPickupRequestRepository)
	pickupRepo.On("Get", mock.Anything, request.ID()).Return(request, nil).Once()

	parcelRepo := new(MockParcelRepository)

	uow := new(MockPickupUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("PickupRequestRepository").Return(pickupRepo).Once()
	uow.On("ParcelRepository").Return(parcelRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockPickupUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompletePickupRequestCommandHandler(factory)
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrInvalidTransition)
}
