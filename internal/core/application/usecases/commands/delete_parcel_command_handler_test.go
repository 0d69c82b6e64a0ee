package commands_test

import (
	"testing"
	"time"

	"fasttrack/internal/core/application/usecases/commands"
	"fasttrack/internal/core/domain/model/account"
	"fasttrack/internal/core/domain/model/kernel"
	"fasttrack/internal/core/domain/model/parcel"
	"fasttrack/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteParcelCommandHandler_Handle_PendingParcel(t *testing.T) {
	ctx := t.Context()
	merchantID := kernel.NewUUID()
	aggregate := pendingParcel(t, merchantID)

	cmd, err := commands.NewDeleteParcelCommand(aggregate.ID(), merchantID, account.RoleMerchant)
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	pickupRepo := new(MockPickupRequestRepository)
	uow := new(MockPickupUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("PickupRequestRepository").Return(pickupRepo).Once(),
		pickupRepo.On("HasOpenRequestForParcel", mock.Anything, aggregate.ID()).Return(false, nil).Once(),
		parcelRepo.On("Delete", mock.Anything, aggregate.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPickupUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteParcelCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	parcelRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeleteParcelCommandHandler_Handle_LinkedParcelConflicts(t *testing.T) {
	ctx := t.Context()
	merchantID := kernel.NewUUID()
	aggregate := pendingParcel(t, merchantID)

	cmd, err := commands.NewDeleteParcelCommand(aggregate.ID(), merchantID, account.RoleMerchant)
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	parcelRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()

	pickupRepo := new(MockPickupRequestRepository)
	pickupRepo.On("HasOpenRequestForParcel", mock.Anything, aggregate.ID()).Return(true, nil).Once()

	uow := new(MockPickupUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ParcelRepository").Return(parcelRepo).Once()
	uow.On("PickupRequestRepository").Return(pickupRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockPickupUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteParcelCommandHandler(factory)
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrConflict)
	parcelRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteParcelCommandHandler_Handle_AssignedParcelConflicts(t *testing.T) {
	ctx := t.Context()
	merchantID := kernel.NewUUID()
	aggregate := pendingParcel(t, merchantID)
	_, err := aggregate.ChangeStatus(parcel.StatusAssigned, "", "", nil, time.Now())
	require.NoError(t, err)

	cmd, err := commands.NewDeleteParcelCommand(aggregate.ID(), merchantID, account.RoleMerchant)
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	parcelRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()

	uow := new(MockPickupUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ParcelRepository").Return(parcelRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockPickupUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteParcelCommandHandler(factory)
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrConflict)
	parcelRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteParcelCommandHandler_Handle_ForeignParcelForbidden(t *testing.T) {
	ctx := t.Context()
	aggregate := pendingParcel(t, kernel.NewUUID())

	cmd, err := commands.NewDeleteParcelCommand(aggregate.ID(), kernel.NewUUID(), account.RoleMerchant)
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	parcelRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()

	uow := new(MockPickupUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ParcelRepository").Return(parcelRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockPickupUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteParcelCommandHandler(factory)
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrForbidden)
}
