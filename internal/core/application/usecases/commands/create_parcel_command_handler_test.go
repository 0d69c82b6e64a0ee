package commands_test

import (
	"testing"

	"fasttrack/internal/core/application/usecases/commands"
	"fasttrack/internal/core/domain/model/kernel"
	"fasttrack/internal/core/domain/model/parcel"
	"fasttrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCreateParcelCommand(t *testing.T) commands.CreateParcelCommand {
	t.Helper()

	cmd, err := commands.NewCreateParcelCommand(
		kernel.NewUUID(), kernel.NewUUID(),
		"Jamal Uddin", "+8801712345678", "12 Gulshan Ave, Dhaka",
		"electronics", 1.2, "30x20x10cm",
	)
	require.NoError(t, err)
	return cmd
}

func TestCreateParcelCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateParcelCommand(t)

	repo := new(MockParcelRepository)
	uow := new(MockParcelUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(repo).Once(),
		repo.On("ExistsTrackingID", mock.Anything, mock.AnythingOfType("kernel.TrackingID")).Return(false, nil).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*parcel.Parcel")).Return(nil).Once(),
		repo.On("AddTrackingUpdate", mock.Anything, mock.AnythingOfType("*parcel.TrackingUpdate")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateParcelCommandHandler(factory)
	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, parcel.StatusPending, created.Status())
	assert.Regexp(t, `^FT[0-9A-F]{8}$`, created.TrackingID().String())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateParcelCommandHandler_Handle_InitialUpdateMatchesParcel(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateParcelCommand(t)

	var created *parcel.Parcel
	var initial *parcel.TrackingUpdate

	repo := new(MockParcelRepository)
	repo.On("ExistsTrackingID", mock.Anything, mock.Anything).Return(false, nil).Once()
	repo.On("Add", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		created = args.Get(1).(*parcel.Parcel)
	}).Return(nil).Once()
	repo.On("AddTrackingUpdate", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		initial = args.Get(1).(*parcel.TrackingUpdate)
	}).Return(nil).Once()

	uow := new(MockParcelUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ParcelRepository").Return(repo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateParcelCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	require.NotNil(t, initial)
	assert.Equal(t, parcel.StatusPending, initial.Status())
	assert.True(t, initial.ParcelID().IsEqual(created.ID()))
}

func TestCreateParcelCommandHandler_Handle_TrackingIDExhausted(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateParcelCommand(t)

	repo := new(MockParcelRepository)
	repo.On("ExistsTrackingID", mock.Anything, mock.Anything).Return(true, nil).Times(5)

	uow := new(MockParcelUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ParcelRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateParcelCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrResourceExhausted)
	repo.AssertExpectations(t)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCreateParcelCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockParcelUoWFactory)
	h := commands.NewCreateParcelCommandHandler(factory)

	_, err := h.Handle(t.Context(), commands.CreateParcelCommand{})
	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}
