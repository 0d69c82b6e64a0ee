package commands_test

import (
	"context"

	"fasttrack/internal/core/application/usecases/commands"
	"fasttrack/internal/core/domain/model/account"
	"fasttrack/internal/core/domain/model/courier"
	"fasttrack/internal/core/domain/model/kernel"
	"fasttrack/internal/core/domain/model/parcel"
	"fasttrack/internal/core/domain/model/pickup"
	"fasttrack/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockParcelRepository struct{ mock.Mock }

func (m *MockParcelRepository) Add(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockParcelRepository) Update(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}
func (m *MockParcelRepository) GetByTrackingID(ctx context.Context, trackingID kernel.TrackingID) (*parcel.Parcel, error) {
	args := m.Called(ctx, trackingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}
func (m *MockParcelRepository) ExistsTrackingID(ctx context.Context, trackingID kernel.TrackingID) (bool, error) {
	args := m.Called(ctx, trackingID)
	return args.Bool(0), args.Error(1)
}
func (m *MockParcelRepository) AddTrackingUpdate(ctx context.Context, update *parcel.TrackingUpdate) error {
	args := m.Called(ctx, update)
	return args.Error(0)
}
func (m *MockParcelRepository) GetTrackingUpdates(ctx context.Context, parcelID kernel.UUID) ([]*parcel.TrackingUpdate, error) {
	args := m.Called(ctx, parcelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*parcel.TrackingUpdate), args.Error(1)
}
func (m *MockParcelRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPickupRequestRepository struct{ mock.Mock }

func (m *MockPickupRequestRepository) Add(ctx context.Context, r *pickup.Request) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockPickupRequestRepository) Update(ctx context.Context, r *pickup.Request) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockPickupRequestRepository) Get(ctx context.Context, id kernel.UUID) (*pickup.Request, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pickup.Request), args.Error(1)
}
func (m *MockPickupRequestRepository) HasOpenRequestForParcel(ctx context.Context, parcelID kernel.UUID) (bool, error) {
	args := m.Called(ctx, parcelID)
	return args.Bool(0), args.Error(1)
}

type MockCourierRepository struct{ mock.Mock }

func (m *MockCourierRepository) Add(ctx context.Context, c *courier.Courier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCourierRepository) Update(ctx context.Context, c *courier.Courier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCourierRepository) Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*courier.Courier), args.Error(1)
}

type MockAccountRepository struct{ mock.Mock }

func (m *MockAccountRepository) Add(ctx context.Context, u *account.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}
func (m *MockAccountRepository) Update(ctx context.Context, u *account.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}
func (m *MockAccountRepository) Get(ctx context.Context, id kernel.UUID) (*account.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.User), args.Error(1)
}
func (m *MockAccountRepository) GetByEmail(ctx context.Context, email string) (*account.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.User), args.Error(1)
}

// txMock provides the shared Begin/Commit/Rollback expectations for the unit
// of work mocks below.
type txMock struct{ mock.Mock }

func (m *txMock) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *txMock) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *txMock) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockParcelUoW struct{ txMock }

func (m *MockParcelUoW) ParcelRepository() ports.ParcelRepository {
	args := m.Called()
	return args.Get(0).(ports.ParcelRepository)
}

type MockParcelUoWFactory struct{ mock.Mock }

func (m *MockParcelUoWFactory) Create() commands.ParcelUoW {
	args := m.Called()
	return args.Get(0).(commands.ParcelUoW)
}

type MockPickupUoW struct{ txMock }

func (m *MockPickupUoW) PickupRequestRepository() ports.PickupRequestRepository {
	args := m.Called()
	return args.Get(0).(ports.PickupRequestRepository)
}
func (m *MockPickupUoW) ParcelRepository() ports.ParcelRepository {
	args := m.Called()
	return args.Get(0).(ports.ParcelRepository)
}

type MockPickupUoWFactory struct{ mock.Mock }

func (m *MockPickupUoWFactory) Create() commands.PickupUoW {
	args := m.Called()
	return args.Get(0).(commands.PickupUoW)
}

type MockAssignmentUoW struct{ txMock }

func (m *MockAssignmentUoW) PickupRequestRepository() ports.PickupRequestRepository {
	args := m.Called()
	return args.Get(0).(ports.PickupRequestRepository)
}
func (m *MockAssignmentUoW) ParcelRepository() ports.ParcelRepository {
	args := m.Called()
	return args.Get(0).(ports.ParcelRepository)
}
func (m *MockAssignmentUoW) CourierRepository() ports.CourierRepository {
	args := m.Called()
	return args.Get(0).(ports.CourierRepository)
}

type MockAssignmentUoWFactory struct{ mock.Mock }

func (m *MockAssignmentUoWFactory) Create() commands.AssignmentUoW {
	args := m.Called()
	return args.Get(0).(commands.AssignmentUoW)
}

type MockCourierUoW struct{ txMock }

func (m *MockCourierUoW) CourierRepository() ports.CourierRepository {
	args := m.Called()
	return args.Get(0).(ports.CourierRepository)
}

type MockCourierUoWFactory struct{ mock.Mock }

func (m *MockCourierUoWFactory) Create() commands.CourierUoW {
	args := m.Called()
	return args.Get(0).(commands.CourierUoW)
}

type MockAccountUoW struct{ txMock }

func (m *MockAccountUoW) AccountRepository() ports.AccountRepository {
	args := m.Called()
	return args.Get(0).(ports.AccountRepository)
}

type MockAccountUoWFactory struct{ mock.Mock }

func (m *MockAccountUoWFactory) Create() commands.AccountUoW {
	args := m.Called()
	return args.Get(0).(commands.AccountUoW)
}

type MockPasswordHasher struct{ mock.Mock }

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}
func (m *MockPasswordHasher) Compare(hashed, password string) error {
	args := m.Called(hashed, password)
	return args.Error(0)
}

type MockTokenIssuer struct{ mock.Mock }

func (m *MockTokenIssuer) Issue(user *account.User) (string, error) {
	args := m.Called(user)
	return args.String(0), args.Error(1)
}
