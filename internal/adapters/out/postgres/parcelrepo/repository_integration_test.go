package parcelrepo_test

import (
	"context"
	"testing"
	"time"

	"fasttrack/internal/adapters/out/postgres/parcelrepo"
	"fasttrack/internal/core/domain/model/kernel"
	"fasttrack/internal/core/domain/model/parcel"
	"fasttrack/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// ParcelRepositoryIntegrationTestSuite exercises parcel persistence against
// a real PostgreSQL container, including the optimistic concurrency check
// and the unique tracking ID constraint.
type ParcelRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *parcelrepo.GormParcelRepository
	tracker    *MockAggregateTracker
}

func (suite *ParcelRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&parcelrepo.ParcelDTO{},
		&parcelrepo.TrackingUpdateDTO{},
	))
}

func (suite *ParcelRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE tracking_updates, parcels").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = parcelrepo.NewGormParcelRepository(suite.db, suite.tracker)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ParcelRepositoryIntegrationTestSuite) createTestParcel() *parcel.Parcel {
	recipient, err := parcel.NewRecipient("Rahim Uddin", "+8801712345678", "House 12, Road 5, Dhanmondi, Dhaka")
	suite.Require().NoError(err)

	pack, err := parcel.NewPackageInfo("two cotton sarees", 1.2, "30x20x10cm")
	suite.Require().NoError(err)

	p, err := parcel.NewParcel(
		kernel.NewUUID(), kernel.NewTrackingID(), kernel.NewUUID(),
		recipient, pack, time.Now(),
	)
	suite.Require().NoError(err)
	return p
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestAdd_Get_RoundTrip() {
	ctx := context.Background()
	original := suite.createTestParcel()

	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal(original.TrackingID(), retrieved.TrackingID())
	suite.Equal(original.SenderID(), retrieved.SenderID())
	suite.Equal(original.Recipient().Name(), retrieved.Recipient().Name())
	suite.Equal(original.Recipient().Phone(), retrieved.Recipient().Phone())
	suite.Equal(original.Recipient().Address(), retrieved.Recipient().Address())
	suite.Equal(original.PackageInfo().WeightKg(), retrieved.PackageInfo().WeightKg())
	suite.Equal(parcel.StatusPending, retrieved.Status())
	suite.Equal(1, retrieved.Version())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestAdd_DuplicateTrackingID_ReturnsConflict() {
	ctx := context.Background()
	first := suite.createTestParcel()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	recipient, err := parcel.NewRecipient("Karim Mia", "+8801812345678", "Agrabad, Chattogram")
	suite.Require().NoError(err)
	duplicate, err := parcel.NewParcel(
		kernel.NewUUID(), first.TrackingID(), kernel.NewUUID(),
		recipient, parcel.PackageInfo{}, time.Now(),
	)
	suite.Require().NoError(err)

	err = suite.repository.Add(ctx, duplicate)
	suite.Require().ErrorIs(err, errs.ErrConflict)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestGetByTrackingID() {
	ctx := context.Background()
	original := suite.createTestParcel()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.GetByTrackingID(ctx, original.TrackingID())
	suite.Require().NoError(err)
	suite.Equal(original.ID(), retrieved.ID())

	_, err = suite.repository.GetByTrackingID(ctx, kernel.NewTrackingID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestExistsTrackingID() {
	ctx := context.Background()
	original := suite.createTestParcel()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	taken, err := suite.repository.ExistsTrackingID(ctx, original.TrackingID())
	suite.Require().NoError(err)
	suite.True(taken)

	free, err := suite.repository.ExistsTrackingID(ctx, kernel.NewTrackingID())
	suite.Require().NoError(err)
	suite.False(free)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestUpdate_BumpsVersion() {
	ctx := context.Background()
	original := suite.createTestParcel()
	adminID := kernel.NewUUID()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	_, err := original.ChangeStatus(parcel.StatusAssigned, "courier assigned", "", &adminID, time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)
	suite.Equal(parcel.StatusAssigned, retrieved.Status())
	suite.Equal("courier assigned", retrieved.StatusNotes())
	suite.Equal(2, retrieved.Version())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestUpdate_StaleVersion_ReturnsVersionConflict() {
	ctx := context.Background()
	original := suite.createTestParcel()
	adminID := kernel.NewUUID()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	// First writer wins and bumps the stored version to 2.
	_, err := original.ChangeStatus(parcel.StatusAssigned, "", "", &adminID, time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, original))

	// Second writer still holds version 1 of the same parcel.
	stale, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)
	suite.Equal(2, stale.Version())

	staleCopy, err := parcel.RestoreParcel(
		original.ID(), original.TrackingID(), original.SenderID(),
		original.Recipient(), original.PackageInfo(),
		parcel.StatusCancelled, "cancelled by sender", 1,
		original.CreatedAt(), time.Now(),
	)
	suite.Require().NoError(err)

	err = suite.repository.Update(ctx, staleCopy)
	suite.Require().ErrorIs(err, errs.ErrVersionConflict)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestUpdate_NonExistent_ReturnsNotFound() {
	err := suite.repository.Update(context.Background(), suite.createTestParcel())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestTrackingUpdates_AppendAndFetchOldestFirst() {
	ctx := context.Background()
	p := suite.createTestParcel()
	adminID := kernel.NewUUID()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Once()
	suite.Require().NoError(suite.repository.Add(ctx, p))

	now := time.Now()
	first, err := parcel.NewTrackingUpdate(
		kernel.NewUUID(), p.ID(), parcel.StatusPending, "", "parcel registered", nil, now)
	suite.Require().NoError(err)
	second, err := parcel.NewTrackingUpdate(
		kernel.NewUUID(), p.ID(), parcel.StatusAssigned, "Dhaka hub", "courier assigned", &adminID, now.Add(time.Minute))
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.AddTrackingUpdate(ctx, first))
	suite.Require().NoError(suite.repository.AddTrackingUpdate(ctx, second))

	history, err := suite.repository.GetTrackingUpdates(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Require().Len(history, 2)
	suite.Equal(parcel.StatusPending, history[0].Status())
	suite.Nil(history[0].ActorID())
	suite.Equal(parcel.StatusAssigned, history[1].Status())
	suite.Require().NotNil(history[1].ActorID())
	suite.True(history[1].ActorID().IsEqual(adminID))
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestTrackingUpdates_SameTimestampKeepInsertionOrder() {
	ctx := context.Background()
	p := suite.createTestParcel()
	senderID := kernel.NewUUID()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Once()
	suite.Require().NoError(suite.repository.Add(ctx, p))

	// Creation and an immediate status change land in one transaction with
	// the same wall-clock timestamp.
	now := time.Now()
	registered, err := parcel.NewTrackingUpdate(
		kernel.NewUUID(), p.ID(), parcel.StatusPending, "", "parcel registered", &senderID, now)
	suite.Require().NoError(err)
	cancelled, err := parcel.NewTrackingUpdate(
		kernel.NewUUID(), p.ID(), parcel.StatusCancelled, "", "cancelled right away", &senderID, now)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.AddTrackingUpdate(ctx, registered))
	suite.Require().NoError(suite.repository.AddTrackingUpdate(ctx, cancelled))

	history, err := suite.repository.GetTrackingUpdates(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Require().Len(history, 2)
	suite.Equal(parcel.StatusPending, history[0].Status())
	suite.Equal(parcel.StatusCancelled, history[1].Status())
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestDelete_RemovesParcelAndHistory() {
	ctx := context.Background()
	p := suite.createTestParcel()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Once()
	suite.Require().NoError(suite.repository.Add(ctx, p))

	entry, err := parcel.NewTrackingUpdate(
		kernel.NewUUID(), p.ID(), parcel.StatusPending, "", "parcel registered", nil, time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.AddTrackingUpdate(ctx, entry))

	suite.Require().NoError(suite.repository.Delete(ctx, p.ID()))

	_, err = suite.repository.Get(ctx, p.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	var count int64
	suite.Require().NoError(suite.db.Model(&parcelrepo.TrackingUpdateDTO{}).Count(&count).Error)
	suite.Zero(count)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestGet_NonExistent_ReturnsNotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestParcelRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ParcelRepositoryIntegrationTestSuite))
}
