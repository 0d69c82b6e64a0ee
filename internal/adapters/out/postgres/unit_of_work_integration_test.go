package postgres_test

import (
	"context"
	"testing"
	"time"

	"fasttrack/internal/adapters/out/postgres"
	"fasttrack/internal/adapters/out/postgres/parcelrepo"
	"fasttrack/internal/adapters/out/postgres/pickuprepo"
	"fasttrack/internal/core/domain/model/kernel"
	"fasttrack/internal/core/domain/model/parcel"
	"fasttrack/internal/core/domain/model/pickup"
	"fasttrack/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies that repositories obtained from
// one unit of work share a transaction: a parcel and its tracking update,
// or an approval and its parcel cascade, land or vanish together.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
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
		&pickuprepo.PickupRequestDTO{},
		&pickuprepo.PickupRequestParcelDTO{},
	))
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE tracking_updates, parcels, pickup_request_parcels, pickup_requests").Error)
	suite.factory = postgres.NewGormUnitOfWorkFactory(suite.db)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestParcel() *parcel.Parcel {
	recipient, err := parcel.NewRecipient("Rahim Uddin", "+8801712345678", "Dhanmondi, Dhaka")
	suite.Require().NoError(err)

	p, err := parcel.NewParcel(
		kernel.NewUUID(), kernel.NewTrackingID(), kernel.NewUUID(),
		recipient, parcel.PackageInfo{}, time.Now(),
	)
	suite.Require().NoError(err)
	return p
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsParcelWithHistory() {
	ctx := context.Background()
	uow := suite.factory.Create()
	p := suite.createTestParcel()

	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(uow.ParcelRepository().Add(ctx, p))
	entry, err := parcel.NewTrackingUpdate(
		kernel.NewUUID(), p.ID(), parcel.StatusPending, "", "parcel registered", nil, time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(uow.ParcelRepository().AddTrackingUpdate(ctx, entry))

	suite.Require().NoError(uow.Commit(ctx))

	stored, err := suite.factory.Create().ParcelRepository().Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal(p.TrackingID(), stored.TrackingID())

	history, err := suite.factory.Create().ParcelRepository().GetTrackingUpdates(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Len(history, 1)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsEverything() {
	ctx := context.Background()
	uow := suite.factory.Create()
	p := suite.createTestParcel()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ParcelRepository().Add(ctx, p))
	suite.Require().NoError(uow.Rollback(ctx))

	_, err := suite.factory.Create().ParcelRepository().Get(ctx, p.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_CoversApprovalCascade() {
	ctx := context.Background()
	p := suite.createTestParcel()
	adminID := kernel.NewUUID()

	setup := suite.factory.Create()
	suite.Require().NoError(setup.Begin(ctx))
	suite.Require().NoError(setup.ParcelRepository().Add(ctx, p))

	now := time.Now()
	request, err := pickup.NewRequest(
		kernel.NewUUID(), p.SenderID(), "Banani, Dhaka",
		now.AddDate(0, 0, 2), "", "", []kernel.UUID{p.ID()}, now,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(setup.PickupRequestRepository().Add(ctx, request))
	suite.Require().NoError(setup.Commit(ctx))

	// Approve the request and advance the parcel, then roll back: neither
	// change may survive.
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(request.Approve(kernel.NewUUID(), time.Now()))
	suite.Require().NoError(uow.PickupRequestRepository().Update(ctx, request))

	_, err = p.ChangeStatus(parcel.StatusAssigned, "courier assigned", "", &adminID, time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(uow.ParcelRepository().Update(ctx, p))

	suite.Require().NoError(uow.Rollback(ctx))

	storedRequest, err := suite.factory.Create().PickupRequestRepository().Get(ctx, request.ID())
	suite.Require().NoError(err)
	suite.Equal(pickup.StatusPending, storedRequest.Status())

	storedParcel, err := suite.factory.Create().ParcelRepository().Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal(parcel.StatusPending, storedParcel.Status())
	suite.Equal(1, storedParcel.Version())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommitWithoutBegin_ReturnsError() {
	uow := suite.factory.Create()
	suite.Require().ErrorIs(uow.Commit(context.Background()), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(context.Background()), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRepositoriesWorkWithoutTransaction() {
	ctx := context.Background()
	p := suite.createTestParcel()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.ParcelRepository().Add(ctx, p))

	stored, err := uow.ParcelRepository().Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal(p.ID(), stored.ID())
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
