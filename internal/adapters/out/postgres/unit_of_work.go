// Package postgres implements the unit of work and repository ports on top
// of GORM. A unit of work wraps one business transaction: repositories
// obtained from it share the transaction once Begin has been called, so a
// status change and its tracking update, or an approval and its parcel
// cascade, commit or roll back together.
package postgres

import (
	"context"

	"fasttrack/internal/adapters/out/postgres/accountrepo"
	"fasttrack/internal/adapters/out/postgres/courierrepo"
	"fasttrack/internal/adapters/out/postgres/parcelrepo"
	"fasttrack/internal/adapters/out/postgres/pickuprepo"
	"fasttrack/internal/core/domain/model/kernel"
	"fasttrack/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate records an aggregate modified during the unit of work,
// kept for post-commit processing such as event publication.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate interface{}
}

// GormUnitOfWorkFactory produces isolated unit of work instances over a
// shared GORM connection. Each command handler gets its own instance.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory bound to the given connection.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create returns a fresh unit of work with its own transaction state.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction across the parcel,
// pickup request, courier, and account repositories. Repositories returned
// before Begin run against the bare connection; after Begin they share the
// transaction until Commit or Rollback closes it.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin starts the transaction. Calling Begin again on an open unit of work
// is a no-op rather than a nested transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit makes all changes since Begin permanent and closes the transaction.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes since Begin and closes the transaction.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// ParcelRepository returns a parcel repository bound to the current
// transaction, if one is active.
func (uow *GormUnitOfWork) ParcelRepository() ports.ParcelRepository {
	return parcelrepo.NewGormParcelRepository(uow.conn(), uow)
}

// PickupRequestRepository returns a pickup request repository bound to the
// current transaction, if one is active.
func (uow *GormUnitOfWork) PickupRequestRepository() ports.PickupRequestRepository {
	return pickuprepo.NewGormPickupRequestRepository(uow.conn(), uow)
}

// CourierRepository returns a courier repository bound to the current
// transaction, if one is active.
func (uow *GormUnitOfWork) CourierRepository() ports.CourierRepository {
	return courierrepo.NewGormCourierRepository(uow.conn(), uow)
}

// AccountRepository returns an account repository bound to the current
// transaction, if one is active.
func (uow *GormUnitOfWork) AccountRepository() ports.AccountRepository {
	return accountrepo.NewGormAccountRepository(uow.conn(), uow)
}

// TrackAggregate registers an aggregate as modified within this unit of
// work. Called by the repositories on Add and Update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}
