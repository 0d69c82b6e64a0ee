package parcelrepo

import (
	"context"
	"errors"
	"fmt"

	"fasttrack/internal/core/domain/model/kernel"
	"fasttrack/internal/core/domain/model/parcel"
	"fasttrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormParcelRepository implements ParcelRepository using GORM.
type GormParcelRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormParcelRepository creates a new GORM parcel repository.
func NewGormParcelRepository(db *gorm.DB, tracker aggregateTracker) *GormParcelRepository {
	return &GormParcelRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new parcel. A tracking ID collision surfaces as a ConflictError
// so the creation workflow can regenerate and retry.
func (r *GormParcelRepository) Add(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause(
				fmt.Sprintf("tracking id %s is already taken", dto.TrackingID), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing parcel with an optimistic concurrency check: the
// row must still be at the aggregate's version, and the write bumps it.
func (r *GormParcelRepository) Update(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = aggregate.Version() + 1

	result := r.db.WithContext(ctx).Model(&ParcelDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select("*").Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&ParcelDTO{}).
			Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("parcel", aggregate.ID().String())
		}
		return errs.NewVersionConflictError("parcel", aggregate.Version())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a parcel by ID.
func (r *GormParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ParcelDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("parcel", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByTrackingID retrieves a parcel by its public tracking identifier.
func (r *GormParcelRepository) GetByTrackingID(ctx context.Context, trackingID kernel.TrackingID) (*parcel.Parcel, error) {
	if err := trackingID.Validate(); err != nil {
		return nil, err
	}

	var dto ParcelDTO
	if err := r.db.WithContext(ctx).First(&dto, "tracking_id = ?", trackingID.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("parcel", trackingID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ExistsTrackingID reports whether the tracking identifier is taken.
func (r *GormParcelRepository) ExistsTrackingID(ctx context.Context, trackingID kernel.TrackingID) (bool, error) {
	if err := trackingID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&ParcelDTO{}).
		Where("tracking_id = ?", trackingID.String()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// AddTrackingUpdate appends one immutable history entry.
func (r *GormParcelRepository) AddTrackingUpdate(ctx context.Context, update *parcel.TrackingUpdate) error {
	if err := update.Validate(); err != nil {
		return err
	}

	dto := updateFromDomain(update)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetTrackingUpdates retrieves a parcel's history, oldest first. The seq
// column keeps same-timestamp entries in insertion order.
func (r *GormParcelRepository) GetTrackingUpdates(ctx context.Context, parcelID kernel.UUID) ([]*parcel.TrackingUpdate, error) {
	if err := parcelID.Validate(); err != nil {
		return nil, err
	}

	var dtos []TrackingUpdateDTO
	err := r.db.WithContext(ctx).
		Where("parcel_id = ?", parcelID.Bytes()).
		Order("seq").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	updates := make([]*parcel.TrackingUpdate, 0, len(dtos))
	for _, dto := range dtos {
		update, err := updateToDomain(dto)
		if err != nil {
			return nil, err
		}
		updates = append(updates, update)
	}

	return updates, nil
}

// Delete removes a parcel and its history in one pass. The eligibility check
// (pending only) belongs to the caller.
func (r *GormParcelRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).
		Delete(&TrackingUpdateDTO{}, "parcel_id = ?", id.Bytes()).Error; err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ParcelDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("parcel", id.String())
	}

	return nil
}
