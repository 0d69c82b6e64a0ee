package pickuprepo

import (
	"context"
	"errors"

	"fasttrack/internal/core/domain/model/kernel"
	"fasttrack/internal/core/domain/model/pickup"
	"fasttrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPickupRequestRepository implements PickupRequestRepository using GORM.
type GormPickupRequestRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPickupRequestRepository creates a new GORM pickup request repository.
func NewGormPickupRequestRepository(db *gorm.DB, tracker aggregateTracker) *GormPickupRequestRepository {
	return &GormPickupRequestRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new pickup request and its parcel links.
func (r *GormPickupRequestRepository) Add(ctx context.Context, aggregate *pickup.Request) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, links := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}
	if len(links) > 0 {
		if err := r.db.WithContext(ctx).Create(&links).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing pickup request. The parcel links are rewritten
// from the aggregate so newly attached parcels are persisted in order.
func (r *GormPickupRequestRepository) Update(ctx context.Context, aggregate *pickup.Request) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, links := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&PickupRequestDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("pickup request", aggregate.ID().String())
	}

	if err := r.db.WithContext(ctx).
		Delete(&PickupRequestParcelDTO{}, "pickup_request_id = ?", dto.ID).Error; err != nil {
		return err
	}
	if len(links) > 0 {
		if err := r.db.WithContext(ctx).Create(&links).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a pickup request with its parcel links in attachment order.
func (r *GormPickupRequestRepository) Get(ctx context.Context, id kernel.UUID) (*pickup.Request, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PickupRequestDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pickup request", id.String())
		}
		return nil, err
	}

	var links []PickupRequestParcelDTO
	err := r.db.WithContext(ctx).
		Where("pickup_request_id = ?", dto.ID).
		Order("position").
		Find(&links).Error
	if err != nil {
		return nil, err
	}

	return toDomain(dto, links)
}

// HasOpenRequestForParcel reports whether the parcel is already linked to a
// pending or approved request.
func (r *GormPickupRequestRepository) HasOpenRequestForParcel(ctx context.Context, parcelID kernel.UUID) (bool, error) {
	if err := parcelID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&PickupRequestParcelDTO{}).
		Joins("JOIN pickup_requests pr ON pr.id = pickup_request_parcels.pickup_request_id").
		Where("pickup_request_parcels.parcel_id = ?", parcelID.Bytes()).
		Where("pr.status IN ?", []string{
			pickup.StatusPending.String(),
			pickup.StatusApproved.String(),
		}).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
