// Package ports defines the persistence contracts between the domain layer
// and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"fasttrack/internal/core/domain/model/kernel"
	"fasttrack/internal/core/domain/model/parcel"
)

// ParcelRepository defines the persistence contract for parcel aggregates
// and their tracking history.
type ParcelRepository interface {
	// Add persists a new parcel. Returns a ConflictError if the tracking ID
	// is already taken.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update persists changes to an existing parcel using optimistic
	// concurrency: the stored version must match the aggregate's version,
	// otherwise a VersionConflictError is returned.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	// Get retrieves a parcel by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// GetByTrackingID retrieves a parcel by its public tracking identifier.
	GetByTrackingID(ctx context.Context, trackingID kernel.TrackingID) (*parcel.Parcel, error)

	// ExistsTrackingID reports whether the tracking identifier is taken.
	// Used by the creation workflow to retry generation on collision.
	ExistsTrackingID(ctx context.Context, trackingID kernel.TrackingID) (bool, error)

	// AddTrackingUpdate appends a history entry for a parcel. Entries are
	// immutable once written.
	AddTrackingUpdate(ctx context.Context, update *parcel.TrackingUpdate) error

	// GetTrackingUpdates retrieves a parcel's history, oldest first.
	GetTrackingUpdates(ctx context.Context, parcelID kernel.UUID) ([]*parcel.TrackingUpdate, error)

	// Delete removes a parcel and its history. The caller must have checked
	// the parcel is still deletable.
	Delete(ctx context.Context, id kernel.UUID) error
}
