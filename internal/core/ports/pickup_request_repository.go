package ports

import (
	"context"

	"fasttrack/internal/core/domain/model/kernel"
	"fasttrack/internal/core/domain/model/pickup"
)

// PickupRequestRepository defines the persistence contract for pickup
// request aggregates, including the parcel links behind the derived
// package count.
type PickupRequestRepository interface {
	// Add persists a new pickup request together with its parcel links.
	Add(ctx context.Context, aggregate *pickup.Request) error

	// Update persists changes to an existing pickup request, including any
	// newly attached parcel links.
	Update(ctx context.Context, aggregate *pickup.Request) error

	// Get retrieves a pickup request with its parcel links.
	Get(ctx context.Context, id kernel.UUID) (*pickup.Request, error)

	// HasOpenRequestForParcel reports whether the parcel is already attached
	// to a pending or approved request. Enforces the one-open-request rule.
	HasOpenRequestForParcel(ctx context.Context, parcelID kernel.UUID) (bool, error)
}
