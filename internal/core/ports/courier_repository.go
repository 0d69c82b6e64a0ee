package ports

import (
	"context"

	"fasttrack/internal/core/domain/model/courier"
	"fasttrack/internal/core/domain/model/kernel"
)

// CourierRepository defines the persistence contract for couriers.
type CourierRepository interface {
	// Add persists a new courier.
	Add(ctx context.Context, aggregate *courier.Courier) error

	// Update persists changes to an existing courier.
	Update(ctx context.Context, aggregate *courier.Courier) error

	// Get retrieves a courier by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)
}
