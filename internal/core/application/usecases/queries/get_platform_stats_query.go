package queries

import (
	"errors"

	"fasttrack/internal/pkg/guard"
)

var ErrGetPlatformStatsQueryIsNotConstructed = errors.New(
	"GetPlatformStatsQuery must be created via NewGetPlatformStatsQuery constructor",
)

// GetPlatformStatsQuery aggregates platform-wide counters for the admin
// dashboard.
type GetPlatformStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPlatformStatsQuery creates a platform stats query.
func NewGetPlatformStatsQuery() GetPlatformStatsQuery {
	return GetPlatformStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPlatformStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetPlatformStatsQueryIsNotConstructed)
}

// GetPlatformStatsQueryResponse is the admin dashboard read model.
type GetPlatformStatsQueryResponse struct {
	TotalParcels          int
	ParcelsByStatus       map[string]int
	TotalMerchants        int
	ActiveCouriers        int
	PendingPickupRequests int
}
