package queries

import (
	"errors"

	"fasttrack/internal/core/domain/model/kernel"
	"fasttrack/internal/pkg/guard"
)

var ErrGetTrackingDriftQueryIsNotConstructed = errors.New(
	"GetTrackingDriftQuery must be created via NewGetTrackingDriftQuery constructor",
)

// GetTrackingDriftQuery finds parcels whose stored status disagrees with
// their latest tracking entry. Command handlers write both in one
// transaction, so any hit means corrupted data; the audit job runs this
// periodically and alarms on results.
type GetTrackingDriftQuery struct {
	guard guard.ConstructorGuard
}

// NewGetTrackingDriftQuery creates a drift audit query.
func NewGetTrackingDriftQuery() GetTrackingDriftQuery {
	return GetTrackingDriftQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetTrackingDriftQuery) Validate() error {
	return q.guard.Validate(ErrGetTrackingDriftQueryIsNotConstructed)
}

// GetTrackingDriftQueryResponse is one drifted parcel.
type GetTrackingDriftQueryResponse struct {
	ParcelID     kernel.UUID
	TrackingID   string
	ParcelStatus string
	LatestStatus string
}
