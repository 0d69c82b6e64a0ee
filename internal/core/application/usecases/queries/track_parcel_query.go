// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"fasttrack/internal/core/domain/model/kernel"
	"fasttrack/internal/pkg/guard"
)

var ErrTrackParcelQueryIsNotConstructed = errors.New(
	"TrackParcelQuery must be created via NewTrackParcelQuery constructor",
)

// TrackParcelQuery is the public, unauthenticated tracking lookup. Anyone
// holding a tracking ID may run it, so the response is a deliberately
// limited projection: no sender, no addresses, no phone numbers.
type TrackParcelQuery struct {
	trackingID kernel.TrackingID

	guard guard.ConstructorGuard
}

// NewTrackParcelQuery creates a tracking lookup for the given public ID.
func NewTrackParcelQuery(trackingID kernel.TrackingID) (TrackParcelQuery, error) {
	if err := trackingID.Validate(); err != nil {
		return TrackParcelQuery{}, err
	}

	return TrackParcelQuery{
		trackingID: trackingID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackParcelQuery) Validate() error {
	return q.guard.Validate(ErrTrackParcelQueryIsNotConstructed)
}

// TrackingID returns the public identifier to look up.
func (q TrackParcelQuery) TrackingID() kernel.TrackingID { return q.trackingID }

// TrackParcelQueryResponse is the public projection of a parcel.
type TrackParcelQueryResponse struct {
	TrackingID    string
	Status        string
	RecipientName string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
