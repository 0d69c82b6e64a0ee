package queries

import (
	"errors"
	"time"

	"fasttrack/internal/core/domain/model/account"
	"fasttrack/internal/core/domain/model/kernel"
	"fasttrack/internal/pkg/guard"
)

var ErrGetTrackingUpdatesQueryIsNotConstructed = errors.New(
	"GetTrackingUpdatesQuery must be created via NewGetTrackingUpdatesQuery constructor",
)

// GetTrackingUpdatesQuery retrieves a parcel's full status history for its
// owner or an admin.
type GetTrackingUpdatesQuery struct {
	parcelID      kernel.UUID
	requesterID   kernel.UUID
	requesterRole account.Role

	guard guard.ConstructorGuard
}

// NewGetTrackingUpdatesQuery creates a history query.
func NewGetTrackingUpdatesQuery(
	parcelID kernel.UUID,
	requesterID kernel.UUID,
	requesterRole account.Role,
) (GetTrackingUpdatesQuery, error) {
	if err := errors.Join(
		parcelID.Validate(),
		requesterID.Validate(),
		requesterRole.Validate(),
	); err != nil {
		return GetTrackingUpdatesQuery{}, err
	}

	return GetTrackingUpdatesQuery{
		parcelID:      parcelID,
		requesterID:   requesterID,
		requesterRole: requesterRole,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTrackingUpdatesQuery) Validate() error {
	return q.guard.Validate(ErrGetTrackingUpdatesQueryIsNotConstructed)
}

// ParcelID returns the parcel whose history is requested.
func (q GetTrackingUpdatesQuery) ParcelID() kernel.UUID { return q.parcelID }

// RequesterID returns the requesting user's ID.
func (q GetTrackingUpdatesQuery) RequesterID() kernel.UUID { return q.requesterID }

// RequesterRole returns the requesting user's role.
func (q GetTrackingUpdatesQuery) RequesterRole() account.Role { return q.requesterRole }

// GetTrackingUpdatesQueryResponse is one history entry, oldest first.
type GetTrackingUpdatesQueryResponse struct {
	ID        kernel.UUID
	Status    string
	Location  string
	Notes     string
	CreatedAt time.Time
}
