package queries

import (
	"errors"

	"fasttrack/internal/core/domain/model/account"
	"fasttrack/internal/core/domain/model/kernel"
	"fasttrack/internal/pkg/guard"
)

var ErrGetParcelQueryIsNotConstructed = errors.New(
	"GetParcelQuery must be created via NewGetParcelQuery constructor",
)

// GetParcelQuery fetches one parcel for the dashboard detail view. Merchants
// may only read their own parcels; admins may read any.
type GetParcelQuery struct {
	parcelID      kernel.UUID
	requesterID   kernel.UUID
	requesterRole account.Role

	guard guard.ConstructorGuard
}

// NewGetParcelQuery creates a parcel detail query.
func NewGetParcelQuery(
	parcelID kernel.UUID,
	requesterID kernel.UUID,
	requesterRole account.Role,
) (GetParcelQuery, error) {
	if err := errors.Join(
		parcelID.Validate(),
		requesterID.Validate(),
		requesterRole.Validate(),
	); err != nil {
		return GetParcelQuery{}, err
	}

	return GetParcelQuery{
		parcelID:      parcelID,
		requesterID:   requesterID,
		requesterRole: requesterRole,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetParcelQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelQueryIsNotConstructed)
}

// ParcelID returns the requested parcel's ID.
func (q GetParcelQuery) ParcelID() kernel.UUID { return q.parcelID }

// RequesterID returns the requesting user's ID.
func (q GetParcelQuery) RequesterID() kernel.UUID { return q.requesterID }

// RequesterRole returns the requesting user's role.
func (q GetParcelQuery) RequesterRole() account.Role { return q.requesterRole }
