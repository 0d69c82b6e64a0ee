package queries

import (
	"errors"

	"fasttrack/internal/core/domain/model/account"
	"fasttrack/internal/core/domain/model/kernel"
	"fasttrack/internal/pkg/guard"
)

var ErrGetPickupRequestParcelsQueryIsNotConstructed = errors.New(
	"GetPickupRequestParcelsQuery must be created via NewGetPickupRequestParcelsQuery constructor",
)

// GetPickupRequestParcelsQuery lists the parcels attached to one pickup
// request.
type GetPickupRequestParcelsQuery struct {
	requestID     kernel.UUID
	requesterID   kernel.UUID
	requesterRole account.Role

	guard guard.ConstructorGuard
}

// NewGetPickupRequestParcelsQuery creates an attached parcel listing query.
func NewGetPickupRequestParcelsQuery(
	requestID kernel.UUID,
	requesterID kernel.UUID,
	requesterRole account.Role,
) (GetPickupRequestParcelsQuery, error) {
	if err := errors.Join(
		requestID.Validate(),
		requesterID.Validate(),
		requesterRole.Validate(),
	); err != nil {
		return GetPickupRequestParcelsQuery{}, err
	}

	return GetPickupRequestParcelsQuery{
		requestID:     requestID,
		requesterID:   requesterID,
		requesterRole: requesterRole,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPickupRequestParcelsQuery) Validate() error {
	return q.guard.Validate(ErrGetPickupRequestParcelsQueryIsNotConstructed)
}

// RequestID returns the pickup request whose parcels are listed.
func (q GetPickupRequestParcelsQuery) RequestID() kernel.UUID { return q.requestID }

// RequesterID returns the requesting user's ID.
func (q GetPickupRequestParcelsQuery) RequesterID() kernel.UUID { return q.requesterID }

// RequesterRole returns the requesting user's role.
func (q GetPickupRequestParcelsQuery) RequesterRole() account.Role { return q.requesterRole }
