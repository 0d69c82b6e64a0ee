package queries

import (
	"errors"

	"fasttrack/internal/core/domain/model/account"
	"fasttrack/internal/core/domain/model/kernel"
	"fasttrack/internal/pkg/guard"
)

var ErrGetPickupRequestQueryIsNotConstructed = errors.New(
	"GetPickupRequestQuery must be created via NewGetPickupRequestQuery constructor",
)

// GetPickupRequestQuery retrieves one pickup request for its merchant or an
// admin.
type GetPickupRequestQuery struct {
	requestID     kernel.UUID
	requesterID   kernel.UUID
	requesterRole account.Role

	guard guard.ConstructorGuard
}

// NewGetPickupRequestQuery creates a request detail query.
func NewGetPickupRequestQuery(
	requestID kernel.UUID,
	requesterID kernel.UUID,
	requesterRole account.Role,
) (GetPickupRequestQuery, error) {
	if err := errors.Join(
		requestID.Validate(),
		requesterID.Validate(),
		requesterRole.Validate(),
	); err != nil {
		return GetPickupRequestQuery{}, err
	}

	return GetPickupRequestQuery{
		requestID:     requestID,
		requesterID:   requesterID,
		requesterRole: requesterRole,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPickupRequestQuery) Validate() error {
	return q.guard.Validate(ErrGetPickupRequestQueryIsNotConstructed)
}

// RequestID returns the pickup request to fetch.
func (q GetPickupRequestQuery) RequestID() kernel.UUID { return q.requestID }

// RequesterID returns the requesting user's ID.
func (q GetPickupRequestQuery) RequesterID() kernel.UUID { return q.requesterID }

// RequesterRole returns the requesting user's role.
func (q GetPickupRequestQuery) RequesterRole() account.Role { return q.requesterRole }
