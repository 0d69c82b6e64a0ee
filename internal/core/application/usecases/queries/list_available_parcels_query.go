package queries

import (
	"errors"

	"fasttrack/internal/core/domain/model/kernel"
	"fasttrack/internal/pkg/guard"
)

var ErrListAvailableParcelsQueryIsNotConstructed = errors.New(
	"ListAvailableParcelsQuery must be created via NewListAvailableParcelsQuery constructor",
)

// ListAvailableParcelsQuery lists a merchant's parcels that could join a new
// pickup request: pending, and not attached to any open request.
type ListAvailableParcelsQuery struct {
	merchantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewListAvailableParcelsQuery creates an availability listing query.
func NewListAvailableParcelsQuery(merchantID kernel.UUID) (ListAvailableParcelsQuery, error) {
	if err := merchantID.Validate(); err != nil {
		return ListAvailableParcelsQuery{}, err
	}

	return ListAvailableParcelsQuery{
		merchantID: merchantID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListAvailableParcelsQuery) Validate() error {
	return q.guard.Validate(ErrListAvailableParcelsQueryIsNotConstructed)
}

// MerchantID returns the merchant whose free parcels are listed.
func (q ListAvailableParcelsQuery) MerchantID() kernel.UUID { return q.merchantID }
