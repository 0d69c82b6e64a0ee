package commands

import (
	"errors"

	"fasttrack/internal/core/domain/model/kernel"
	"fasttrack/internal/pkg/guard"
)

var ErrAddPickupParcelCommandIsNotConstructed = errors.New(
	"AddPickupParcelCommand must be created via NewAddPickupParcelCommand constructor",
)

// AddPickupParcelCommand represents a merchant adding one more parcel to a
// still-pending pickup request.
type AddPickupParcelCommand struct { //nolint:recvcheck //using for validation
	requestID  kernel.UUID
	merchantID kernel.UUID
	parcelID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewAddPickupParcelCommand creates a parcel attachment command.
func NewAddPickupParcelCommand(
	requestID kernel.UUID,
	merchantID kernel.UUID,
	parcelID kernel.UUID,
) (AddPickupParcelCommand, error) {
	cmd := AddPickupParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		requestID.Validate(),
		merchantID.Validate(),
		parcelID.Validate(),
	); err != nil {
		return AddPickupParcelCommand{}, err
	}

	cmd.requestID = requestID
	cmd.merchantID = merchantID
	cmd.parcelID = parcelID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddPickupParcelCommand) Validate() error {
	return c.guard.Validate(ErrAddPickupParcelCommandIsNotConstructed)
}

// RequestID returns the target pickup request.
func (c AddPickupParcelCommand) RequestID() kernel.UUID { return c.requestID }

// MerchantID returns the acting merchant's user ID.
func (c AddPickupParcelCommand) MerchantID() kernel.UUID { return c.merchantID }

// ParcelID returns the parcel to attach.
func (c AddPickupParcelCommand) ParcelID() kernel.UUID { return c.parcelID }
