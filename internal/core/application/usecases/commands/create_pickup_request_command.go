package commands

import (
	"errors"
	"time"

	"fasttrack/internal/core/domain/model/kernel"
	"fasttrack/internal/pkg/errs"
	"fasttrack/internal/pkg/guard"
)

var ErrCreatePickupRequestCommandIsNotConstructed = errors.New(
	"CreatePickupRequestCommand must be created via NewCreatePickupRequestCommand constructor",
)

// CreatePickupRequestCommand represents a merchant's request to have a batch
// of pending parcels collected.
type CreatePickupRequestCommand struct { //nolint:recvcheck //using for validation
	requestID  kernel.UUID
	merchantID kernel.UUID

	pickupAddress       string
	pickupDate          time.Time
	timeSlot            string
	specialInstructions string
	parcelIDs           []kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreatePickupRequestCommand creates a pickup request command. Deeper
// validation (date policy, duplicates) happens in the aggregate constructor;
// here only the identifiers and required fields are checked.
func NewCreatePickupRequestCommand(
	requestID kernel.UUID,
	merchantID kernel.UUID,
	pickupAddress string,
	pickupDate time.Time,
	timeSlot string,
	specialInstructions string,
	parcelIDs []kernel.UUID,
) (CreatePickupRequestCommand, error) {
	cmd := CreatePickupRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		requestID.Validate(),
		merchantID.Validate(),
	); err != nil {
		return CreatePickupRequestCommand{}, err
	}
	if pickupAddress == "" {
		return CreatePickupRequestCommand{}, errs.NewValueIsRequiredError("pickupAddress")
	}
	if len(parcelIDs) == 0 {
		return CreatePickupRequestCommand{}, errs.NewValueIsRequiredError("parcelIds")
	}

	cmd.requestID = requestID
	cmd.merchantID = merchantID
	cmd.pickupAddress = pickupAddress
	cmd.pickupDate = pickupDate
	cmd.timeSlot = timeSlot
	cmd.specialInstructions = specialInstructions
	cmd.parcelIDs = append([]kernel.UUID(nil), parcelIDs...)
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePickupRequestCommand) Validate() error {
	return c.guard.Validate(ErrCreatePickupRequestCommandIsNotConstructed)
}

// RequestID returns the identifier for the new request.
func (c CreatePickupRequestCommand) RequestID() kernel.UUID { return c.requestID }

// MerchantID returns the requesting merchant's user ID.
func (c CreatePickupRequestCommand) MerchantID() kernel.UUID { return c.merchantID }

// PickupAddress returns the collection address.
func (c CreatePickupRequestCommand) PickupAddress() string { return c.pickupAddress }

// PickupDate returns the requested collection date.
func (c CreatePickupRequestCommand) PickupDate() time.Time { return c.pickupDate }

// TimeSlot returns the optional collection window.
func (c CreatePickupRequestCommand) TimeSlot() string { return c.timeSlot }

// SpecialInstructions returns the optional courier instructions.
func (c CreatePickupRequestCommand) SpecialInstructions() string { return c.specialInstructions }

// ParcelIDs returns a copy of the parcels to attach.
func (c CreatePickupRequestCommand) ParcelIDs() []kernel.UUID {
	return append([]kernel.UUID(nil), c.parcelIDs...)
}
