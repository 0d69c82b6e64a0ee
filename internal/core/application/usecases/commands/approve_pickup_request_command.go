package commands

import (
	"errors"

	"fasttrack/internal/core/domain/model/kernel"
	"fasttrack/internal/pkg/guard"
)

var ErrApprovePickupRequestCommandIsNotConstructed = errors.New(
	"ApprovePickupRequestCommand must be created via NewApprovePickupRequestCommand constructor",
)

// ApprovePickupRequestCommand represents an admin approving a pickup request
// and assigning the courier who will collect it.
type ApprovePickupRequestCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID
	courierID kernel.UUID
	adminID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewApprovePickupRequestCommand creates an approval command.
func NewApprovePickupRequestCommand(
	requestID kernel.UUID,
	courierID kernel.UUID,
	adminID kernel.UUID,
) (ApprovePickupRequestCommand, error) {
	cmd := ApprovePickupRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		requestID.Validate(),
		courierID.Validate(),
		adminID.Validate(),
	); err != nil {
		return ApprovePickupRequestCommand{}, err
	}

	cmd.requestID = requestID
	cmd.courierID = courierID
	cmd.adminID = adminID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApprovePickupRequestCommand) Validate() error {
	return c.guard.Validate(ErrApprovePickupRequestCommandIsNotConstructed)
}

// RequestID returns the pickup request to approve.
func (c ApprovePickupRequestCommand) RequestID() kernel.UUID { return c.requestID }

// CourierID returns the courier to assign.
func (c ApprovePickupRequestCommand) CourierID() kernel.UUID { return c.courierID }

// AdminID returns the deciding admin's user ID.
func (c ApprovePickupRequestCommand) AdminID() kernel.UUID { return c.adminID }
