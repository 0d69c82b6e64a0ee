package commands

import (
	"errors"

	"fasttrack/internal/core/domain/model/kernel"
	"fasttrack/internal/pkg/guard"
)

var ErrCompletePickupRequestCommandIsNotConstructed = errors.New(
	"CompletePickupRequestCommand must be created via NewCompletePickupRequestCommand constructor",
)

// CompletePickupRequestCommand represents an admin recording that the
// assigned courier collected an approved request.
type CompletePickupRequestCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID
	adminID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompletePickupRequestCommand creates a completion command.
func NewCompletePickupRequestCommand(
	requestID kernel.UUID,
	adminID kernel.UUID,
) (CompletePickupRequestCommand, error) {
	cmd := CompletePickupRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		requestID.Validate(),
		adminID.Validate(),
	); err != nil {
		return CompletePickupRequestCommand{}, err
	}

	cmd.requestID = requestID
	cmd.adminID = adminID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompletePickupRequestCommand) Validate() error {
	return c.guard.Validate(ErrCompletePickupRequestCommandIsNotConstructed)
}

// RequestID returns the pickup request to complete.
func (c CompletePickupRequestCommand) RequestID() kernel.UUID { return c.requestID }

// AdminID returns the recording admin's user ID.
func (c CompletePickupRequestCommand) AdminID() kernel.UUID { return c.adminID }
