package commands

import (
	"errors"

	"fasttrack/internal/core/domain/model/account"
	"fasttrack/internal/core/domain/model/kernel"
	"fasttrack/internal/pkg/guard"
)

var ErrCancelPickupRequestCommandIsNotConstructed = errors.New(
	"CancelPickupRequestCommand must be created via NewCancelPickupRequestCommand constructor",
)

// CancelPickupRequestCommand represents withdrawing a still-pending pickup
// request. Merchants cancel their own requests; admins may cancel any.
type CancelPickupRequestCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID
	actorID   kernel.UUID
	actorRole account.Role

	guard guard.ConstructorGuard
}

// NewCancelPickupRequestCommand creates a cancellation command.
func NewCancelPickupRequestCommand(
	requestID kernel.UUID,
	actorID kernel.UUID,
	actorRole account.Role,
) (CancelPickupRequestCommand, error) {
	cmd := CancelPickupRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		requestID.Validate(),
		actorID.Validate(),
		actorRole.Validate(),
	); err != nil {
		return CancelPickupRequestCommand{}, err
	}

	cmd.requestID = requestID
	cmd.actorID = actorID
	cmd.actorRole = actorRole
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelPickupRequestCommand) Validate() error {
	return c.guard.Validate(ErrCancelPickupRequestCommandIsNotConstructed)
}

// RequestID returns the pickup request to cancel.
func (c CancelPickupRequestCommand) RequestID() kernel.UUID { return c.requestID }

// ActorID returns the acting user's ID.
func (c CancelPickupRequestCommand) ActorID() kernel.UUID { return c.actorID }

// ActorRole returns the acting user's role.
func (c CancelPickupRequestCommand) ActorRole() account.Role { return c.actorRole }
