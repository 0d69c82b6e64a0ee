package commands

import (
	"errors"

	"fasttrack/internal/core/domain/model/kernel"
	"fasttrack/internal/pkg/errs"
	"fasttrack/internal/pkg/guard"
)

var ErrRejectPickupRequestCommandIsNotConstructed = errors.New(
	"RejectPickupRequestCommand must be created via NewRejectPickupRequestCommand constructor",
)

// RejectPickupRequestCommand represents an admin declining a pickup request.
// The notes are mandatory so merchants always learn why.
type RejectPickupRequestCommand struct { //nolint:recvcheck //using for validation
	requestID  kernel.UUID
	adminID    kernel.UUID
	adminNotes string

	guard guard.ConstructorGuard
}

// NewRejectPickupRequestCommand creates a rejection command.
func NewRejectPickupRequestCommand(
	requestID kernel.UUID,
	adminID kernel.UUID,
	adminNotes string,
) (RejectPickupRequestCommand, error) {
	cmd := RejectPickupRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		requestID.Validate(),
		adminID.Validate(),
	); err != nil {
		return RejectPickupRequestCommand{}, err
	}
	if adminNotes == "" {
		return RejectPickupRequestCommand{}, errs.NewValueIsRequiredError("adminNotes")
	}

	cmd.requestID = requestID
	cmd.adminID = adminID
	cmd.adminNotes = adminNotes
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectPickupRequestCommand) Validate() error {
	return c.guard.Validate(ErrRejectPickupRequestCommandIsNotConstructed)
}

// RequestID returns the pickup request to reject.
func (c RejectPickupRequestCommand) RequestID() kernel.UUID { return c.requestID }

// AdminID returns the deciding admin's user ID.
func (c RejectPickupRequestCommand) AdminID() kernel.UUID { return c.adminID }

// AdminNotes returns the mandatory rejection reason.
func (c RejectPickupRequestCommand) AdminNotes() string { return c.adminNotes }
