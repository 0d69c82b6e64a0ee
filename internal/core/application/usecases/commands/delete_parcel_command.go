package commands

import (
	"errors"

	"fasttrack/internal/core/domain/model/account"
	"fasttrack/internal/core/domain/model/kernel"
	"fasttrack/internal/pkg/guard"
)

var ErrDeleteParcelCommandIsNotConstructed = errors.New(
	"DeleteParcelCommand must be created via NewDeleteParcelCommand constructor",
)

// DeleteParcelCommand represents a request to remove a parcel that has not
// entered the delivery network yet.
type DeleteParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID  kernel.UUID
	actorID   kernel.UUID
	actorRole account.Role

	guard guard.ConstructorGuard
}

// NewDeleteParcelCommand creates a parcel deletion command.
func NewDeleteParcelCommand(
	parcelID kernel.UUID,
	actorID kernel.UUID,
	actorRole account.Role,
) (DeleteParcelCommand, error) {
	cmd := DeleteParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		parcelID.Validate(),
		actorID.Validate(),
		actorRole.Validate(),
	); err != nil {
		return DeleteParcelCommand{}, err
	}

	cmd.parcelID = parcelID
	cmd.actorID = actorID
	cmd.actorRole = actorRole
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteParcelCommand) Validate() error {
	return c.guard.Validate(ErrDeleteParcelCommandIsNotConstructed)
}

// ParcelID returns the parcel to delete.
func (c DeleteParcelCommand) ParcelID() kernel.UUID { return c.parcelID }

// ActorID returns the acting user's ID.
func (c DeleteParcelCommand) ActorID() kernel.UUID { return c.actorID }

// ActorRole returns the acting user's role.
func (c DeleteParcelCommand) ActorRole() account.Role { return c.actorRole }
