package commands

import (
	"errors"

	"fasttrack/internal/core/domain/model/account"
	"fasttrack/internal/core/domain/model/kernel"
	"fasttrack/internal/core/domain/model/parcel"
	"fasttrack/internal/pkg/guard"
)

var ErrUpdateParcelStatusCommandIsNotConstructed = errors.New(
	"UpdateParcelStatusCommand must be created via NewUpdateParcelStatusCommand constructor",
)

// UpdateParcelStatusCommand represents a request to move a parcel through
// its lifecycle. The acting user and role travel with the command: admins
// may apply any legal transition, merchants may only cancel their own
// pending parcels.
type UpdateParcelStatusCommand struct { //nolint:recvcheck //using for validation
	parcelID  kernel.UUID
	actorID   kernel.UUID
	actorRole account.Role

	nextStatus parcel.Status
	notes      string
	location   string

	guard guard.ConstructorGuard
}

// NewUpdateParcelStatusCommand creates a status update command.
// Notes and location are optional context recorded on the tracking entry.
func NewUpdateParcelStatusCommand(
	parcelID kernel.UUID,
	actorID kernel.UUID,
	actorRole account.Role,
	nextStatus parcel.Status,
	notes string,
	location string,
) (UpdateParcelStatusCommand, error) {
	cmd := UpdateParcelStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setActor(actorID, actorRole),
		cmd.setNextStatus(nextStatus),
	); err != nil {
		return UpdateParcelStatusCommand{}, err
	}

	cmd.notes = notes
	cmd.location = location
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateParcelStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateParcelStatusCommandIsNotConstructed)
}

// ParcelID returns the parcel to update.
func (c UpdateParcelStatusCommand) ParcelID() kernel.UUID { return c.parcelID }

// ActorID returns the acting user's ID.
func (c UpdateParcelStatusCommand) ActorID() kernel.UUID { return c.actorID }

// ActorRole returns the acting user's role.
func (c UpdateParcelStatusCommand) ActorRole() account.Role { return c.actorRole }

// NextStatus returns the requested status.
func (c UpdateParcelStatusCommand) NextStatus() parcel.Status { return c.nextStatus }

// Notes returns the optional notes for the tracking entry.
func (c UpdateParcelStatusCommand) Notes() string { return c.notes }

// Location returns the optional location for the tracking entry.
func (c UpdateParcelStatusCommand) Location() string { return c.location }

func (c *UpdateParcelStatusCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *UpdateParcelStatusCommand) setActor(actorID kernel.UUID, actorRole account.Role) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	if err := actorRole.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	c.actorRole = actorRole
	return nil
}

func (c *UpdateParcelStatusCommand) setNextStatus(nextStatus parcel.Status) error {
	if err := nextStatus.Validate(); err != nil {
		return err
	}

	c.nextStatus = nextStatus
	return nil
}
