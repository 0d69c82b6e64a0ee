package commands

import (
	"errors"

	"fasttrack/internal/core/domain/model/account"
	"fasttrack/internal/core/domain/model/kernel"
	"fasttrack/internal/pkg/errs"
	"fasttrack/internal/pkg/guard"
)

var ErrUpdateParcelCommandIsNotConstructed = errors.New(
	"UpdateParcelCommand must be created via NewUpdateParcelCommand constructor",
)

// UpdateParcelCommand represents a request to edit a parcel's recipient
// details and package metadata. Status and tracking ID are never editable
// through this command.
type UpdateParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID  kernel.UUID
	actorID   kernel.UUID
	actorRole account.Role

	recipientName   string
	recipientPhone  string
	deliveryAddress string

	packageDescription string
	weightKg           float64
	dimensions         string

	guard guard.ConstructorGuard
}

// NewUpdateParcelCommand creates a parcel edit command. The same field rules
// as at creation apply: recipient details are required, weight must not be
// negative.
func NewUpdateParcelCommand(
	parcelID kernel.UUID,
	actorID kernel.UUID,
	actorRole account.Role,
	recipientName, recipientPhone, deliveryAddress string,
	packageDescription string,
	weightKg float64,
	dimensions string,
) (UpdateParcelCommand, error) {
	cmd := UpdateParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		parcelID.Validate(),
		actorID.Validate(),
		actorRole.Validate(),
		cmd.setRecipient(recipientName, recipientPhone, deliveryAddress),
		cmd.setPackage(packageDescription, weightKg, dimensions),
	); err != nil {
		return UpdateParcelCommand{}, err
	}

	cmd.parcelID = parcelID
	cmd.actorID = actorID
	cmd.actorRole = actorRole
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateParcelCommand) Validate() error {
	return c.guard.Validate(ErrUpdateParcelCommandIsNotConstructed)
}

// ParcelID returns the parcel to edit.
func (c UpdateParcelCommand) ParcelID() kernel.UUID { return c.parcelID }

// ActorID returns the acting user's ID.
func (c UpdateParcelCommand) ActorID() kernel.UUID { return c.actorID }

// ActorRole returns the acting user's role.
func (c UpdateParcelCommand) ActorRole() account.Role { return c.actorRole }

// RecipientName returns the new recipient name.
func (c UpdateParcelCommand) RecipientName() string { return c.recipientName }

// RecipientPhone returns the new recipient phone number.
func (c UpdateParcelCommand) RecipientPhone() string { return c.recipientPhone }

// DeliveryAddress returns the new destination address.
func (c UpdateParcelCommand) DeliveryAddress() string { return c.deliveryAddress }

// PackageDescription returns the new package description.
func (c UpdateParcelCommand) PackageDescription() string { return c.packageDescription }

// WeightKg returns the new declared weight in kilograms.
func (c UpdateParcelCommand) WeightKg() float64 { return c.weightKg }

// Dimensions returns the new free-form dimensions string.
func (c UpdateParcelCommand) Dimensions() string { return c.dimensions }

func (c *UpdateParcelCommand) setRecipient(name, phone, address string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("recipientName")
	}
	if phone == "" {
		return errs.NewValueIsRequiredError("recipientPhone")
	}
	if address == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}

	c.recipientName = name
	c.recipientPhone = phone
	c.deliveryAddress = address
	return nil
}

func (c *UpdateParcelCommand) setPackage(description string, weightKg float64, dimensions string) error {
	if weightKg < 0 {
		return errs.NewValueIsInvalidError("weightKg")
	}

	c.packageDescription = description
	c.weightKg = weightKg
	c.dimensions = dimensions
	return nil
}
