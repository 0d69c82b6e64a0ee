package commands

import (
	"errors"

	"fasttrack/internal/core/domain/model/kernel"
	"fasttrack/internal/pkg/errs"
	"fasttrack/internal/pkg/guard"
)

var ErrCreateParcelCommandIsNotConstructed = errors.New(
	"CreateParcelCommand must be created via NewCreateParcelCommand constructor",
)

// CreateParcelCommand represents a merchant's request to register a new
// parcel. The tracking ID is not part of the command: the handler generates
// it, so clients can never choose their own.
type CreateParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID
	senderID kernel.UUID

	recipientName   string
	recipientPhone  string
	deliveryAddress string

	packageDescription string
	weightKg           float64
	dimensions         string

	guard guard.ConstructorGuard
}

// NewCreateParcelCommand creates a command to register a parcel for the
// given sender. Recipient name, phone and delivery address are required;
// package metadata is optional but the weight must not be negative.
func NewCreateParcelCommand(
	parcelID kernel.UUID,
	senderID kernel.UUID,
	recipientName, recipientPhone, deliveryAddress string,
	packageDescription string,
	weightKg float64,
	dimensions string,
) (CreateParcelCommand, error) {
	cmd := CreateParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setSenderID(senderID),
		cmd.setRecipient(recipientName, recipientPhone, deliveryAddress),
		cmd.setPackage(packageDescription, weightKg, dimensions),
	); err != nil {
		return CreateParcelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateParcelCommand) Validate() error {
	return c.guard.Validate(ErrCreateParcelCommandIsNotConstructed)
}

// ParcelID returns the identifier for the new parcel.
func (c CreateParcelCommand) ParcelID() kernel.UUID { return c.parcelID }

// SenderID returns the owning merchant's user ID.
func (c CreateParcelCommand) SenderID() kernel.UUID { return c.senderID }

// RecipientName returns the recipient's full name.
func (c CreateParcelCommand) RecipientName() string { return c.recipientName }

// RecipientPhone returns the recipient's phone number.
func (c CreateParcelCommand) RecipientPhone() string { return c.recipientPhone }

// DeliveryAddress returns the destination address.
func (c CreateParcelCommand) DeliveryAddress() string { return c.deliveryAddress }

// PackageDescription returns the optional package description.
func (c CreateParcelCommand) PackageDescription() string { return c.packageDescription }

// WeightKg returns the declared weight in kilograms, zero when unknown.
func (c CreateParcelCommand) WeightKg() float64 { return c.weightKg }

// Dimensions returns the free-form dimensions string.
func (c CreateParcelCommand) Dimensions() string { return c.dimensions }

func (c *CreateParcelCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *CreateParcelCommand) setSenderID(senderID kernel.UUID) error {
	if err := senderID.Validate(); err != nil {
		return err
	}

	c.senderID = senderID
	return nil
}

func (c *CreateParcelCommand) setRecipient(name, phone, address string) error {
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

func (c *CreateParcelCommand) setPackage(description string, weightKg float64, dimensions string) error {
	if weightKg < 0 {
		return errs.NewValueIsInvalidError("weightKg")
	}

	c.packageDescription = description
	c.weightKg = weightKg
	c.dimensions = dimensions
	return nil
}
