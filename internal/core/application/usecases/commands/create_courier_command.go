package commands

import (
	"errors"

	"fasttrack/internal/core/domain/model/kernel"
	"fasttrack/internal/pkg/errs"
	"fasttrack/internal/pkg/guard"
)

var ErrCreateCourierCommandIsNotConstructed = errors.New(
	"CreateCourierCommand must be created via NewCreateCourierCommand constructor",
)

// CreateCourierCommand represents an admin registering a new courier.
type CreateCourierCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID

	name  string
	phone string

	vehicleType   string
	vehicleNumber string
	coverageArea  string

	guard guard.ConstructorGuard
}

// NewCreateCourierCommand creates a courier registration command.
// Vehicle details are optional.
func NewCreateCourierCommand(
	courierID kernel.UUID,
	name, phone string,
	vehicleType, vehicleNumber, coverageArea string,
) (CreateCourierCommand, error) {
	cmd := CreateCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := courierID.Validate(); err != nil {
		return CreateCourierCommand{}, err
	}
	if name == "" {
		return CreateCourierCommand{}, errs.NewValueIsRequiredError("courierName")
	}
	if phone == "" {
		return CreateCourierCommand{}, errs.NewValueIsRequiredError("courierPhone")
	}

	cmd.courierID = courierID
	cmd.name = name
	cmd.phone = phone
	cmd.vehicleType = vehicleType
	cmd.vehicleNumber = vehicleNumber
	cmd.coverageArea = coverageArea
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCourierCommand) Validate() error {
	return c.guard.Validate(ErrCreateCourierCommandIsNotConstructed)
}

// CourierID returns the identifier for the new courier.
func (c CreateCourierCommand) CourierID() kernel.UUID { return c.courierID }

// Name returns the courier's full name.
func (c CreateCourierCommand) Name() string { return c.name }

// Phone returns the courier's phone number.
func (c CreateCourierCommand) Phone() string { return c.phone }

// VehicleType returns the optional vehicle type.
func (c CreateCourierCommand) VehicleType() string { return c.vehicleType }

// VehicleNumber returns the optional registration number.
func (c CreateCourierCommand) VehicleNumber() string { return c.vehicleNumber }

// CoverageArea returns the optional coverage area.
func (c CreateCourierCommand) CoverageArea() string { return c.coverageArea }
