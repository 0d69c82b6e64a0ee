package courier

import (
	"errors"
	"fmt"
	"time"

	"fasttrack/internal/core/domain/model/kernel"
	"fasttrack/internal/pkg/errs"
)

var (
	// ErrCourierIsNotConstructed is returned when a Courier instance was not
	// created through NewCourier or RestoreCourier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier or RestoreCourier")
)

// Status is the courier availability flag.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusActive means the courier can receive assignments.
	StatusActive

	// StatusInactive means the courier is off duty or has left.
	StatusInactive
)

var statusNames = map[Status]string{
	StatusUnknown:  "unknown",
	StatusActive:   "active",
	StatusInactive: "inactive",
}

// ParseStatus converts a wire-format name into a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range statusNames {
		if status != StatusUnknown && name == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a courier status", s),
	)
}

// String returns the wire-format name of the status.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

// Validate checks that the Status is active or inactive.
func (s Status) Validate() error {
	if s != StatusActive && s != StatusInactive {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid courier status", s),
		)
	}
	return nil
}

// Vehicle is the courier's transport metadata. All fields are optional.
type Vehicle struct {
	vehicleType   string
	vehicleNumber string
	coverageArea  string
}

// NewVehicle creates vehicle metadata.
func NewVehicle(vehicleType, vehicleNumber, coverageArea string) Vehicle {
	return Vehicle{
		vehicleType:   vehicleType,
		vehicleNumber: vehicleNumber,
		coverageArea:  coverageArea,
	}
}

// Type returns the vehicle type, e.g. "motorbike".
func (v Vehicle) Type() string { return v.vehicleType }

// Number returns the registration number.
func (v Vehicle) Number() string { return v.vehicleNumber }

// CoverageArea returns the area the courier serves.
func (v Vehicle) CoverageArea() string { return v.coverageArea }

// Courier is a delivery agent referenced by approved pickup requests. New
// couriers start active; only active couriers may be assigned.
type Courier struct {
	id      kernel.UUID
	name    string
	phone   string
	vehicle Vehicle
	status  Status

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewCourier creates an active courier. Name and phone are required.
func NewCourier(id kernel.UUID, name, phone string, vehicle Vehicle, now time.Time) (*Courier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("courierName")
	}
	if phone == "" {
		return nil, errs.NewValueIsRequiredError("courierPhone")
	}

	now = now.UTC()
	return &Courier{
		id:            id,
		name:          name,
		phone:         phone,
		vehicle:       vehicle,
		status:        StatusActive,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreCourier reconstructs a courier from persistence.
func RestoreCourier(
	id kernel.UUID,
	name, phone string,
	vehicle Vehicle,
	status Status,
	createdAt, updatedAt time.Time,
) (*Courier, error) {
	if err := errors.Join(
		id.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("courierName")
	}

	return &Courier{
		id:            id,
		name:          name,
		phone:         phone,
		vehicle:       vehicle,
		status:        status,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Courier was created through a constructor.
func (c *Courier) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCourierIsNotConstructed
	}
	return nil
}

// ID returns the courier identifier.
func (c *Courier) ID() kernel.UUID { return c.id }

// Name returns the courier's full name.
func (c *Courier) Name() string { return c.name }

// Phone returns the courier's phone number.
func (c *Courier) Phone() string { return c.phone }

// Vehicle returns the transport metadata.
func (c *Courier) Vehicle() Vehicle { return c.vehicle }

// Status returns the availability status.
func (c *Courier) Status() Status { return c.status }

// CreatedAt returns the creation timestamp.
func (c *Courier) CreatedAt() time.Time { return c.createdAt }

// UpdatedAt returns the last modification timestamp.
func (c *Courier) UpdatedAt() time.Time { return c.updatedAt }

// IsActive reports whether the courier can receive assignments.
func (c *Courier) IsActive() bool { return c.status == StatusActive }

// Deactivate takes the courier off duty. Existing assignments are unaffected.
func (c *Courier) Deactivate(now time.Time) {
	c.status = StatusInactive
	c.updatedAt = now.UTC()
}

// Activate puts the courier back on duty.
func (c *Courier) Activate(now time.Time) {
	c.status = StatusActive
	c.updatedAt = now.UTC()
}
