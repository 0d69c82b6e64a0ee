// Package courierrepo persists the courier roster.
package courierrepo

import (
	"time"

	"fasttrack/internal/core/domain/model/courier"
	"fasttrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CourierDTO is the database row for a courier aggregate, with the vehicle
// value object flattened into columns.
type CourierDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string
	Phone         string
	VehicleType   string
	VehicleNumber string
	CoverageArea  string
	Status        string `gorm:"type:varchar(16);index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName overrides GORM's default naming to use "couriers".
func (CourierDTO) TableName() string {
	return "couriers"
}

func fromDomain(aggregate *courier.Courier) CourierDTO {
	return CourierDTO{
		ID:            aggregate.ID().Bytes(),
		Name:          aggregate.Name(),
		Phone:         aggregate.Phone(),
		VehicleType:   aggregate.Vehicle().Type(),
		VehicleNumber: aggregate.Vehicle().Number(),
		CoverageArea:  aggregate.Vehicle().CoverageArea(),
		Status:        aggregate.Status().String(),
		CreatedAt:     aggregate.CreatedAt(),
		UpdatedAt:     aggregate.UpdatedAt(),
	}
}

func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := courier.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	vehicle := courier.NewVehicle(dto.VehicleType, dto.VehicleNumber, dto.CoverageArea)

	return courier.RestoreCourier(id, dto.Name, dto.Phone, vehicle, status, dto.CreatedAt, dto.UpdatedAt)
}
