// Package pickuprepo persists pickup request aggregates together with their
// parcel links. The links live in a junction table ordered by position, so
// the derived package count and attachment order survive a round trip.
package pickuprepo

import (
	"time"

	"fasttrack/internal/core/domain/model/kernel"
	"fasttrack/internal/core/domain/model/pickup"

	"github.com/google/uuid"
)

// PickupRequestDTO is the database row for a pickup request aggregate.
// CourierID stays null until an admin approves the request.
type PickupRequestDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	MerchantID          uuid.UUID `gorm:"type:uuid;index"`
	PickupAddress       string
	PickupDate          time.Time
	TimeSlot            string
	SpecialInstructions string
	Status              string     `gorm:"type:varchar(16);index"`
	CourierID           *uuid.UUID `gorm:"type:uuid"`
	AdminNotes          string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName overrides GORM's default naming to use "pickup_requests".
func (PickupRequestDTO) TableName() string {
	return "pickup_requests"
}

// PickupRequestParcelDTO links one parcel to a request. Position preserves
// attachment order.
type PickupRequestParcelDTO struct {
	PickupRequestID uuid.UUID `gorm:"type:uuid;primaryKey"`
	ParcelID        uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	Position        int
}

// TableName overrides GORM's default naming to use "pickup_request_parcels".
func (PickupRequestParcelDTO) TableName() string {
	return "pickup_request_parcels"
}

func fromDomain(aggregate *pickup.Request) (PickupRequestDTO, []PickupRequestParcelDTO) {
	var courierID *uuid.UUID
	if id := aggregate.CourierID(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	dto := PickupRequestDTO{
		ID:                  aggregate.ID().Bytes(),
		MerchantID:          aggregate.MerchantID().Bytes(),
		PickupAddress:       aggregate.PickupAddress(),
		PickupDate:          aggregate.PickupDate(),
		TimeSlot:            aggregate.TimeSlot(),
		SpecialInstructions: aggregate.SpecialInstructions(),
		Status:              aggregate.Status().String(),
		CourierID:           courierID,
		AdminNotes:          aggregate.AdminNotes(),
		CreatedAt:           aggregate.CreatedAt(),
		UpdatedAt:           aggregate.UpdatedAt(),
	}

	parcelIDs := aggregate.ParcelIDs()
	links := make([]PickupRequestParcelDTO, 0, len(parcelIDs))
	for i, parcelID := range parcelIDs {
		links = append(links, PickupRequestParcelDTO{
			PickupRequestID: dto.ID,
			ParcelID:        parcelID.Bytes(),
			Position:        i,
		})
	}

	return dto, links
}

func toDomain(dto PickupRequestDTO, links []PickupRequestParcelDTO) (*pickup.Request, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	merchantID, err := kernel.UUIDFromBytes(dto.MerchantID[:])
	if err != nil {
		return nil, err
	}

	status, err := pickup.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}
		courierID = &cID
	}

	parcelIDs := make([]kernel.UUID, 0, len(links))
	for _, link := range links {
		parcelID, linkErr := kernel.UUIDFromBytes(link.ParcelID[:])
		if linkErr != nil {
			return nil, linkErr
		}
		parcelIDs = append(parcelIDs, parcelID)
	}

	return pickup.RestoreRequest(
		id, merchantID,
		dto.PickupAddress, dto.PickupDate, dto.TimeSlot, dto.SpecialInstructions,
		status, courierID, dto.AdminNotes, parcelIDs,
		dto.CreatedAt, dto.UpdatedAt,
	)
}
