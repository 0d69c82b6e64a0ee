// Package parcelrepo persists parcel aggregates and their tracking history.
// Statuses are stored in wire format so that read-side queries and reports
// can filter on them without a mapping table.
package parcelrepo

import (
	"time"

	"fasttrack/internal/core/domain/model/kernel"
	"fasttrack/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// ParcelDTO is the database row for a parcel aggregate. The version column
// backs the optimistic concurrency check in Update.
type ParcelDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	TrackingID         string    `gorm:"type:varchar(16);uniqueIndex"`
	SenderID           uuid.UUID `gorm:"type:uuid;index"`
	RecipientName      string
	RecipientPhone     string
	DeliveryAddress    string
	PackageDescription string
	WeightKg           float64
	Dimensions         string
	Status             string `gorm:"type:varchar(16);index"`
	StatusNotes        string
	Version            int
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName overrides GORM's default naming to use "parcels".
func (ParcelDTO) TableName() string {
	return "parcels"
}

// TrackingUpdateDTO is the database row for one immutable history entry.
// ActorID is null for system-generated entries. Seq is assigned by the
// database and orders entries written in the same transaction with the same
// timestamp, so "latest update" is always well defined.
type TrackingUpdateDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Seq       int64      `gorm:"autoIncrement;uniqueIndex"`
	ParcelID  uuid.UUID  `gorm:"type:uuid;index"`
	Status    string     `gorm:"type:varchar(16)"`
	Location  string
	Notes     string
	ActorID   *uuid.UUID `gorm:"type:uuid"`
	CreatedAt time.Time
}

// TableName overrides GORM's default naming to use "tracking_updates".
func (TrackingUpdateDTO) TableName() string {
	return "tracking_updates"
}

func fromDomain(aggregate *parcel.Parcel) ParcelDTO {
	return ParcelDTO{
		ID:                 aggregate.ID().Bytes(),
		TrackingID:         aggregate.TrackingID().String(),
		SenderID:           aggregate.SenderID().Bytes(),
		RecipientName:      aggregate.Recipient().Name(),
		RecipientPhone:     aggregate.Recipient().Phone(),
		DeliveryAddress:    aggregate.Recipient().Address(),
		PackageDescription: aggregate.PackageInfo().Description(),
		WeightKg:           aggregate.PackageInfo().WeightKg(),
		Dimensions:         aggregate.PackageInfo().Dimensions(),
		Status:             aggregate.Status().String(),
		StatusNotes:        aggregate.StatusNotes(),
		Version:            aggregate.Version(),
		CreatedAt:          aggregate.CreatedAt(),
		UpdatedAt:          aggregate.UpdatedAt(),
	}
}

func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	trackingID, err := kernel.TrackingIDFromString(dto.TrackingID)
	if err != nil {
		return nil, err
	}

	senderID, err := kernel.UUIDFromBytes(dto.SenderID[:])
	if err != nil {
		return nil, err
	}

	recipient, err := parcel.NewRecipient(dto.RecipientName, dto.RecipientPhone, dto.DeliveryAddress)
	if err != nil {
		return nil, err
	}

	pack, err := parcel.NewPackageInfo(dto.PackageDescription, dto.WeightKg, dto.Dimensions)
	if err != nil {
		return nil, err
	}

	status, err := parcel.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return parcel.RestoreParcel(
		id, trackingID, senderID, recipient, pack,
		status, dto.StatusNotes, dto.Version,
		dto.CreatedAt, dto.UpdatedAt,
	)
}

func updateFromDomain(update *parcel.TrackingUpdate) TrackingUpdateDTO {
	var actorID *uuid.UUID
	if id := update.ActorID(); id != nil {
		raw := id.Bytes()
		actorID = &raw
	}

	return TrackingUpdateDTO{
		ID:        update.ID().Bytes(),
		ParcelID:  update.ParcelID().Bytes(),
		Status:    update.Status().String(),
		Location:  update.Location(),
		Notes:     update.Notes(),
		ActorID:   actorID,
		CreatedAt: update.CreatedAt(),
	}
}

func updateToDomain(dto TrackingUpdateDTO) (*parcel.TrackingUpdate, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	parcelID, err := kernel.UUIDFromBytes(dto.ParcelID[:])
	if err != nil {
		return nil, err
	}

	status, err := parcel.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	var actorID *kernel.UUID
	if dto.ActorID != nil {
		aID, actorErr := kernel.UUIDFromBytes((*dto.ActorID)[:])
		if actorErr != nil {
			return nil, actorErr
		}
		actorID = &aID
	}

	return parcel.RestoreTrackingUpdate(
		id, parcelID, status, dto.Location, dto.Notes, actorID, dto.CreatedAt,
	)
}
