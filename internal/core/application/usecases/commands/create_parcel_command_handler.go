package commands

import (
	"context"
	"time"

	"fasttrack/internal/core/domain/model/kernel"
	"fasttrack/internal/core/domain/model/parcel"
	"fasttrack/internal/pkg/errs"
)

// maxTrackingIDAttempts bounds the collision retry loop when generating a
// public tracking identifier.
const maxTrackingIDAttempts = 5

// CreateParcelCommandHandler registers new parcels. It owns the tracking-ID
// generation loop and appends the initial pending tracking entry in the same
// transaction, so a parcel's history is never empty.
type CreateParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewCreateParcelCommandHandler creates a handler for parcel registration.
func NewCreateParcelCommandHandler(uowFactory ParcelUoWFactory) CreateParcelCommandHandler {
	return CreateParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the parcel creation command and returns the created
// parcel so callers can expose the generated tracking ID.
func (h *CreateParcelCommandHandler) Handle(ctx context.Context, cmd CreateParcelCommand) (*parcel.Parcel, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	recipient, err := parcel.NewRecipient(cmd.RecipientName(), cmd.RecipientPhone(), cmd.DeliveryAddress())
	if err != nil {
		return nil, err
	}

	pack, err := parcel.NewPackageInfo(cmd.PackageDescription(), cmd.WeightKg(), cmd.Dimensions())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcelRepo := uow.ParcelRepository()

	trackingID, err := generateTrackingID(ctx, parcelRepo)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	newParcel, err := parcel.NewParcel(cmd.ParcelID(), trackingID, cmd.SenderID(), recipient, pack, now)
	if err != nil {
		return nil, err
	}

	senderID := cmd.SenderID()
	initialUpdate, err := parcel.NewTrackingUpdate(
		kernel.NewUUID(),
		newParcel.ID(),
		parcel.StatusPending,
		"",
		"parcel registered",
		&senderID,
		now,
	)
	if err != nil {
		return nil, err
	}

	if err = parcelRepo.Add(ctx, newParcel); err != nil {
		return nil, err
	}

	if err = parcelRepo.AddTrackingUpdate(ctx, initialUpdate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newParcel, nil
}

// generateTrackingID draws fresh tracking IDs until one is unclaimed,
// giving up after maxTrackingIDAttempts collisions.
func generateTrackingID(ctx context.Context, repo trackingIDChecker) (kernel.TrackingID, error) {
	for attempt := 0; attempt < maxTrackingIDAttempts; attempt++ {
		trackingID := kernel.NewTrackingID()

		taken, err := repo.ExistsTrackingID(ctx, trackingID)
		if err != nil {
			return kernel.TrackingID{}, err
		}
		if !taken {
			return trackingID, nil
		}
	}

	return kernel.TrackingID{}, errs.NewResourceExhaustedError("tracking ID generation", maxTrackingIDAttempts)
}

type trackingIDChecker interface {
	ExistsTrackingID(ctx context.Context, trackingID kernel.TrackingID) (bool, error)
}
