package commands

import (
	"context"
	"fmt"
	"time"

	"fasttrack/internal/core/domain/model/kernel"
	"fasttrack/internal/core/domain/model/parcel"
	"fasttrack/internal/core/domain/model/pickup"
	"fasttrack/internal/core/ports"
	"fasttrack/internal/pkg/errs"
)

// CreatePickupRequestCommandHandler opens pickup requests. Every listed
// parcel must belong to the merchant, still be pending, and not sit in
// another open request; one bad parcel fails the whole command.
type CreatePickupRequestCommandHandler struct {
	uowFactory PickupUoWFactory
}

// NewCreatePickupRequestCommandHandler creates a handler for request creation.
func NewCreatePickupRequestCommandHandler(uowFactory PickupUoWFactory) CreatePickupRequestCommandHandler {
	return CreatePickupRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the creation command and returns the created request.
func (h *CreatePickupRequestCommandHandler) Handle(
	ctx context.Context,
	cmd CreatePickupRequestCommand,
) (*pickup.Request, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcelRepo := uow.ParcelRepository()
	pickupRepo := uow.PickupRequestRepository()

	for _, parcelID := range cmd.ParcelIDs() {
		if err := ensureParcelAttachable(ctx, parcelRepo, pickupRepo, parcelID, cmd.MerchantID()); err != nil {
			return nil, err
		}
	}

	request, err := pickup.NewRequest(
		cmd.RequestID(),
		cmd.MerchantID(),
		cmd.PickupAddress(),
		cmd.PickupDate(),
		cmd.TimeSlot(),
		cmd.SpecialInstructions(),
		cmd.ParcelIDs(),
		time.Now(),
	)
	if err != nil {
		return nil, err
	}

	if err = pickupRepo.Add(ctx, request); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return request, nil
}

// ensureParcelAttachable runs the three availability checks a parcel must
// pass before it can join a pickup request.
func ensureParcelAttachable(
	ctx context.Context,
	parcelRepo ports.ParcelRepository,
	pickupRepo ports.PickupRequestRepository,
	parcelID kernel.UUID,
	merchantID kernel.UUID,
) error {
	aggregate, err := parcelRepo.Get(ctx, parcelID)
	if err != nil {
		return err
	}

	if !aggregate.IsOwnedBy(merchantID) {
		return errs.NewForbiddenError(
			fmt.Sprintf("parcel %s does not belong to merchant %s", aggregate.TrackingID(), merchantID),
		)
	}

	if aggregate.Status() != parcel.StatusPending {
		return errs.NewConflictError(
			fmt.Sprintf("parcel %s is %s, only pending parcels can be picked up", aggregate.TrackingID(), aggregate.Status()),
		)
	}

	open, err := pickupRepo.HasOpenRequestForParcel(ctx, parcelID)
	if err != nil {
		return err
	}
	if open {
		return errs.NewConflictError(
			fmt.Sprintf("parcel %s is already in an open pickup request", aggregate.TrackingID()),
		)
	}

	return nil
}
