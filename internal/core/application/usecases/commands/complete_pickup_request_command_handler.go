package commands

import (
	"context"
	"time"

	"fasttrack/internal/core/domain/model/parcel"
)

// CompletePickupRequestCommandHandler closes an approved request after
// collection. Linked parcels still in assigned status cascade to picked_up;
// parcels an admin already advanced individually are left as they are.
type CompletePickupRequestCommandHandler struct {
	uowFactory PickupUoWFactory
}

// NewCompletePickupRequestCommandHandler creates a handler for completions.
func NewCompletePickupRequestCommandHandler(uowFactory PickupUoWFactory) CompletePickupRequestCommandHandler {
	return CompletePickupRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion command.
func (h *CompletePickupRequestCommandHandler) Handle(ctx context.Context, cmd CompletePickupRequestCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	pickupRepo := uow.PickupRequestRepository()
	parcelRepo := uow.ParcelRepository()

	request, err := pickupRepo.Get(ctx, cmd.RequestID())
	if err != nil {
		return err
	}

	now := time.Now()
	if err = request.Complete(now); err != nil {
		return err
	}

	adminID := cmd.AdminID()
	for _, parcelID := range request.ParcelIDs() {
		aggregate, getErr := parcelRepo.Get(ctx, parcelID)
		if getErr != nil {
			return getErr
		}
		if aggregate.Status() != parcel.StatusAssigned {
			continue
		}

		update, changeErr := aggregate.ChangeStatus(
			parcel.StatusPickedUp,
			"collected by courier",
			request.PickupAddress(),
			&adminID,
			now,
		)
		if changeErr != nil {
			return changeErr
		}

		if err = parcelRepo.Update(ctx, aggregate); err != nil {
			return err
		}
		if err = parcelRepo.AddTrackingUpdate(ctx, update); err != nil {
			return err
		}
	}

	if err = pickupRepo.Update(ctx, request); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
