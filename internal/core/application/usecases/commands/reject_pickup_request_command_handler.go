package commands

import (
	"context"
	"time"
)

// RejectPickupRequestCommandHandler declines pickup requests. Linked parcels
// stay pending, free to join the merchant's next request.
type RejectPickupRequestCommandHandler struct {
	uowFactory PickupUoWFactory
}

// NewRejectPickupRequestCommandHandler creates a handler for rejections.
func NewRejectPickupRequestCommandHandler(uowFactory PickupUoWFactory) RejectPickupRequestCommandHandler {
	return RejectPickupRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rejection command.
func (h *RejectPickupRequestCommandHandler) Handle(ctx context.Context, cmd RejectPickupRequestCommand) error {
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

	request, err := pickupRepo.Get(ctx, cmd.RequestID())
	if err != nil {
		return err
	}

	if err = request.Reject(cmd.AdminNotes(), time.Now()); err != nil {
		return err
	}

	if err = pickupRepo.Update(ctx, request); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
