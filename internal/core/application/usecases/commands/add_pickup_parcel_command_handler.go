package commands

import (
	"context"
	"time"
)

// AddPickupParcelCommandHandler attaches a parcel to an existing pending
// request, applying the same availability checks as request creation.
type AddPickupParcelCommandHandler struct {
	uowFactory PickupUoWFactory
}

// NewAddPickupParcelCommandHandler creates a handler for parcel attachment.
func NewAddPickupParcelCommandHandler(uowFactory PickupUoWFactory) AddPickupParcelCommandHandler {
	return AddPickupParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the attachment command.
func (h *AddPickupParcelCommandHandler) Handle(ctx context.Context, cmd AddPickupParcelCommand) error {
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

	if err = request.EnsureOwnedBy(cmd.MerchantID()); err != nil {
		return err
	}

	if err = ensureParcelAttachable(ctx, uow.ParcelRepository(), pickupRepo, cmd.ParcelID(), cmd.MerchantID()); err != nil {
		return err
	}

	if err = request.AttachParcel(cmd.ParcelID(), time.Now()); err != nil {
		return err
	}

	if err = pickupRepo.Update(ctx, request); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
