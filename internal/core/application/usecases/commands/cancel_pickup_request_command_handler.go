package commands

import (
	"context"
	"time"

	"fasttrack/internal/core/domain/model/account"
)

// CancelPickupRequestCommandHandler withdraws pending pickup requests.
type CancelPickupRequestCommandHandler struct {
	uowFactory PickupUoWFactory
}

// NewCancelPickupRequestCommandHandler creates a handler for cancellations.
func NewCancelPickupRequestCommandHandler(uowFactory PickupUoWFactory) CancelPickupRequestCommandHandler {
	return CancelPickupRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command.
func (h *CancelPickupRequestCommandHandler) Handle(ctx context.Context, cmd CancelPickupRequestCommand) error {
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

	if cmd.ActorRole() == account.RoleMerchant {
		if err = request.EnsureOwnedBy(cmd.ActorID()); err != nil {
			return err
		}
	}

	if err = request.Cancel(time.Now()); err != nil {
		return err
	}

	if err = pickupRepo.Update(ctx, request); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
