package commands

import (
	"context"
	"fmt"

	"fasttrack/internal/core/domain/model/account"
	"fasttrack/internal/pkg/errs"
)

// DeleteParcelCommandHandler removes parcels that are still pending.
// A parcel that entered the delivery network stays on record forever, and a
// pending parcel booked into an open pickup request must be detached (by
// cancelling the request) before it can go, otherwise the request would be
// left pointing at a vanished parcel.
type DeleteParcelCommandHandler struct {
	uowFactory PickupUoWFactory
}

// NewDeleteParcelCommandHandler creates a handler for parcel deletion.
func NewDeleteParcelCommandHandler(uowFactory PickupUoWFactory) DeleteParcelCommandHandler {
	return DeleteParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion command.
func (h *DeleteParcelCommandHandler) Handle(ctx context.Context, cmd DeleteParcelCommand) error {
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

	parcelRepo := uow.ParcelRepository()

	aggregate, err := parcelRepo.Get(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	if cmd.ActorRole() == account.RoleMerchant && !aggregate.IsOwnedBy(cmd.ActorID()) {
		return errs.NewForbiddenError(
			fmt.Sprintf("parcel %s does not belong to user %s", aggregate.TrackingID(), cmd.ActorID()),
		)
	}

	if err = aggregate.EnsureDeletable(); err != nil {
		return err
	}

	booked, err := uow.PickupRequestRepository().HasOpenRequestForParcel(ctx, aggregate.ID())
	if err != nil {
		return err
	}
	if booked {
		return errs.NewConflictError(
			fmt.Sprintf("parcel %s is attached to an open pickup request", aggregate.TrackingID()),
		)
	}

	if err = parcelRepo.Delete(ctx, aggregate.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
