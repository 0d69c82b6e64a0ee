package commands

import (
	"context"
	"fmt"
	"time"

	"fasttrack/internal/core/domain/model/account"
	"fasttrack/internal/core/domain/model/parcel"
	"fasttrack/internal/pkg/errs"
)

// UpdateParcelStatusCommandHandler applies lifecycle transitions to parcels.
// The parcel row and its tracking entry are written in one transaction, so
// the stored status and the latest history entry cannot diverge.
type UpdateParcelStatusCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewUpdateParcelStatusCommandHandler creates a handler for status updates.
func NewUpdateParcelStatusCommandHandler(uowFactory ParcelUoWFactory) UpdateParcelStatusCommandHandler {
	return UpdateParcelStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status update command.
func (h *UpdateParcelStatusCommandHandler) Handle(ctx context.Context, cmd UpdateParcelStatusCommand) error {
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

	if cmd.ActorRole() == account.RoleMerchant {
		if !aggregate.IsOwnedBy(cmd.ActorID()) {
			return errs.NewForbiddenError(
				fmt.Sprintf("parcel %s does not belong to user %s", aggregate.TrackingID(), cmd.ActorID()),
			)
		}
		if cmd.NextStatus() != parcel.StatusCancelled {
			return errs.NewForbiddenError("merchants may only cancel their parcels")
		}
	}

	actorID := cmd.ActorID()
	update, err := aggregate.ChangeStatus(cmd.NextStatus(), cmd.Notes(), cmd.Location(), &actorID, time.Now())
	if err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = parcelRepo.AddTrackingUpdate(ctx, update); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
