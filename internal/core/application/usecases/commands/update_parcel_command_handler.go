package commands

import (
	"context"
	"fmt"
	"time"

	"fasttrack/internal/core/domain/model/account"
	"fasttrack/internal/core/domain/model/parcel"
	"fasttrack/internal/pkg/errs"
)

// UpdateParcelCommandHandler edits recipient details and package metadata of
// pending parcels. Senders may edit their own parcels, admins any.
type UpdateParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewUpdateParcelCommandHandler creates a handler for parcel edits.
func NewUpdateParcelCommandHandler(uowFactory ParcelUoWFactory) UpdateParcelCommandHandler {
	return UpdateParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the edit command and returns the updated parcel.
func (h *UpdateParcelCommandHandler) Handle(ctx context.Context, cmd UpdateParcelCommand) (*parcel.Parcel, error) {
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

	aggregate, err := parcelRepo.Get(ctx, cmd.ParcelID())
	if err != nil {
		return nil, err
	}

	if cmd.ActorRole() == account.RoleMerchant && !aggregate.IsOwnedBy(cmd.ActorID()) {
		return nil, errs.NewForbiddenError(
			fmt.Sprintf("parcel %s does not belong to user %s", aggregate.TrackingID(), cmd.ActorID()),
		)
	}

	if err = aggregate.UpdateDetails(recipient, pack, time.Now()); err != nil {
		return nil, err
	}

	if err = parcelRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
