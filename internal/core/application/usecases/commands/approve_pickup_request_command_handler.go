package commands

import (
	"context"
	"fmt"
	"time"

	"fasttrack/internal/core/domain/model/parcel"
	"fasttrack/internal/pkg/errs"
)

// ApprovePickupRequestCommandHandler runs the approval transaction: the
// request moves to approved, the courier is recorded, and every linked
// parcel cascades pending -> assigned. One blocking parcel aborts the whole
// approval; there are no partial cascades.
type ApprovePickupRequestCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewApprovePickupRequestCommandHandler creates a handler for approvals.
func NewApprovePickupRequestCommandHandler(uowFactory AssignmentUoWFactory) ApprovePickupRequestCommandHandler {
	return ApprovePickupRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the approval command.
func (h *ApprovePickupRequestCommandHandler) Handle(ctx context.Context, cmd ApprovePickupRequestCommand) error {
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

	assignee, err := uow.CourierRepository().Get(ctx, cmd.CourierID())
	if err != nil {
		return err
	}
	if !assignee.IsActive() {
		return errs.NewConflictError(
			fmt.Sprintf("courier %s is inactive and cannot be assigned", assignee.ID()),
		)
	}

	now := time.Now()
	if err = request.Approve(assignee.ID(), now); err != nil {
		return err
	}

	adminID := cmd.AdminID()
	for _, parcelID := range request.ParcelIDs() {
		aggregate, getErr := parcelRepo.Get(ctx, parcelID)
		if getErr != nil {
			return getErr
		}

		update, changeErr := aggregate.ChangeStatus(
			parcel.StatusAssigned,
			fmt.Sprintf("courier %s assigned for pickup", assignee.Name()),
			"",
			&adminID,
			now,
		)
		if changeErr != nil {
			return errs.NewConflictErrorWithCause(
				fmt.Sprintf("parcel %s blocks the approval", aggregate.TrackingID()),
				changeErr,
			)
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
