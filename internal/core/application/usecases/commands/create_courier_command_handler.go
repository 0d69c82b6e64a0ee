package commands

import (
	"context"
	"time"

	"fasttrack/internal/core/domain/model/courier"
)

// CreateCourierCommandHandler registers new couriers, active by default.
type CreateCourierCommandHandler struct {
	uowFactory CourierUoWFactory
}

// NewCreateCourierCommandHandler creates a handler for courier registration.
func NewCreateCourierCommandHandler(uowFactory CourierUoWFactory) CreateCourierCommandHandler {
	return CreateCourierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command and returns the created courier.
func (h *CreateCourierCommandHandler) Handle(ctx context.Context, cmd CreateCourierCommand) (*courier.Courier, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	newCourier, err := courier.NewCourier(
		cmd.CourierID(),
		cmd.Name(),
		cmd.Phone(),
		courier.NewVehicle(cmd.VehicleType(), cmd.VehicleNumber(), cmd.CoverageArea()),
		time.Now(),
	)
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

	if err = uow.CourierRepository().Add(ctx, newCourier); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newCourier, nil
}
