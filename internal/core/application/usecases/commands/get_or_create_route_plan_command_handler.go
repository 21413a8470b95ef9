package commands

import (
	"context"

	"routetrail/internal/core/domain/model/kernel"
)

type GetOrCreateRoutePlanCommandHandler struct {
	uowFactory RoutePlanUoWFactory
}

func NewGetOrCreateRoutePlanCommandHandler(uowFactory RoutePlanUoWFactory) GetOrCreateRoutePlanCommandHandler {
	return GetOrCreateRoutePlanCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the identifier of the existing or newly created plan.
// Concurrent calls for the same vehicle and date return the same plan.
func (h *GetOrCreateRoutePlanCommandHandler) Handle(
	ctx context.Context,
	cmd GetOrCreateRoutePlanCommand,
) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	if err := cmd.ownerCheck.authorize(cmd.VehicleID()); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.ReferenceDirectory().VehicleExists(ctx, cmd.VehicleID()); err != nil {
		return kernel.UUID{}, err
	}

	routePlan, err := uow.RoutePlanRepository().Ensure(ctx, cmd.VehicleID(), cmd.Date())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return routePlan.ID(), nil
}
