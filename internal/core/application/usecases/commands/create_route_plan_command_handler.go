package commands

import (
	"context"

	"routetrail/internal/core/domain/model/plan"
)

// CreateRoutePlanCommandHandler registers a plan for a known vehicle. A second
// plan for the same vehicle and date fails with errs.ErrConflict.
type CreateRoutePlanCommandHandler struct {
	uowFactory RoutePlanUoWFactory
}

func NewCreateRoutePlanCommandHandler(uowFactory RoutePlanUoWFactory) CreateRoutePlanCommandHandler {
	return CreateRoutePlanCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *CreateRoutePlanCommandHandler) Handle(ctx context.Context, cmd CreateRoutePlanCommand) error {
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

	if err := uow.ReferenceDirectory().VehicleExists(ctx, cmd.VehicleID()); err != nil {
		return err
	}

	routePlan, err := plan.NewRoutePlan(cmd.PlanID(), cmd.VehicleID(), cmd.Date(), cmd.Notes())
	if err != nil {
		return err
	}

	if err = uow.RoutePlanRepository().Add(ctx, routePlan); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
