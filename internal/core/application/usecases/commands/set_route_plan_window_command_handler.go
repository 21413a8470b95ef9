package commands

import (
	"context"
)

type SetRoutePlanWindowCommandHandler struct {
	uowFactory RoutePlanUoWFactory
}

func NewSetRoutePlanWindowCommandHandler(uowFactory RoutePlanUoWFactory) SetRoutePlanWindowCommandHandler {
	return SetRoutePlanWindowCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *SetRoutePlanWindowCommandHandler) Handle(ctx context.Context, cmd SetRoutePlanWindowCommand) error {
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

	planRepo := uow.RoutePlanRepository()
	routePlan, err := planRepo.GetForUpdate(ctx, cmd.PlanID())
	if err != nil {
		return err
	}

	if err = cmd.OwnerCheck().authorize(routePlan.VehicleID()); err != nil {
		return err
	}

	if err = routePlan.SetWindow(cmd.Start(), cmd.End()); err != nil {
		return err
	}

	if err = planRepo.Update(ctx, routePlan); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
