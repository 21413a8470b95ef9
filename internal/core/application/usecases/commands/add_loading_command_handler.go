package commands

import (
	"context"

	"routetrail/internal/core/domain/model/loading"
)

// AddLoadingCommandHandler stores a new planned loading. Loadings carry no
// order, so the plan is only read, not locked.
type AddLoadingCommandHandler struct {
	uowFactory LoadingUoWFactory
}

func NewAddLoadingCommandHandler(uowFactory LoadingUoWFactory) AddLoadingCommandHandler {
	return AddLoadingCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *AddLoadingCommandHandler) Handle(ctx context.Context, cmd AddLoadingCommand) error {
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

	routePlan, err := uow.RoutePlanRepository().Get(ctx, cmd.PlanID())
	if err != nil {
		return err
	}

	if err = cmd.OwnerCheck().authorize(routePlan.VehicleID()); err != nil {
		return err
	}

	details := cmd.Details()
	if details.LoadingPlaceID != nil {
		if err = uow.ReferenceDirectory().LoadingPlaceExists(ctx, *details.LoadingPlaceID); err != nil {
			return err
		}
	}

	aggregate, err := loading.NewLoading(cmd.LoadingID(), routePlan.ID(), details)
	if err != nil {
		return err
	}

	if err = uow.LoadingRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
