package commands

import (
	"context"

	"routetrail/internal/core/domain/model/kernel"
	"routetrail/internal/core/domain/model/point"
	"routetrail/internal/core/domain/services"
)

// MoveRoutePointCommandHandler reorders a plan. The point is parked outside the
// valid range, the points between the old and the new position shift by one,
// and the point lands on its new order. Every write happens under the plan
// lock, so concurrent moves on one plan serialize.
type MoveRoutePointCommandHandler struct {
	uowFactory RoutePointUoWFactory
	orderIndex services.OrderIndex
}

func NewMoveRoutePointCommandHandler(
	uowFactory RoutePointUoWFactory,
	orderIndex services.OrderIndex,
) MoveRoutePointCommandHandler {
	return MoveRoutePointCommandHandler{
		uowFactory: uowFactory,
		orderIndex: orderIndex,
	}
}

// Handle returns the point at its final order. A move onto the current order
// writes nothing and returns the point unchanged.
func (h *MoveRoutePointCommandHandler) Handle(ctx context.Context, cmd MoveRoutePointCommand) (*point.RoutePoint, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	pointRepo := uow.RoutePointRepository()
	routePoint, err := pointRepo.Get(ctx, cmd.PointID())
	if err != nil {
		return nil, err
	}

	routePlan, err := uow.RoutePlanRepository().GetForUpdate(ctx, routePoint.RoutePlanID())
	if err != nil {
		return nil, err
	}

	if err = cmd.OwnerCheck().authorize(routePlan.VehicleID()); err != nil {
		return nil, err
	}

	// re-read under the lock, a concurrent move may have shifted the point
	existing, err := pointRepo.ListByPlan(ctx, routePlan.ID())
	if err != nil {
		return nil, err
	}
	if locked := findPoint(existing, cmd.PointID()); locked != nil {
		routePoint = locked
	}

	final, steps, err := h.orderIndex.PlanMove(slotsOf(existing), cmd.PointID(), cmd.NewOrder())
	if err != nil {
		return nil, err
	}
	if len(steps) == 0 {
		return routePoint, nil
	}

	for _, step := range steps {
		if err = pointRepo.UpdateOrder(ctx, step.PointID, step.To); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if err = routePoint.SetOrder(final); err != nil {
		return nil, err
	}
	return routePoint, nil
}

func findPoint(points []*point.RoutePoint, id kernel.UUID) *point.RoutePoint {
	for _, p := range points {
		if p.ID().IsEqual(id) {
			return p
		}
	}
	return nil
}
