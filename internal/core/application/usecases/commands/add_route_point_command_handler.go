package commands

import (
	"context"
	"log/slog"

	"routetrail/internal/core/domain/model/kernel"
	"routetrail/internal/core/domain/model/plan"
	"routetrail/internal/core/domain/model/point"
	"routetrail/internal/core/domain/services"
	"routetrail/internal/core/ports"
)

// AddRoutePointCommandHandler inserts a point at its requested order and
// shifts the points behind it, all under the plan lock.
//
// Example:
//
//	handler := NewAddRoutePointCommandHandler(uowFactory, geocoder, services.NewOrderIndex(), logger)
//	cmd, _ := NewAddRoutePointCommand(kernel.NewUUID(), planID, PointSpec{Doc: "INV-1"})
//	routePoint, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
type AddRoutePointCommandHandler struct {
	uowFactory RoutePointUoWFactory
	geocoder   ports.Geocoder
	orderIndex services.OrderIndex
	logger     *slog.Logger
}

// NewAddRoutePointCommandHandler creates the handler. The geocoder may be nil,
// then points keep the coordinates they were given.
func NewAddRoutePointCommandHandler(
	uowFactory RoutePointUoWFactory,
	geocoder ports.Geocoder,
	orderIndex services.OrderIndex,
	logger *slog.Logger,
) AddRoutePointCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return AddRoutePointCommandHandler{
		uowFactory: uowFactory,
		geocoder:   geocoder,
		orderIndex: orderIndex,
		logger:     logger.With("component", "add-route-point"),
	}
}

// Handle returns the stored point with the order it was assigned.
func (h *AddRoutePointCommandHandler) Handle(ctx context.Context, cmd AddRoutePointCommand) (*point.RoutePoint, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()

	spec := cmd.Spec()
	details, err := h.resolveDetails(ctx, uow.ReferenceDirectory(), spec)
	if err != nil {
		return nil, err
	}

	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	routePlan, err := h.lockPlan(ctx, uow, cmd)
	if err != nil {
		return nil, err
	}

	if err = cmd.OwnerCheck().authorize(routePlan.VehicleID()); err != nil {
		return nil, err
	}

	pointRepo := uow.RoutePointRepository()
	existing, err := pointRepo.ListByPlan(ctx, routePlan.ID())
	if err != nil {
		return nil, err
	}

	order, steps, err := h.orderIndex.PlanInsert(slotsOf(existing), spec.DesiredOrder)
	if err != nil {
		return nil, err
	}

	for _, step := range steps {
		if err = pointRepo.UpdateOrder(ctx, step.PointID, step.To); err != nil {
			return nil, err
		}
	}

	routePoint, err := point.NewRoutePoint(cmd.PointID(), routePlan.ID(), order, details)
	if err != nil {
		return nil, err
	}

	if err = pointRepo.Add(ctx, routePoint); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return routePoint, nil
}

func (h *AddRoutePointCommandHandler) lockPlan(
	ctx context.Context,
	uow RoutePointUoW,
	cmd AddRoutePointCommand,
) (*plan.RoutePlan, error) {
	planRepo := uow.RoutePlanRepository()
	if planID := cmd.PlanID(); planID != nil {
		return planRepo.GetForUpdate(ctx, *planID)
	}

	if err := uow.ReferenceDirectory().VehicleExists(ctx, cmd.VehicleID()); err != nil {
		return nil, err
	}
	return planRepo.Ensure(ctx, cmd.VehicleID(), cmd.Date())
}

// resolveDetails fills the address from the store when only the store is given
// and looks up coordinates for an address that has none. It runs before the
// transaction starts, so a slow geocoder never holds the plan lock.
func (h *AddRoutePointCommandHandler) resolveDetails(
	ctx context.Context,
	directory ports.ReferenceDirectory,
	spec PointSpec,
) (point.Details, error) {
	details := point.Details{
		Doc:          spec.Doc,
		Payment:      spec.Payment,
		Counterparty: spec.Counterparty,
		AddressID:    spec.AddressID,
		StoreID:      spec.StoreID,
		Geo:          spec.Geo,
		Note:         spec.Note,
	}

	var address *ports.Address
	switch {
	case spec.AddressID != nil:
		found, err := directory.Address(ctx, *spec.AddressID)
		if err != nil {
			return point.Details{}, err
		}
		address = &found
	case spec.StoreID != nil:
		found, err := directory.StoreAddress(ctx, *spec.StoreID)
		if err != nil {
			return point.Details{}, err
		}
		address = &found
		id := found.ID
		details.AddressID = &id
	}

	if details.Geo != nil || address == nil {
		return details, nil
	}
	if address.Geo != nil {
		details.Geo = address.Geo
		return details, nil
	}

	details.Geo = h.geocode(ctx, address.Raw)
	return details, nil
}

func (h *AddRoutePointCommandHandler) geocode(ctx context.Context, raw string) *kernel.GeoPoint {
	if h.geocoder == nil || raw == "" {
		return nil
	}
	geo, err := h.geocoder.Geocode(ctx, raw)
	if err != nil {
		h.logger.WarnContext(ctx, "geocoding failed, point stays without coordinates",
			"address", raw, "error", err)
		return nil
	}
	return geo
}

func slotsOf(points []*point.RoutePoint) []services.Slot {
	slots := make([]services.Slot, 0, len(points))
	for _, p := range points {
		slots = append(slots, services.Slot{PointID: p.ID(), Order: p.Order()})
	}
	return slots
}
