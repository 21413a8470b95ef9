package http

import (
	"net/http"

	"routetrail/internal/core/application/usecases/commands"
	"routetrail/internal/core/application/usecases/queries"
	"routetrail/internal/core/domain/model/kernel"
	"routetrail/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// ListRoutePlans handles GET /api/v1/route-plans.
func (s *Server) ListRoutePlans(ctx echo.Context, params servers.ListRoutePlansParams) error {
	vehicleID, err := toOptionalKernelUUID("vehicle_id", params.VehicleId)
	if err != nil {
		return s.fail(ctx, err)
	}
	driverID, err := toOptionalKernelUUID("driver_id", params.DriverId)
	if err != nil {
		return s.fail(ctx, err)
	}

	filter := queries.PlanFilter{VehicleID: vehicleID, DriverID: driverID}
	if params.StartDate != nil {
		filter.Start = &params.StartDate.Time
	}
	if params.EndDate != nil {
		filter.End = &params.EndDate.Time
	}
	query, err := queries.NewListRoutePlansQuery(filter)
	if err != nil {
		return s.fail(ctx, err)
	}

	list, err := s.uc.ListRoutePlans.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toRoutePlanList(list))
}

// CreateRoutePlan handles POST /api/v1/route-plans.
func (s *Server) CreateRoutePlan(ctx echo.Context) error {
	var body servers.CreateRoutePlanJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	vehicleID, err := toKernelUUID("vehicle_id", body.VehicleId)
	if err != nil {
		return s.fail(ctx, err)
	}

	planID := kernel.NewUUID()
	cmd, err := commands.NewCreateRoutePlanCommand(planID, vehicleID, body.Date.Time, valueOf(body.Notes))
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.uc.CreateRoutePlan.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: planID.Bytes()})
}

// ResolveRoutePlan handles POST /api/v1/route-plans/resolve - returns the
// plan of a vehicle for a date, creating it on first use.
func (s *Server) ResolveRoutePlan(ctx echo.Context, params servers.ResolveRoutePlanParams) error {
	var body servers.ResolveRoutePlanJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	vehicleID, err := toKernelUUID("vehicle_id", body.VehicleId)
	if err != nil {
		return s.fail(ctx, err)
	}
	check, err := ownerCheck(params.XVehicleId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewGetOrCreateRoutePlanCommand(vehicleID, body.Date.Time)
	if err != nil {
		return s.fail(ctx, err)
	}
	planID, err := s.uc.GetOrCreateRoutePlan.Handle(ctx.Request().Context(), cmd.WithOwnerCheck(check))
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Created{Id: planID.Bytes()})
}

// SyncRoutePlanLifecycle handles POST /api/v1/route-plans/lifecycle/sync.
func (s *Server) SyncRoutePlanLifecycle(ctx echo.Context, params servers.SyncRoutePlanLifecycleParams) error {
	cmd, err := commands.NewSyncRoutePlanLifecycleCommand(params.Date.Time)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.uc.SyncRoutePlanLifecycle.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetRoutePlan handles GET /api/v1/route-plans/:planId.
func (s *Server) GetRoutePlan(ctx echo.Context, id servers.PlanId) error {
	planID, err := toKernelUUID("planId", id)
	if err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewGetRoutePlanQuery(planID)
	if err != nil {
		return s.fail(ctx, err)
	}

	view, err := s.uc.GetRoutePlan.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toRoutePlan(view))
}

// SetRoutePlanWindow handles PUT /api/v1/route-plans/:planId/window.
func (s *Server) SetRoutePlanWindow(
	ctx echo.Context,
	id servers.PlanId,
	params servers.SetRoutePlanWindowParams,
) error {
	planID, err := toKernelUUID("planId", id)
	if err != nil {
		return s.fail(ctx, err)
	}
	var body servers.SetRoutePlanWindowJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	check, err := ownerCheck(params.XVehicleId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewSetRoutePlanWindowCommand(planID, body.StartTime, body.EndTime)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.uc.SetRoutePlanWindow.Handle(ctx.Request().Context(), cmd.WithOwnerCheck(check)); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetTimeline handles GET /api/v1/route-plans/:planId/timeline.
func (s *Server) GetTimeline(ctx echo.Context, id servers.PlanId) error {
	planID, err := toKernelUUID("planId", id)
	if err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewGetTimelineQuery(planID)
	if err != nil {
		return s.fail(ctx, err)
	}

	timeline, err := s.uc.GetTimeline.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.TimelineEvent, len(timeline.Events))
	for i, event := range timeline.Events {
		response[i] = toTimelineEvent(event)
	}
	return ctx.JSON(http.StatusOK, response)
}
