package http

import (
	"net/http"

	"routetrail/internal/core/application/usecases/commands"
	"routetrail/internal/core/domain/model/kernel"
	"routetrail/internal/core/domain/model/loading"
	"routetrail/internal/generated/servers"
	"routetrail/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

// AddRoutePoint handles POST /api/v1/route-plans/:planId/points. The response
// carries the order the point landed on.
func (s *Server) AddRoutePoint(ctx echo.Context, id servers.PlanId, params servers.AddRoutePointParams) error {
	planID, err := toKernelUUID("planId", id)
	if err != nil {
		return s.fail(ctx, err)
	}
	spec, err := bindPointSpec(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAddRoutePointCommand(kernel.NewUUID(), planID, spec)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.addRoutePoint(ctx, params.XVehicleId, cmd)
}

// AddRoutePointForDate handles POST /api/v1/vehicles/:vehicleId/points?date=,
// creating the day's plan when the vehicle has none yet.
func (s *Server) AddRoutePointForDate(
	ctx echo.Context,
	id openapi_types.UUID,
	params servers.AddRoutePointForDateParams,
) error {
	vehicleID, err := toKernelUUID("vehicleId", id)
	if err != nil {
		return s.fail(ctx, err)
	}
	spec, err := bindPointSpec(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAddRoutePointForDateCommand(kernel.NewUUID(), vehicleID, params.Date.Time, spec)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.addRoutePoint(ctx, params.XVehicleId, cmd)
}

func (s *Server) addRoutePoint(
	ctx echo.Context,
	header *servers.VehicleHeader,
	cmd commands.AddRoutePointCommand,
) error {
	check, err := ownerCheck(header)
	if err != nil {
		return s.fail(ctx, err)
	}
	routePoint, err := s.uc.AddRoutePoint.Handle(ctx.Request().Context(), cmd.WithOwnerCheck(check))
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, toRoutePoint(routePoint))
}

func bindPointSpec(ctx echo.Context) (commands.PointSpec, error) {
	var body servers.AddRoutePointJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return commands.PointSpec{}, errs.NewValueIsInvalidErrorWithCause("request body", err)
	}

	addressID, err := toOptionalKernelUUID("address_id", body.AddressId)
	if err != nil {
		return commands.PointSpec{}, err
	}
	storeID, err := toOptionalKernelUUID("store_id", body.StoreId)
	if err != nil {
		return commands.PointSpec{}, err
	}
	geo, err := toGeo(body.Latitude, body.Longitude)
	if err != nil {
		return commands.PointSpec{}, err
	}

	payment := decimal.Zero
	if body.Payment != nil {
		payment = *body.Payment
	}

	return commands.PointSpec{
		Doc:          valueOf(body.Doc),
		Payment:      payment,
		Counterparty: valueOf(body.Counterparty),
		AddressID:    addressID,
		StoreID:      storeID,
		Note:         valueOf(body.Note),
		Geo:          geo,
		DesiredOrder: body.Order,
	}, nil
}

// MoveRoutePoint handles PUT /api/v1/points/:entityId/order and answers with
// the point at its new position.
func (s *Server) MoveRoutePoint(ctx echo.Context, id servers.EntityId, params servers.MoveRoutePointParams) error {
	pointID, err := toKernelUUID("entityId", id)
	if err != nil {
		return s.fail(ctx, err)
	}
	var body servers.MoveRoutePointJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	check, err := ownerCheck(params.XVehicleId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewMoveRoutePointCommand(pointID, body.Order)
	if err != nil {
		return s.fail(ctx, err)
	}
	routePoint, err := s.uc.MoveRoutePoint.Handle(ctx.Request().Context(), cmd.WithOwnerCheck(check))
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toRoutePoint(routePoint))
}

// AddLoading handles POST /api/v1/route-plans/:planId/loadings.
func (s *Server) AddLoading(ctx echo.Context, id servers.PlanId, params servers.AddLoadingParams) error {
	planID, err := toKernelUUID("planId", id)
	if err != nil {
		return s.fail(ctx, err)
	}
	var body servers.AddLoadingJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	placeID, err := toOptionalKernelUUID("loading_place_id", body.LoadingPlaceId)
	if err != nil {
		return s.fail(ctx, err)
	}
	geo, err := toGeo(body.Latitude, body.Longitude)
	if err != nil {
		return s.fail(ctx, err)
	}
	check, err := ownerCheck(params.XVehicleId)
	if err != nil {
		return s.fail(ctx, err)
	}

	loadingID := kernel.NewUUID()
	cmd, err := commands.NewAddLoadingCommand(loadingID, planID, loading.Details{
		LoadingPlaceID: placeID,
		StartTime:      body.StartTime,
		EndTime:        body.EndTime,
		DocNumber:      valueOf(body.DocNumber),
		Volume:         body.Volume,
		Weight:         body.Weight,
		Note:           valueOf(body.Note),
		Geo:            geo,
	})
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.uc.AddLoading.Handle(ctx.Request().Context(), cmd.WithOwnerCheck(check)); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, servers.Created{Id: loadingID.Bytes()})
}
