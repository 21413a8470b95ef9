package http

import (
	"net/http"

	"routetrail/internal/core/application/usecases/commands"
	"routetrail/internal/core/application/usecases/queries"
	"routetrail/internal/core/domain/model/kernel"
	"routetrail/internal/core/domain/model/status"
	"routetrail/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

type recordCommandFactory func(kernel.UUID, commands.StatusReport) (commands.RecordStatusCommand, error)

// RecordPointStatus handles POST /api/v1/points/:entityId/statuses.
func (s *Server) RecordPointStatus(ctx echo.Context, id servers.EntityId, params servers.RecordPointStatusParams) error {
	return s.recordStatus(ctx, id, params.XVehicleId, commands.NewRecordPointStatusCommand)
}

// RecordLoadingStatus handles POST /api/v1/loadings/:entityId/statuses.
func (s *Server) RecordLoadingStatus(
	ctx echo.Context,
	id servers.EntityId,
	params servers.RecordLoadingStatusParams,
) error {
	return s.recordStatus(ctx, id, params.XVehicleId, commands.NewRecordLoadingStatusCommand)
}

// RecordStatus handles POST /api/v1/statuses/:entityId for callers that do
// not know whether the id names a route point or a loading.
func (s *Server) RecordStatus(ctx echo.Context, id servers.EntityId, params servers.RecordStatusParams) error {
	return s.recordStatus(ctx, id, params.XVehicleId, commands.NewRecordStatusCommand)
}

// recordStatus answers with the stored entry and the entity it was mirrored
// onto.
func (s *Server) recordStatus(
	ctx echo.Context,
	id servers.EntityId,
	header *servers.VehicleHeader,
	newCommand recordCommandFactory,
) error {
	entityID, err := toKernelUUID("entityId", id)
	if err != nil {
		return s.fail(ctx, err)
	}
	var body servers.StatusReport
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	geo, err := toGeo(body.Latitude, body.Longitude)
	if err != nil {
		return s.fail(ctx, err)
	}
	check, err := ownerCheck(header)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := newCommand(entityID, commands.StatusReport{
		Status:    body.Status,
		Timestamp: body.Timestamp,
		Geo:       geo,
		Note:      valueOf(body.Note),
	})
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.uc.RecordStatus.Handle(ctx.Request().Context(), cmd.WithOwnerCheck(check))
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, toStatusRecord(result))
}

// GetStatusLog handles GET /api/v1/status-log/:kind/:entityId.
func (s *Server) GetStatusLog(ctx echo.Context, kind servers.EntityKind, id servers.EntityId) error {
	entityID, err := toKernelUUID("entityId", id)
	if err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewGetStatusLogQuery(status.Kind(kind), entityID)
	if err != nil {
		return s.fail(ctx, err)
	}

	log, err := s.uc.GetStatusLog.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.StatusEntry, len(log.Entries))
	for i, entry := range log.Entries {
		response[i] = toStatusEntry(entry)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetStatistics handles GET /api/v1/statistics?start_date=&end_date=.
func (s *Server) GetStatistics(ctx echo.Context, params servers.GetStatisticsParams) error {
	query, err := queries.NewGetStatisticsQuery(params.StartDate.Time, params.EndDate.Time)
	if err != nil {
		return s.fail(ctx, err)
	}

	report, err := s.uc.GetStatistics.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toStatistics(report))
}
