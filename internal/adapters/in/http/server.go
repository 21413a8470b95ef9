// Package http is the echo transport. It implements the handlers generated
// from the OpenAPI document, translating requests into commands and queries
// and domain errors into status codes. Requests are validated against the
// same document before a handler runs.
package http

import (
	"context"
	"log/slog"

	"routetrail/internal/core/application/usecases/commands"
	"routetrail/internal/core/application/usecases/queries"
	"routetrail/internal/core/domain/model/kernel"
	"routetrail/internal/core/domain/model/point"
	"routetrail/internal/generated/servers"
)

type CreateRoutePlanUseCase interface {
	Handle(ctx context.Context, cmd commands.CreateRoutePlanCommand) error
}

type GetOrCreateRoutePlanUseCase interface {
	Handle(ctx context.Context, cmd commands.GetOrCreateRoutePlanCommand) (kernel.UUID, error)
}

type SetRoutePlanWindowUseCase interface {
	Handle(ctx context.Context, cmd commands.SetRoutePlanWindowCommand) error
}

type SyncRoutePlanLifecycleUseCase interface {
	Handle(ctx context.Context, cmd commands.SyncRoutePlanLifecycleCommand) error
}

type AddRoutePointUseCase interface {
	Handle(ctx context.Context, cmd commands.AddRoutePointCommand) (*point.RoutePoint, error)
}

type MoveRoutePointUseCase interface {
	Handle(ctx context.Context, cmd commands.MoveRoutePointCommand) (*point.RoutePoint, error)
}

type AddLoadingUseCase interface {
	Handle(ctx context.Context, cmd commands.AddLoadingCommand) error
}

type RecordStatusUseCase interface {
	Handle(ctx context.Context, cmd commands.RecordStatusCommand) (commands.RecordStatusResult, error)
}

type GetRoutePlanUseCase interface {
	Handle(ctx context.Context, query queries.GetRoutePlanQuery) (queries.GetRoutePlanQueryResponse, error)
}

type ListRoutePlansUseCase interface {
	Handle(ctx context.Context, query queries.ListRoutePlansQuery) (queries.ListRoutePlansQueryResponse, error)
}

type GetTimelineUseCase interface {
	Handle(ctx context.Context, query queries.GetTimelineQuery) (queries.GetTimelineQueryResponse, error)
}

type GetStatusLogUseCase interface {
	Handle(ctx context.Context, query queries.GetStatusLogQuery) (queries.GetStatusLogQueryResponse, error)
}

type GetStatisticsUseCase interface {
	Handle(ctx context.Context, query queries.GetStatisticsQuery) (queries.GetStatisticsQueryResponse, error)
}

// UseCases groups the command and query handlers the server dispatches to.
type UseCases struct {
	// Command handlers
	CreateRoutePlan        CreateRoutePlanUseCase
	GetOrCreateRoutePlan   GetOrCreateRoutePlanUseCase
	SetRoutePlanWindow     SetRoutePlanWindowUseCase
	SyncRoutePlanLifecycle SyncRoutePlanLifecycleUseCase
	AddRoutePoint          AddRoutePointUseCase
	MoveRoutePoint         MoveRoutePointUseCase
	AddLoading             AddLoadingUseCase
	RecordStatus           RecordStatusUseCase

	// Query handlers
	GetRoutePlan   GetRoutePlanUseCase
	ListRoutePlans ListRoutePlansUseCase
	GetTimeline    GetTimelineUseCase
	GetStatusLog   GetStatusLogUseCase
	GetStatistics  GetStatisticsUseCase
}

var _ servers.ServerInterface = (*Server)(nil)

// Server implements servers.ServerInterface. Mount it with
// servers.RegisterHandlers.
type Server struct {
	uc     UseCases
	logger *slog.Logger
}

func NewServer(uc UseCases, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{uc: uc, logger: logger.With("component", "http")}
}
