package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	httpadapter "routetrail/internal/adapters/in/http"
	"routetrail/internal/adapters/out/geocoding"
	"routetrail/internal/adapters/out/kafka"
	"routetrail/internal/adapters/out/postgres"
	"routetrail/internal/core/application/usecases/commands"
	"routetrail/internal/core/application/usecases/queries"
	"routetrail/internal/core/domain/model/status"
	"routetrail/internal/core/domain/services"
	"routetrail/internal/core/ports"
	"routetrail/internal/jobs"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	geocoder   ports.Geocoder
	policy     status.TransitionPolicy
	logger     *slog.Logger

	closers []func() error
}

// NewCompositionRoot wires the adapters around gormDB. Redis and Kafka are
// optional: without REDIS_ADDR geocoding is uncached, without KAFKA_BROKERS
// status changes are not announced.
func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	policy, err := status.PolicyByName(cfg.StatusPolicy)
	if err != nil {
		return nil, err
	}

	root := &CompositionRoot{gormDB: gormDB, policy: policy, logger: logger}

	var publisher ports.StatusEventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		p, err := kafka.NewStatusEventPublisher(cfg.KafkaBrokers, cfg.KafkaStatusTopic, logger)
		if err != nil {
			return nil, err
		}
		root.closers = append(root.closers, p.Close)
		publisher = p
	}
	root.uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB, publisher, logger)

	nominatim, err := geocoding.NewNominatimGeocoder(cfg.GeocoderURL, cfg.GeocoderUserAgent, cfg.GeocoderTimeout)
	if err != nil {
		return nil, fmt.Errorf("geocoder: %w", errors.Join(err, root.Close()))
	}
	root.geocoder = nominatim
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		root.closers = append(root.closers, client.Close)
		root.geocoder = geocoding.NewCachedGeocoder(nominatim, client, cfg.GeocodeTTL, logger)
	}

	return root, nil
}

// Close releases the broker and cache connections.
func (c *CompositionRoot) Close() error {
	var problems []error
	for _, closeFn := range c.closers {
		problems = append(problems, closeFn())
	}
	c.closers = nil
	return errors.Join(problems...)
}

func (c *CompositionRoot) routePlanUoWFactory() commands.RoutePlanUoWFactory {
	return FuncRoutePlanUoWFactory(func() commands.RoutePlanUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) routePointUoWFactory() commands.RoutePointUoWFactory {
	return FuncRoutePointUoWFactory(func() commands.RoutePointUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateRoutePlanCommandHandler() *commands.CreateRoutePlanCommandHandler {
	h := commands.NewCreateRoutePlanCommandHandler(c.routePlanUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateGetOrCreateRoutePlanCommandHandler() *commands.GetOrCreateRoutePlanCommandHandler {
	h := commands.NewGetOrCreateRoutePlanCommandHandler(c.routePlanUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateSetRoutePlanWindowCommandHandler() *commands.SetRoutePlanWindowCommandHandler {
	h := commands.NewSetRoutePlanWindowCommandHandler(c.routePlanUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateAddRoutePointCommandHandler() *commands.AddRoutePointCommandHandler {
	h := commands.NewAddRoutePointCommandHandler(
		c.routePointUoWFactory(), c.geocoder, services.NewOrderIndex(), c.logger)
	return &h
}

func (c *CompositionRoot) CreateMoveRoutePointCommandHandler() *commands.MoveRoutePointCommandHandler {
	h := commands.NewMoveRoutePointCommandHandler(c.routePointUoWFactory(), services.NewOrderIndex())
	return &h
}

func (c *CompositionRoot) CreateAddLoadingCommandHandler() *commands.AddLoadingCommandHandler {
	var f commands.LoadingUoWFactory = FuncLoadingUoWFactory(func() commands.LoadingUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewAddLoadingCommandHandler(f)
	return &h
}

func (c *CompositionRoot) CreateRecordStatusCommandHandler() *commands.RecordStatusCommandHandler {
	var f commands.StatusUoWFactory = FuncStatusUoWFactory(func() commands.StatusUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewRecordStatusCommandHandler(f, services.NewStatusRecorder(c.policy, nil))
	return &h
}

func (c *CompositionRoot) CreateSyncRoutePlanLifecycleCommandHandler() *commands.SyncRoutePlanLifecycleCommandHandler {
	var f commands.LifecycleUoWFactory = FuncLifecycleUoWFactory(func() commands.LifecycleUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewSyncRoutePlanLifecycleCommandHandler(f, c.logger)
	return &h
}

func (c *CompositionRoot) CreateGetRoutePlanQueryHandler() queries.GetRoutePlanQueryHandler {
	return queries.NewGetRoutePlanQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListRoutePlansQueryHandler() queries.ListRoutePlansQueryHandler {
	return queries.NewListRoutePlansQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTimelineQueryHandler() queries.GetTimelineQueryHandler {
	return queries.NewGetTimelineQueryHandler(c.gormDB, services.NewTimelineMerger())
}

func (c *CompositionRoot) CreateGetStatusLogQueryHandler() queries.GetStatusLogQueryHandler {
	return queries.NewGetStatusLogQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStatisticsQueryHandler() queries.GetStatisticsQueryHandler {
	return queries.NewGetStatisticsQueryHandler(c.gormDB, services.NewStatisticsAggregator())
}

func (c *CompositionRoot) CreateServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.UseCases{
		CreateRoutePlan:        c.CreateCreateRoutePlanCommandHandler(),
		GetOrCreateRoutePlan:   c.CreateGetOrCreateRoutePlanCommandHandler(),
		SetRoutePlanWindow:     c.CreateSetRoutePlanWindowCommandHandler(),
		SyncRoutePlanLifecycle: c.CreateSyncRoutePlanLifecycleCommandHandler(),
		AddRoutePoint:          c.CreateAddRoutePointCommandHandler(),
		MoveRoutePoint:         c.CreateMoveRoutePointCommandHandler(),
		AddLoading:             c.CreateAddLoadingCommandHandler(),
		RecordStatus:           c.CreateRecordStatusCommandHandler(),
		GetRoutePlan:           c.CreateGetRoutePlanQueryHandler(),
		ListRoutePlans:         c.CreateListRoutePlansQueryHandler(),
		GetTimeline:            c.CreateGetTimelineQueryHandler(),
		GetStatusLog:           c.CreateGetStatusLogQueryHandler(),
		GetStatistics:          c.CreateGetStatisticsQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager(schedule string) *jobs.JobManager {
	return jobs.NewJobManager(c.CreateSyncRoutePlanLifecycleCommandHandler(), schedule, c.logger)
}

type FuncRoutePlanUoWFactory func() commands.RoutePlanUoW

func (f FuncRoutePlanUoWFactory) Create() commands.RoutePlanUoW {
	return f()
}

type FuncRoutePointUoWFactory func() commands.RoutePointUoW

func (f FuncRoutePointUoWFactory) Create() commands.RoutePointUoW {
	return f()
}

type FuncLoadingUoWFactory func() commands.LoadingUoW

func (f FuncLoadingUoWFactory) Create() commands.LoadingUoW {
	return f()
}

type FuncStatusUoWFactory func() commands.StatusUoW

func (f FuncStatusUoWFactory) Create() commands.StatusUoW {
	return f()
}

type FuncLifecycleUoWFactory func() commands.LifecycleUoW

func (f FuncLifecycleUoWFactory) Create() commands.LifecycleUoW {
	return f()
}
