// Package postgres provides the GORM implementation of the Unit of Work.
//
// A unit of work wraps one database transaction. Repositories obtained from it
// share that transaction and report every aggregate they write back to it.
// Ledger entries among those aggregates are published once the transaction
// commits; a failed publish is logged and never undoes the commit.
//
// Usage:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.StatusLogRepository().Append(ctx, entry); err != nil {
//	    return err
//	}
//	if err := uow.RoutePointRepository().Update(ctx, p); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
package postgres

import (
	"context"
	"log/slog"

	"routetrail/internal/adapters/out/postgres/loadingrepo"
	"routetrail/internal/adapters/out/postgres/refdata"
	"routetrail/internal/adapters/out/postgres/routeplanrepo"
	"routetrail/internal/adapters/out/postgres/routepointrepo"
	"routetrail/internal/adapters/out/postgres/statuslogrepo"
	"routetrail/internal/core/domain/model/kernel"
	"routetrail/internal/core/domain/model/ledger"
	"routetrail/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate is an aggregate written during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
type GormUnitOfWorkFactory struct {
	db        *gorm.DB
	publisher ports.StatusEventPublisher
	logger    *slog.Logger
}

// NewGormUnitOfWorkFactory creates a factory. publisher may be nil, in which
// case ledger entries are not announced.
func NewGormUnitOfWorkFactory(
	db *gorm.DB,
	publisher ports.StatusEventPublisher,
	logger *slog.Logger,
) *GormUnitOfWorkFactory {
	if logger == nil {
		logger = slog.Default()
	}
	return &GormUnitOfWorkFactory{
		db:        db,
		publisher: publisher,
		logger:    logger.With("component", "unit_of_work"),
	}
}

func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		publisher:         f.publisher,
		logger:            f.logger,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one transaction and the aggregates written in it.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	publisher         ports.StatusEventPublisher
	logger            *slog.Logger
	trackedAggregates []trackedAggregate
}

// Begin starts the transaction. Calling it twice does not nest transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes the transaction and then publishes the ledger entries
// appended in it.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		uow.trackedAggregates = uow.trackedAggregates[:0]
		return err
	}

	uow.publishTracked(ctx)
	return nil
}

// Rollback discards the transaction and everything tracked in it.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

func (uow *GormUnitOfWork) RoutePlanRepository() ports.RoutePlanRepository {
	return routeplanrepo.NewGormRoutePlanRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) RoutePointRepository() ports.RoutePointRepository {
	return routepointrepo.NewGormRoutePointRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) LoadingRepository() ports.LoadingRepository {
	return loadingrepo.NewGormLoadingRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) StatusLogRepository() ports.StatusLogRepository {
	return statuslogrepo.NewGormStatusLogRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) ReferenceDirectory() ports.ReferenceDirectory {
	return refdata.NewGormReferenceDirectory(uow.conn())
}

// TrackAggregate registers an aggregate written within this unit of work.
// Repositories call it after every successful write.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// conn returns the open transaction, or the pool when none was started.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) publishTracked(ctx context.Context) {
	tracked := uow.trackedAggregates
	uow.trackedAggregates = make([]trackedAggregate, 0)
	if uow.publisher == nil {
		return
	}

	for _, t := range tracked {
		entry, ok := t.Aggregate.(*ledger.Entry)
		if !ok {
			continue
		}
		if err := uow.publisher.PublishStatusChanged(ctx, entry); err != nil {
			uow.logger.ErrorContext(ctx, "failed to publish status change",
				"entry_id", entry.ID().String(),
				"entity", entry.Ref().String(),
				"status", entry.Status().String(),
				"error", err,
			)
		}
	}
}
