package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork for each command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Repositories obtained from it
// run inside the transaction started by Begin. Ledger entries appended during
// the transaction are published once Commit succeeds.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	RoutePlanRepository() RoutePlanRepository
	RoutePointRepository() RoutePointRepository
	LoadingRepository() LoadingRepository
	StatusLogRepository() StatusLogRepository
	ReferenceDirectory() ReferenceDirectory
}
