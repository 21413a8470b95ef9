// Package commands contains the operations that change state. Every command is
// validated at construction, and its handler runs inside one unit of work: all
// writes of a command commit together or not at all.
package commands

import (
	"context"

	"routetrail/internal/core/domain/model/kernel"
	"routetrail/internal/core/ports"
	"routetrail/internal/pkg/errs"
)

// Unit of Work interfaces narrowed to what each handler touches.
type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	RoutePlanRepoFactory interface {
		RoutePlanRepository() ports.RoutePlanRepository
	}

	RoutePointRepoFactory interface {
		RoutePointRepository() ports.RoutePointRepository
	}

	LoadingRepoFactory interface {
		LoadingRepository() ports.LoadingRepository
	}

	StatusLogRepoFactory interface {
		StatusLogRepository() ports.StatusLogRepository
	}

	ReferenceDirectoryFactory interface {
		ReferenceDirectory() ports.ReferenceDirectory
	}

	// RoutePlanUoW serves commands that create or edit plans.
	RoutePlanUoW interface {
		TxManager
		RoutePlanRepoFactory
		ReferenceDirectoryFactory
	}

	RoutePlanUoWFactory interface {
		Create() RoutePlanUoW
	}

	// RoutePointUoW serves commands that place points inside a plan.
	RoutePointUoW interface {
		TxManager
		RoutePlanRepoFactory
		RoutePointRepoFactory
		ReferenceDirectoryFactory
	}

	RoutePointUoWFactory interface {
		Create() RoutePointUoW
	}

	// LoadingUoW serves commands that attach loadings to a plan.
	LoadingUoW interface {
		TxManager
		RoutePlanRepoFactory
		LoadingRepoFactory
		ReferenceDirectoryFactory
	}

	LoadingUoWFactory interface {
		Create() LoadingUoW
	}

	// StatusUoW serves status recording: the ledger append and the mirror
	// update share its transaction.
	StatusUoW interface {
		TxManager
		RoutePlanRepoFactory
		RoutePointRepoFactory
		LoadingRepoFactory
		StatusLogRepoFactory
	}

	StatusUoWFactory interface {
		Create() StatusUoW
	}

	// LifecycleUoW serves the lifecycle synchronization of plans.
	LifecycleUoW interface {
		TxManager
		RoutePlanRepoFactory
		RoutePointRepoFactory
		LoadingRepoFactory
	}

	LifecycleUoWFactory interface {
		Create() LifecycleUoW
	}
)

// OwnerCheck reports whether the caller may act on the vehicle's plans. The
// identity behind it is resolved by the transport; a nil check allows everything.
type OwnerCheck func(vehicleID kernel.UUID) bool

func (c OwnerCheck) authorize(vehicleID kernel.UUID) error {
	if c == nil || c(vehicleID) {
		return nil
	}
	return errs.NewAccessDeniedError("vehicle", vehicleID.String())
}
