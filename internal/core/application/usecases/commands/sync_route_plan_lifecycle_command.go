package commands

import (
	"errors"
	"time"

	"routetrail/internal/core/domain/model/kernel"
	"routetrail/internal/pkg/errs"
	"routetrail/internal/pkg/guard"
)

// SyncRoutePlanLifecycleCommand derives the lifecycle of every open plan of one
// date from the progress of its points and loadings.
//
// Example:
//
//	cmd, _ := NewSyncRoutePlanLifecycleCommand(time.Now())
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    logger.Error("lifecycle sync failed", "error", err)
//	}
type SyncRoutePlanLifecycleCommand struct { //nolint:recvcheck //using for validation
	date time.Time

	guard guard.ConstructorGuard
}

var ErrSyncRoutePlanLifecycleCommandIsNotConstructed = errors.New(
	"SyncRoutePlanLifecycleCommand must be created via NewSyncRoutePlanLifecycleCommand constructor",
)

func NewSyncRoutePlanLifecycleCommand(date time.Time) (SyncRoutePlanLifecycleCommand, error) {
	if date.IsZero() {
		return SyncRoutePlanLifecycleCommand{}, errs.NewValueIsRequiredError("date")
	}
	return SyncRoutePlanLifecycleCommand{
		date:  kernel.DateOf(date),
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c SyncRoutePlanLifecycleCommand) Validate() error {
	return c.guard.Validate(ErrSyncRoutePlanLifecycleCommandIsNotConstructed)
}

func (c SyncRoutePlanLifecycleCommand) Date() time.Time {
	return c.date
}
