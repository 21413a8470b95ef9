// Package ports defines the contracts between the core and its adapters:
// repositories, the unit of work, and the collaborators the core consumes
// without owning (reference data, geocoding, event delivery).
package ports

import (
	"context"
	"time"

	"routetrail/internal/core/domain/model/kernel"
	"routetrail/internal/core/domain/model/plan"
)

// RoutePlanRepository defines the persistence contract for route plans.
type RoutePlanRepository interface {
	// Add persists a new plan. A second plan for the same vehicle and date
	// fails with errs.ErrConflict.
	Add(ctx context.Context, aggregate *plan.RoutePlan) error

	// Update persists the lifecycle, window and notes of an existing plan.
	Update(ctx context.Context, aggregate *plan.RoutePlan) error

	// Get retrieves a plan by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*plan.RoutePlan, error)

	// GetForUpdate retrieves a plan and holds its row lock until the
	// transaction ends. Every change to the order of the plan's points
	// happens under this lock.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*plan.RoutePlan, error)

	// Ensure returns the locked plan of the vehicle for the date, creating it
	// first when it does not exist. Concurrent callers end up with the same plan.
	Ensure(ctx context.Context, vehicleID kernel.UUID, date time.Time) (*plan.RoutePlan, error)

	// ListByDate returns every plan for the date that is not completed yet.
	ListByDate(ctx context.Context, date time.Time) ([]*plan.RoutePlan, error)
}
