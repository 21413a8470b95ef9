package ports

import (
	"context"

	"routetrail/internal/core/domain/model/kernel"
	"routetrail/internal/core/domain/model/point"
)

// RoutePointRepository defines the persistence contract for route points.
type RoutePointRepository interface {
	Add(ctx context.Context, aggregate *point.RoutePoint) error

	// Update persists status, timestamps, duration and geolocation. The order
	// is only changed through UpdateOrder.
	Update(ctx context.Context, aggregate *point.RoutePoint) error

	Get(ctx context.Context, id kernel.UUID) (*point.RoutePoint, error)

	// GetForUpdate retrieves a point and holds its row lock until the
	// transaction ends.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*point.RoutePoint, error)

	// ListByPlan returns the plan's points ordered by their order.
	ListByPlan(ctx context.Context, planID kernel.UUID) ([]*point.RoutePoint, error)

	// UpdateOrder writes a single order value. Callers apply the steps of the
	// order index one by one so the unique (plan, order) index never trips.
	UpdateOrder(ctx context.Context, id kernel.UUID, order int) error
}
