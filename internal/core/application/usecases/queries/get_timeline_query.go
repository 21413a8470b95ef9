package queries

import (
	"errors"

	"routetrail/internal/core/domain/model/kernel"
	"routetrail/internal/core/domain/services"
	"routetrail/internal/pkg/errs"
	"routetrail/internal/pkg/guard"
)

var ErrGetTimelineQueryIsNotConstructed = errors.New(
	"GetTimelineQuery must be created via NewGetTimelineQuery constructor",
)

// GetTimelineQuery reads the merged status history of a plan.
type GetTimelineQuery struct {
	routePlanID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetTimelineQuery(routePlanID kernel.UUID) (GetTimelineQuery, error) {
	if err := routePlanID.Validate(); err != nil {
		return GetTimelineQuery{}, errs.NewValueIsRequiredErrorWithCause("route plan id", err)
	}
	return GetTimelineQuery{routePlanID: routePlanID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetTimelineQuery) Validate() error {
	return q.guard.Validate(ErrGetTimelineQueryIsNotConstructed)
}

func (q GetTimelineQuery) RoutePlanID() kernel.UUID {
	return q.routePlanID
}

// GetTimelineQueryResponse lists the events of every point and loading of the
// plan, oldest first.
type GetTimelineQueryResponse struct {
	RoutePlanID kernel.UUID
	Events      []services.TimelineEvent
}
