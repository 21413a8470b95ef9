package queries

import (
	"errors"
	"fmt"
	"time"

	"routetrail/internal/core/domain/model/kernel"
	"routetrail/internal/pkg/errs"
	"routetrail/internal/pkg/guard"
)

var ErrListRoutePlansQueryIsNotConstructed = errors.New(
	"ListRoutePlansQuery must be created via NewListRoutePlansQuery constructor",
)

// PlanFilter narrows a plan listing. Every field is optional; the date bounds
// are inclusive and an empty filter lists every plan.
type PlanFilter struct {
	Start     *time.Time
	End       *time.Time
	VehicleID *kernel.UUID
	DriverID  *kernel.UUID
}

type ListRoutePlansQuery struct {
	filter PlanFilter

	guard guard.ConstructorGuard
}

func NewListRoutePlansQuery(filter PlanFilter) (ListRoutePlansQuery, error) {
	if filter.Start != nil {
		start := kernel.DateOf(*filter.Start)
		filter.Start = &start
	}
	if filter.End != nil {
		end := kernel.DateOf(*filter.End)
		filter.End = &end
	}
	if filter.Start != nil && filter.End != nil && filter.Start.After(*filter.End) {
		return ListRoutePlansQuery{}, errs.NewValueIsInvalidErrorWithCause("date range",
			fmt.Errorf("start %s is after end %s",
				filter.Start.Format(dateLayout), filter.End.Format(dateLayout)))
	}

	var problems []error
	if filter.VehicleID != nil {
		if err := filter.VehicleID.Validate(); err != nil {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause("vehicle id", err))
		}
	}
	if filter.DriverID != nil {
		if err := filter.DriverID.Validate(); err != nil {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause("driver id", err))
		}
	}
	if err := errors.Join(problems...); err != nil {
		return ListRoutePlansQuery{}, err
	}

	return ListRoutePlansQuery{filter: filter, guard: guard.NewConstructorGuard()}, nil
}

func (q ListRoutePlansQuery) Validate() error {
	return q.guard.Validate(ErrListRoutePlansQueryIsNotConstructed)
}

func (q ListRoutePlansQuery) Filter() PlanFilter {
	return q.filter
}

// ListRoutePlansQueryResponse lists the matching plans by date, then by
// vehicle plate. The totals cover the listed plans only.
type ListRoutePlansQueryResponse struct {
	Plans       []RoutePlanSummary
	TotalPlans  int
	TotalPoints int
}

type RoutePlanSummary struct {
	ID          kernel.UUID
	Date        time.Time
	Status      string
	VehicleID   kernel.UUID
	PlateNumber string
	DriverID    *kernel.UUID
	DriverName  string
	PointsCount int
}
