package queries

import (
	"errors"
	"fmt"
	"time"

	"routetrail/internal/core/domain/model/kernel"
	"routetrail/internal/core/domain/services"
	"routetrail/internal/pkg/errs"
	"routetrail/internal/pkg/guard"
)

var ErrGetStatisticsQueryIsNotConstructed = errors.New(
	"GetStatisticsQuery must be created via NewGetStatisticsQuery constructor",
)

// GetStatisticsQuery reports on every plan whose date lies in the closed range
// [start, end].
//
// Example:
//
//	query, err := NewGetStatisticsQuery(monday, friday)
//	if err != nil {
//	    return err
//	}
//	report, err := handler.Handle(ctx, query)
type GetStatisticsQuery struct {
	start time.Time
	end   time.Time

	guard guard.ConstructorGuard
}

func NewGetStatisticsQuery(start, end time.Time) (GetStatisticsQuery, error) {
	var problems []error
	if start.IsZero() {
		problems = append(problems, errs.NewValueIsRequiredError("start date"))
	}
	if end.IsZero() {
		problems = append(problems, errs.NewValueIsRequiredError("end date"))
	}
	if err := errors.Join(problems...); err != nil {
		return GetStatisticsQuery{}, err
	}

	start, end = kernel.DateOf(start), kernel.DateOf(end)
	if start.After(end) {
		return GetStatisticsQuery{}, errs.NewValueIsInvalidErrorWithCause("date range",
			fmt.Errorf("start %s is after end %s", start.Format(dateLayout), end.Format(dateLayout)))
	}

	return GetStatisticsQuery{start: start, end: end, guard: guard.NewConstructorGuard()}, nil
}

func (q GetStatisticsQuery) Validate() error {
	return q.guard.Validate(ErrGetStatisticsQueryIsNotConstructed)
}

func (q GetStatisticsQuery) Start() time.Time {
	return q.start
}

func (q GetStatisticsQuery) End() time.Time {
	return q.end
}

type GetStatisticsQueryResponse struct {
	Start  time.Time
	End    time.Time
	Report services.StatisticsReport
}
