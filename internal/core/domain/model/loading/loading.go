// Package loading contains the Loading entity: an unordered pickup event that
// belongs to a route plan and keeps its own status ledger.
package loading

import (
	"errors"
	"fmt"
	"time"

	"routetrail/internal/core/domain/model/kernel"
	"routetrail/internal/core/domain/model/status"
	"routetrail/internal/pkg/errs"
)

var ErrLoadingIsNotConstructed = errors.New("Loading must be created via NewLoading constructor")

// Details carries the caller-supplied attributes of a loading.
type Details struct {
	LoadingPlaceID *kernel.UUID
	StartTime      *time.Time
	EndTime        *time.Time
	DocNumber      string
	Volume         *float64
	Weight         *float64
	Note           string
	Geo            *kernel.GeoPoint
}

// Loading is a pickup event inside a route plan.
type Loading struct {
	id          kernel.UUID
	routePlanID kernel.UUID
	details     Details
	status      status.Status

	isConstructed bool
}

func NewLoading(id, routePlanID kernel.UUID, details Details) (*Loading, error) {
	l := &Loading{
		status:        status.Planned,
		isConstructed: true,
	}

	if err := errors.Join(
		l.setID(id),
		l.setRoutePlanID(routePlanID),
		l.setDetails(details),
	); err != nil {
		return nil, err
	}

	return l, nil
}

func Restore(id, routePlanID kernel.UUID, details Details, current status.Status) *Loading {
	return &Loading{
		id:            id,
		routePlanID:   routePlanID,
		details:       details,
		status:        current,
		isConstructed: true,
	}
}

func (l *Loading) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLoadingIsNotConstructed
	}
	return nil
}

func (l *Loading) ID() kernel.UUID {
	return l.id
}

func (l *Loading) RoutePlanID() kernel.UUID {
	return l.routePlanID
}

func (l *Loading) Details() Details {
	return l.details
}

func (l *Loading) Status() status.Status {
	return l.status
}

func (l *Loading) Kind() status.Kind {
	return status.KindLoading
}

// ApplyStatus mirrors a ledger entry onto the loading. Leaving planned starts the
// loading if it has no start time yet; loading_completed or completed ends it if
// it has no end time yet. A non-nil geo replaces the loading's position.
func (l *Loading) ApplyStatus(tagged status.Tagged, at time.Time, geo *kernel.GeoPoint) error {
	if err := tagged.Validate(); err != nil {
		return err
	}
	if tagged.Kind() != status.KindLoading {
		return errs.NewStatusIsInvalidError(status.KindLoading.String(), tagged.String())
	}

	next := tagged.Value()
	if next != status.Planned && l.details.StartTime == nil {
		l.details.StartTime = &at
	}
	if (next == status.LoadingCompleted || next == status.Completed) && l.details.EndTime == nil {
		l.details.EndTime = &at
	}

	if geo != nil {
		l.details.Geo = geo
	}
	l.status = next
	return nil
}

func (l *Loading) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Loading) setRoutePlanID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("route plan id", err)
	}
	l.routePlanID = id
	return nil
}

func (l *Loading) setDetails(d Details) error {
	var problems []error
	if d.StartTime != nil && d.EndTime != nil && d.EndTime.Before(*d.StartTime) {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("end time",
			fmt.Errorf("%s is before start %s", d.EndTime.Format(time.RFC3339), d.StartTime.Format(time.RFC3339))))
	}
	if d.Volume != nil && *d.Volume < 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("volume", fmt.Errorf("%g is negative", *d.Volume)))
	}
	if d.Weight != nil && *d.Weight < 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%g is negative", *d.Weight)))
	}
	if err := errors.Join(problems...); err != nil {
		return err
	}

	l.details = d
	return nil
}
