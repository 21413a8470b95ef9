package point

import (
	"errors"
	"fmt"
	"time"

	"routetrail/internal/core/domain/model/kernel"
	"routetrail/internal/core/domain/model/status"
	"routetrail/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrRoutePointIsNotConstructed = errors.New("RoutePoint must be created via NewRoutePoint constructor")

// Details carries the caller-supplied attributes of a new stop.
type Details struct {
	Doc          string
	Payment      decimal.Decimal
	Counterparty string
	AddressID    *kernel.UUID
	StoreID      *kernel.UUID
	Geo          *kernel.GeoPoint
	Note         string
}

// RoutePoint is a stop inside a route plan.
//
// Invariants:
//   - order is positive and unique inside the plan (enforced together with the store)
//   - status always equals the status of the newest ledger entry
//   - arrival is never set after departure, and neither is ever cleared
type RoutePoint struct {
	id          kernel.UUID
	routePlanID kernel.UUID
	order       int
	details     Details

	arrivalTime     *time.Time
	departureTime   *time.Time
	durationMinutes *int
	status          status.Status

	isConstructed bool
}

// NewRoutePoint creates a planned point at the given position.
func NewRoutePoint(id, routePlanID kernel.UUID, order int, details Details) (*RoutePoint, error) {
	p := &RoutePoint{
		status:        status.Planned,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setRoutePlanID(routePlanID),
		p.SetOrder(order),
		p.setDetails(details),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Restore rebuilds a persisted point without re-running creation rules.
func Restore(
	id, routePlanID kernel.UUID,
	order int,
	details Details,
	current status.Status,
	arrivalTime, departureTime *time.Time,
	durationMinutes *int,
) *RoutePoint {
	return &RoutePoint{
		id:              id,
		routePlanID:     routePlanID,
		order:           order,
		details:         details,
		arrivalTime:     arrivalTime,
		departureTime:   departureTime,
		durationMinutes: durationMinutes,
		status:          current,
		isConstructed:   true,
	}
}

func (p *RoutePoint) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrRoutePointIsNotConstructed
	}
	return nil
}

func (p *RoutePoint) ID() kernel.UUID {
	return p.id
}

func (p *RoutePoint) RoutePlanID() kernel.UUID {
	return p.routePlanID
}

func (p *RoutePoint) Order() int {
	return p.order
}

func (p *RoutePoint) Details() Details {
	return p.details
}

func (p *RoutePoint) Status() status.Status {
	return p.status
}

func (p *RoutePoint) Kind() status.Kind {
	return status.KindRoutePoint
}

func (p *RoutePoint) ArrivalTime() *time.Time {
	return p.arrivalTime
}

func (p *RoutePoint) DepartureTime() *time.Time {
	return p.departureTime
}

func (p *RoutePoint) DurationMinutes() *int {
	return p.durationMinutes
}

// SetOrder moves the point to a new position. Uniqueness inside the plan is the
// caller's concern; only the lower bound is checked here.
func (p *RoutePoint) SetOrder(order int) error {
	if order < 1 {
		return errs.NewOrderIsInvalidError(order)
	}
	p.order = order
	return nil
}

// ApplyStatus mirrors a ledger entry onto the point:
//   - arrived sets the arrival time if it is still unset
//   - completed sets the arrival time if unset, always sets the departure time,
//     and derives the whole minutes spent at the stop
//
// A non-nil geo replaces the point's position.
func (p *RoutePoint) ApplyStatus(tagged status.Tagged, at time.Time, geo *kernel.GeoPoint) error {
	if err := tagged.Validate(); err != nil {
		return err
	}
	if tagged.Kind() != status.KindRoutePoint {
		return errs.NewStatusIsInvalidError(status.KindRoutePoint.String(), tagged.String())
	}

	switch tagged.Value() {
	case status.Arrived:
		if p.arrivalTime == nil {
			p.arrivalTime = &at
		}
	case status.Completed:
		if p.arrivalTime == nil {
			p.arrivalTime = &at
		}
		p.departureTime = &at
		minutes := max(int(p.departureTime.Sub(*p.arrivalTime).Minutes()), 0)
		p.durationMinutes = &minutes
	}

	if geo != nil {
		p.details.Geo = geo
	}
	p.status = tagged.Value()
	return nil
}

func (p *RoutePoint) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *RoutePoint) setRoutePlanID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("route plan id", err)
	}
	p.routePlanID = id
	return nil
}

func (p *RoutePoint) setDetails(d Details) error {
	if d.Payment.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("payment", fmt.Errorf("%s is negative", d.Payment))
	}
	if d.Geo != nil {
		if err := d.Geo.Validate(); err != nil {
			return err
		}
	}
	p.details = d
	return nil
}
