package queries

import (
	"errors"
	"time"

	"routetrail/internal/core/domain/model/kernel"
	"routetrail/internal/pkg/errs"
	"routetrail/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetRoutePlanQueryIsNotConstructed = errors.New(
	"GetRoutePlanQuery must be created via NewGetRoutePlanQuery constructor",
)

type GetRoutePlanQuery struct {
	routePlanID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetRoutePlanQuery(routePlanID kernel.UUID) (GetRoutePlanQuery, error) {
	if err := routePlanID.Validate(); err != nil {
		return GetRoutePlanQuery{}, errs.NewValueIsRequiredErrorWithCause("route plan id", err)
	}
	return GetRoutePlanQuery{routePlanID: routePlanID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetRoutePlanQuery) Validate() error {
	return q.guard.Validate(ErrGetRoutePlanQueryIsNotConstructed)
}

func (q GetRoutePlanQuery) RoutePlanID() kernel.UUID {
	return q.routePlanID
}

// GetRoutePlanQueryResponse is a plan with its points in route order and its
// loadings in the order they were planned to start.
type GetRoutePlanQueryResponse struct {
	ID        kernel.UUID
	VehicleID kernel.UUID
	Date      time.Time
	Status    string
	StartTime *time.Time
	EndTime   *time.Time
	Notes     string
	Points    []RoutePointView
	Loadings  []LoadingView
}

type RoutePointView struct {
	ID              kernel.UUID
	Order           int
	Doc             string
	Payment         decimal.Decimal
	Counterparty    string
	AddressID       *kernel.UUID
	Address         string
	StoreID         *kernel.UUID
	StoreName       string
	Geo             *kernel.GeoPoint
	ArrivalTime     *time.Time
	DepartureTime   *time.Time
	DurationMinutes *int
	Note            string
	Status          string
}

type LoadingView struct {
	ID               kernel.UUID
	LoadingPlaceID   *kernel.UUID
	LoadingPlaceName string
	StartTime        *time.Time
	EndTime          *time.Time
	DocNumber        string
	Volume           *float64
	Weight           *float64
	Note             string
	Geo              *kernel.GeoPoint
	Status           string
}
