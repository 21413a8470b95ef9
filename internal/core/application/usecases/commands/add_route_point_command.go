package commands

import (
	"errors"
	"fmt"
	"time"

	"routetrail/internal/core/domain/model/kernel"
	"routetrail/internal/pkg/errs"
	"routetrail/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrAddRoutePointCommandIsNotConstructed = errors.New(
	"AddRoutePointCommand must be created via NewAddRoutePointCommand or NewAddRoutePointForDateCommand",
)

// PointSpec is the caller-supplied part of a new route point.
type PointSpec struct {
	Doc          string
	Payment      decimal.Decimal
	Counterparty string
	AddressID    *kernel.UUID
	StoreID      *kernel.UUID
	Note         string
	Geo          *kernel.GeoPoint
	// DesiredOrder is the requested position; nil appends.
	DesiredOrder *int
}

// AddRoutePointCommand places a new point into a plan. The plan is addressed
// either directly or by vehicle and date, in which case it is created when
// missing.
type AddRoutePointCommand struct { //nolint:recvcheck //using for validation
	pointID kernel.UUID

	planID    *kernel.UUID
	vehicleID kernel.UUID
	date      time.Time

	spec       PointSpec
	ownerCheck OwnerCheck

	guard guard.ConstructorGuard
}

func NewAddRoutePointCommand(pointID, planID kernel.UUID, spec PointSpec) (AddRoutePointCommand, error) {
	cmd := AddRoutePointCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPointID(pointID),
		cmd.setPlanID(planID),
		cmd.setSpec(spec),
	); err != nil {
		return AddRoutePointCommand{}, err
	}

	return cmd, nil
}

func NewAddRoutePointForDateCommand(
	pointID, vehicleID kernel.UUID,
	date time.Time,
	spec PointSpec,
) (AddRoutePointCommand, error) {
	cmd := AddRoutePointCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPointID(pointID),
		cmd.setVehicleID(vehicleID),
		cmd.setDate(date),
		cmd.setSpec(spec),
	); err != nil {
		return AddRoutePointCommand{}, err
	}

	return cmd, nil
}

// WithOwnerCheck returns a copy of the command that is rejected unless check
// accepts the vehicle of the target plan.
func (c AddRoutePointCommand) WithOwnerCheck(check OwnerCheck) AddRoutePointCommand {
	c.ownerCheck = check
	return c
}

func (c AddRoutePointCommand) Validate() error {
	return c.guard.Validate(ErrAddRoutePointCommandIsNotConstructed)
}

func (c AddRoutePointCommand) PointID() kernel.UUID {
	return c.pointID
}

// PlanID is nil when the plan is addressed by vehicle and date.
func (c AddRoutePointCommand) PlanID() *kernel.UUID {
	return c.planID
}

func (c AddRoutePointCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

func (c AddRoutePointCommand) Date() time.Time {
	return c.date
}

func (c AddRoutePointCommand) Spec() PointSpec {
	return c.spec
}

func (c AddRoutePointCommand) OwnerCheck() OwnerCheck {
	return c.ownerCheck
}

func (c *AddRoutePointCommand) setPointID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.pointID = id
	return nil
}

func (c *AddRoutePointCommand) setPlanID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("route plan id", err)
	}
	c.planID = &id
	return nil
}

func (c *AddRoutePointCommand) setVehicleID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("vehicle id", err)
	}
	c.vehicleID = id
	return nil
}

func (c *AddRoutePointCommand) setDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("date")
	}
	c.date = kernel.DateOf(date)
	return nil
}

func (c *AddRoutePointCommand) setSpec(spec PointSpec) error {
	if spec.Payment.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("payment", fmt.Errorf("%s is negative", spec.Payment))
	}
	if spec.DesiredOrder != nil && *spec.DesiredOrder < 1 {
		return errs.NewOrderIsInvalidError(*spec.DesiredOrder)
	}
	c.spec = spec
	return nil
}
