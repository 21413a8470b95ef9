package commands

import (
	"errors"
	"time"

	"routetrail/internal/core/domain/model/kernel"
	"routetrail/internal/pkg/errs"
	"routetrail/internal/pkg/guard"
)

var ErrCreateRoutePlanCommandIsNotConstructed = errors.New(
	"CreateRoutePlanCommand must be created via NewCreateRoutePlanCommand constructor",
)

// CreateRoutePlanCommand opens the worklist of a vehicle for one date.
//
// Example:
//
//	planID := kernel.NewUUID()
//	cmd, err := NewCreateRoutePlanCommand(planID, vehicleID, time.Now(), "")
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return err
//	}
type CreateRoutePlanCommand struct { //nolint:recvcheck //using for validation
	planID    kernel.UUID
	vehicleID kernel.UUID
	date      time.Time
	notes     string

	guard guard.ConstructorGuard
}

func NewCreateRoutePlanCommand(
	planID, vehicleID kernel.UUID,
	date time.Time,
	notes string,
) (CreateRoutePlanCommand, error) {
	cmd := CreateRoutePlanCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPlanID(planID),
		cmd.setVehicleID(vehicleID),
		cmd.setDate(date),
	); err != nil {
		return CreateRoutePlanCommand{}, err
	}

	return cmd, nil
}

func (c CreateRoutePlanCommand) Validate() error {
	return c.guard.Validate(ErrCreateRoutePlanCommandIsNotConstructed)
}

func (c CreateRoutePlanCommand) PlanID() kernel.UUID {
	return c.planID
}

func (c CreateRoutePlanCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// Date is the calendar day of the plan, at midnight UTC.
func (c CreateRoutePlanCommand) Date() time.Time {
	return c.date
}

func (c CreateRoutePlanCommand) Notes() string {
	return c.notes
}

func (c *CreateRoutePlanCommand) setPlanID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.planID = id
	return nil
}

func (c *CreateRoutePlanCommand) setVehicleID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("vehicle id", err)
	}
	c.vehicleID = id
	return nil
}

func (c *CreateRoutePlanCommand) setDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("date")
	}
	c.date = kernel.DateOf(date)
	return nil
}
