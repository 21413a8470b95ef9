package commands

import (
	"errors"
	"time"

	"routetrail/internal/core/domain/model/kernel"
	"routetrail/internal/pkg/errs"
	"routetrail/internal/pkg/guard"
)

var ErrGetOrCreateRoutePlanCommandIsNotConstructed = errors.New(
	"GetOrCreateRoutePlanCommand must be created via NewGetOrCreateRoutePlanCommand constructor",
)

// GetOrCreateRoutePlanCommand resolves the plan of a vehicle for a date,
// creating it with plan.AutoCreatedNote when missing.
type GetOrCreateRoutePlanCommand struct { //nolint:recvcheck //using for validation
	vehicleID  kernel.UUID
	date       time.Time
	ownerCheck OwnerCheck

	guard guard.ConstructorGuard
}

func NewGetOrCreateRoutePlanCommand(vehicleID kernel.UUID, date time.Time) (GetOrCreateRoutePlanCommand, error) {
	var problems []error
	if err := vehicleID.Validate(); err != nil {
		problems = append(problems, errs.NewValueIsRequiredErrorWithCause("vehicle id", err))
	}
	if date.IsZero() {
		problems = append(problems, errs.NewValueIsRequiredError("date"))
	}
	if err := errors.Join(problems...); err != nil {
		return GetOrCreateRoutePlanCommand{}, err
	}

	return GetOrCreateRoutePlanCommand{
		vehicleID: vehicleID,
		date:      kernel.DateOf(date),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c GetOrCreateRoutePlanCommand) WithOwnerCheck(check OwnerCheck) GetOrCreateRoutePlanCommand {
	c.ownerCheck = check
	return c
}

func (c GetOrCreateRoutePlanCommand) Validate() error {
	return c.guard.Validate(ErrGetOrCreateRoutePlanCommandIsNotConstructed)
}

func (c GetOrCreateRoutePlanCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

func (c GetOrCreateRoutePlanCommand) Date() time.Time {
	return c.date
}
