package commands

import (
	"errors"
	"time"

	"routetrail/internal/core/domain/model/kernel"
	"routetrail/internal/pkg/errs"
	"routetrail/internal/pkg/guard"
)

var ErrSetRoutePlanWindowCommandIsNotConstructed = errors.New(
	"SetRoutePlanWindowCommand must be created via NewSetRoutePlanWindowCommand constructor",
)

// SetRoutePlanWindowCommand overwrites the start and end of a plan. A nil bound
// keeps the stored value.
type SetRoutePlanWindowCommand struct { //nolint:recvcheck //using for validation
	planID     kernel.UUID
	start      *time.Time
	end        *time.Time
	ownerCheck OwnerCheck

	guard guard.ConstructorGuard
}

func NewSetRoutePlanWindowCommand(planID kernel.UUID, start, end *time.Time) (SetRoutePlanWindowCommand, error) {
	cmd := SetRoutePlanWindowCommand{
		start: start,
		end:   end,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPlanID(planID),
		cmd.checkBounds(),
	); err != nil {
		return SetRoutePlanWindowCommand{}, err
	}

	return cmd, nil
}

func (c SetRoutePlanWindowCommand) WithOwnerCheck(check OwnerCheck) SetRoutePlanWindowCommand {
	c.ownerCheck = check
	return c
}

func (c SetRoutePlanWindowCommand) Validate() error {
	return c.guard.Validate(ErrSetRoutePlanWindowCommandIsNotConstructed)
}

func (c SetRoutePlanWindowCommand) PlanID() kernel.UUID {
	return c.planID
}

func (c SetRoutePlanWindowCommand) Start() *time.Time {
	return c.start
}

func (c SetRoutePlanWindowCommand) End() *time.Time {
	return c.end
}

func (c SetRoutePlanWindowCommand) OwnerCheck() OwnerCheck {
	return c.ownerCheck
}

func (c *SetRoutePlanWindowCommand) setPlanID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("route plan id", err)
	}
	c.planID = id
	return nil
}

func (c *SetRoutePlanWindowCommand) checkBounds() error {
	if c.start == nil && c.end == nil {
		return errs.NewValueIsRequiredError("start or end")
	}
	return nil
}
