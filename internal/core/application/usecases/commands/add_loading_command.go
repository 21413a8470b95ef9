package commands

import (
	"errors"

	"routetrail/internal/core/domain/model/kernel"
	"routetrail/internal/core/domain/model/loading"
	"routetrail/internal/pkg/errs"
	"routetrail/internal/pkg/guard"
)

var ErrAddLoadingCommandIsNotConstructed = errors.New(
	"AddLoadingCommand must be created via NewAddLoadingCommand constructor",
)

// AddLoadingCommand attaches a pickup event to a plan.
type AddLoadingCommand struct { //nolint:recvcheck //using for validation
	loadingID  kernel.UUID
	planID     kernel.UUID
	details    loading.Details
	ownerCheck OwnerCheck

	guard guard.ConstructorGuard
}

func NewAddLoadingCommand(loadingID, planID kernel.UUID, details loading.Details) (AddLoadingCommand, error) {
	cmd := AddLoadingCommand{
		details: details,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setLoadingID(loadingID),
		cmd.setPlanID(planID),
	); err != nil {
		return AddLoadingCommand{}, err
	}

	return cmd, nil
}

func (c AddLoadingCommand) WithOwnerCheck(check OwnerCheck) AddLoadingCommand {
	c.ownerCheck = check
	return c
}

func (c AddLoadingCommand) Validate() error {
	return c.guard.Validate(ErrAddLoadingCommandIsNotConstructed)
}

func (c AddLoadingCommand) LoadingID() kernel.UUID {
	return c.loadingID
}

func (c AddLoadingCommand) PlanID() kernel.UUID {
	return c.planID
}

func (c AddLoadingCommand) Details() loading.Details {
	return c.details
}

func (c AddLoadingCommand) OwnerCheck() OwnerCheck {
	return c.ownerCheck
}

func (c *AddLoadingCommand) setLoadingID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.loadingID = id
	return nil
}

func (c *AddLoadingCommand) setPlanID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("route plan id", err)
	}
	c.planID = id
	return nil
}
