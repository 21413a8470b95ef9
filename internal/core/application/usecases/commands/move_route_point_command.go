package commands

import (
	"errors"

	"routetrail/internal/core/domain/model/kernel"
	"routetrail/internal/pkg/errs"
	"routetrail/internal/pkg/guard"
)

var ErrMoveRoutePointCommandIsNotConstructed = errors.New(
	"MoveRoutePointCommand must be created via NewMoveRoutePointCommand constructor",
)

// MoveRoutePointCommand changes the position of a point inside its plan.
type MoveRoutePointCommand struct { //nolint:recvcheck //using for validation
	pointID    kernel.UUID
	newOrder   int
	ownerCheck OwnerCheck

	guard guard.ConstructorGuard
}

func NewMoveRoutePointCommand(pointID kernel.UUID, newOrder int) (MoveRoutePointCommand, error) {
	cmd := MoveRoutePointCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPointID(pointID),
		cmd.setNewOrder(newOrder),
	); err != nil {
		return MoveRoutePointCommand{}, err
	}

	return cmd, nil
}

func (c MoveRoutePointCommand) WithOwnerCheck(check OwnerCheck) MoveRoutePointCommand {
	c.ownerCheck = check
	return c
}

func (c MoveRoutePointCommand) Validate() error {
	return c.guard.Validate(ErrMoveRoutePointCommandIsNotConstructed)
}

func (c MoveRoutePointCommand) PointID() kernel.UUID {
	return c.pointID
}

func (c MoveRoutePointCommand) NewOrder() int {
	return c.newOrder
}

func (c MoveRoutePointCommand) OwnerCheck() OwnerCheck {
	return c.ownerCheck
}

func (c *MoveRoutePointCommand) setPointID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.pointID = id
	return nil
}

func (c *MoveRoutePointCommand) setNewOrder(order int) error {
	if order < 1 {
		return errs.NewOrderIsInvalidError(order)
	}
	c.newOrder = order
	return nil
}
