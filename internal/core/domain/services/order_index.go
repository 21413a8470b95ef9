package services

import (
	"cmp"
	"slices"

	"routetrail/internal/core/domain/model/kernel"
	"routetrail/internal/pkg/errs"
)

// ParkingOrder is the temporary position a moving point occupies while the
// points between its old and new position shift.
const ParkingOrder = 0

// Slot is the position of one point inside its plan.
type Slot struct {
	PointID kernel.UUID
	Order   int
}

// Step is one order write. Steps must be applied in the order they are returned;
// at no point do two points of the plan share an order.
type Step struct {
	PointID kernel.UUID
	From    int
	To      int
}

// OrderIndex keeps the orders of a plan's points unique and gap-free.
//
// It only plans writes. Callers hold the plan lock while loading the slots and
// applying the steps.
//
// Example usage:
//
//	index := NewOrderIndex()
//	assigned, steps, err := index.PlanInsert(slots, &desired)
//	if err != nil {
//	    return err
//	}
//	for _, s := range steps {
//	    repo.UpdateOrder(ctx, s.PointID, s.To)
//	}
type OrderIndex struct{}

func NewOrderIndex() OrderIndex {
	return OrderIndex{}
}

// PlanInsert returns the order a new point receives and the shifts that make
// room for it. Without a desired order the point goes last. A desired order past
// the end is clamped to the end.
func (OrderIndex) PlanInsert(existing []Slot, desired *int) (int, []Step, error) {
	last, err := lastOrder(existing)
	if err != nil {
		return 0, nil, err
	}

	if desired == nil {
		return last + 1, nil, nil
	}
	if *desired < 1 {
		return 0, nil, errs.NewOrderIsInvalidError(*desired)
	}
	target := min(*desired, last+1)

	shifted := make([]Slot, 0, len(existing))
	for _, s := range existing {
		if s.Order >= target {
			shifted = append(shifted, s)
		}
	}
	// highest first so every slot is vacated before it is taken
	slices.SortFunc(shifted, func(a, b Slot) int { return cmp.Compare(b.Order, a.Order) })

	steps := make([]Step, 0, len(shifted))
	for _, s := range shifted {
		steps = append(steps, Step{PointID: s.PointID, From: s.Order, To: s.Order + 1})
	}

	return target, steps, nil
}

// PlanMove returns the final order of the point and the writes that relocate it.
// Only points between the old and the new position move, by one step toward the
// vacated slot. A new order past the end is clamped to the end. Moving a point
// to its current order yields no steps.
func (OrderIndex) PlanMove(existing []Slot, pointID kernel.UUID, newOrder int) (int, []Step, error) {
	last, err := lastOrder(existing)
	if err != nil {
		return 0, nil, err
	}

	idx := slices.IndexFunc(existing, func(s Slot) bool { return s.PointID.IsEqual(pointID) })
	if idx < 0 {
		return 0, nil, errs.NewObjectNotFoundError("route point", pointID.String())
	}
	current := existing[idx].Order

	if newOrder < 1 {
		return 0, nil, errs.NewOrderIsInvalidError(newOrder)
	}
	target := min(newOrder, last)
	if target == current {
		return current, nil, nil
	}

	var (
		window []Slot
		delta  int
	)
	for _, s := range existing {
		switch {
		case target > current && s.Order > current && s.Order <= target:
			window = append(window, s)
		case target < current && s.Order >= target && s.Order < current:
			window = append(window, s)
		}
	}
	if target > current {
		delta = -1
		slices.SortFunc(window, func(a, b Slot) int { return cmp.Compare(a.Order, b.Order) })
	} else {
		delta = 1
		slices.SortFunc(window, func(a, b Slot) int { return cmp.Compare(b.Order, a.Order) })
	}

	steps := make([]Step, 0, len(window)+2)
	steps = append(steps, Step{PointID: pointID, From: current, To: ParkingOrder})
	for _, s := range window {
		steps = append(steps, Step{PointID: s.PointID, From: s.Order, To: s.Order + delta})
	}
	steps = append(steps, Step{PointID: pointID, From: ParkingOrder, To: target})

	return target, steps, nil
}

func lastOrder(existing []Slot) (int, error) {
	seen := make(map[int]struct{}, len(existing))
	last := 0
	for _, s := range existing {
		if _, dup := seen[s.Order]; dup || s.Order < 1 {
			return 0, errs.NewConflictError("route point order")
		}
		seen[s.Order] = struct{}{}
		last = max(last, s.Order)
	}
	return last, nil
}
