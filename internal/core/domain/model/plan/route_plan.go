package plan

import (
	"errors"
	"fmt"
	"time"

	"routetrail/internal/core/domain/model/kernel"
	"routetrail/internal/pkg/errs"
)

// AutoCreatedNote marks plans created lazily on the first write for a date.
const AutoCreatedNote = "created automatically"

var ErrRoutePlanIsNotConstructed = errors.New("RoutePlan must be created via NewRoutePlan constructor")

// RoutePlan is one vehicle's worklist for one calendar date. (vehicle, date) is unique.
type RoutePlan struct {
	id        kernel.UUID
	vehicleID kernel.UUID
	date      time.Time
	lifecycle Lifecycle
	startTime *time.Time
	endTime   *time.Time
	notes     string

	isConstructed bool
}

func NewRoutePlan(id, vehicleID kernel.UUID, date time.Time, notes string) (*RoutePlan, error) {
	p := &RoutePlan{
		lifecycle:     Planned,
		notes:         notes,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setVehicleID(vehicleID),
		p.setDate(date),
	); err != nil {
		return nil, err
	}

	return p, nil
}

func Restore(
	id, vehicleID kernel.UUID,
	date time.Time,
	lifecycle Lifecycle,
	startTime, endTime *time.Time,
	notes string,
) *RoutePlan {
	return &RoutePlan{
		id:            id,
		vehicleID:     vehicleID,
		date:          kernel.DateOf(date),
		lifecycle:     lifecycle,
		startTime:     startTime,
		endTime:       endTime,
		notes:         notes,
		isConstructed: true,
	}
}

func (p *RoutePlan) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrRoutePlanIsNotConstructed
	}
	return nil
}

func (p *RoutePlan) ID() kernel.UUID {
	return p.id
}

func (p *RoutePlan) VehicleID() kernel.UUID {
	return p.vehicleID
}

func (p *RoutePlan) Date() time.Time {
	return p.date
}

func (p *RoutePlan) Lifecycle() Lifecycle {
	return p.lifecycle
}

func (p *RoutePlan) StartTime() *time.Time {
	return p.startTime
}

func (p *RoutePlan) EndTime() *time.Time {
	return p.endTime
}

func (p *RoutePlan) Notes() string {
	return p.notes
}

// SetWindow overwrites the start and end of the plan. A nil argument keeps the
// current value. The resulting window must not end before it starts.
func (p *RoutePlan) SetWindow(start, end *time.Time) error {
	newStart, newEnd := p.startTime, p.endTime
	if start != nil {
		newStart = start
	}
	if end != nil {
		newEnd = end
	}

	if newStart != nil && newEnd != nil && newEnd.Before(*newStart) {
		return errs.NewValueIsInvalidErrorWithCause("route plan window",
			fmt.Errorf("end %s is before start %s", newEnd.Format(time.RFC3339), newStart.Format(time.RFC3339)))
	}

	p.startTime, p.endTime = newStart, newEnd
	return nil
}

// Progress summarizes the points and loadings of a plan for Sync.
type Progress struct {
	Points          int
	TerminalPoints  int
	Started         bool
	EarliestArrival *time.Time
	LatestDeparture *time.Time
}

// Sync derives the lifecycle from progress. A plan with any point or loading
// past planned is in progress; a plan whose points are all completed or skipped
// is completed. Window bounds are only filled in when unset. It reports whether
// anything changed.
func (p *RoutePlan) Sync(progress Progress) (bool, error) {
	if p.lifecycle == Completed {
		return false, nil
	}

	changed := false
	allDone := progress.Points > 0 && progress.TerminalPoints == progress.Points

	if progress.Started || allDone {
		if p.lifecycle != InProgress {
			next, err := p.lifecycle.Start()
			if err != nil {
				return false, err
			}
			p.lifecycle = next
			changed = true
		}
		if p.startTime == nil && progress.EarliestArrival != nil {
			p.startTime = progress.EarliestArrival
			changed = true
		}
	}

	if allDone {
		next, err := p.lifecycle.Complete()
		if err != nil {
			return changed, err
		}
		p.lifecycle = next
		if p.endTime == nil && progress.LatestDeparture != nil {
			p.endTime = progress.LatestDeparture
		}
		changed = true
	}

	return changed, nil
}

func (p *RoutePlan) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *RoutePlan) setVehicleID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("vehicle id", err)
	}
	p.vehicleID = id
	return nil
}

func (p *RoutePlan) setDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("date")
	}
	p.date = kernel.DateOf(date)
	return nil
}
