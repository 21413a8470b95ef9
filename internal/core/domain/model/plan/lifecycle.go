package plan

import (
	"fmt"

	"routetrail/internal/pkg/errs"
)

// Lifecycle is the state of a route plan.
type Lifecycle int

const (
	// Unknown catches uninitialized values.
	Unknown Lifecycle = iota
	Planned
	InProgress
	Completed
)

func lifecycleStrings() map[Lifecycle]string {
	return map[Lifecycle]string{
		Planned:    "planned",
		InProgress: "in_progress",
		Completed:  "completed",
	}
}

// ParseLifecycle reads the persisted form of a lifecycle.
func ParseLifecycle(s string) (Lifecycle, error) {
	for l, str := range lifecycleStrings() {
		if str == s {
			return l, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("lifecycle", fmt.Errorf("%q is not a valid lifecycle", s))
}

func (l Lifecycle) Validate() error {
	if _, ok := lifecycleStrings()[l]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("lifecycle", fmt.Errorf("%d is not a valid lifecycle", l))
	}
	return nil
}

func (l Lifecycle) String() string {
	if str, ok := lifecycleStrings()[l]; ok {
		return str
	}
	return "unknown"
}

// Start moves a planned plan into progress. Starting a plan already in
// progress is a no-op.
func (l Lifecycle) Start() (Lifecycle, error) {
	if l != Planned && l != InProgress {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"lifecycle",
			fmt.Errorf("%s is not a valid lifecycle to start", l),
		)
	}
	return InProgress, nil
}

func (l Lifecycle) Complete() (Lifecycle, error) {
	if l != InProgress {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"lifecycle",
			fmt.Errorf("%s is not a valid lifecycle to complete", l),
		)
	}
	return Completed, nil
}
