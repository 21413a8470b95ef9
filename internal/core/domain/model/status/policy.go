package status

import (
	"fmt"
	"strings"

	"routetrail/internal/pkg/errs"
)

const (
	PolicyPermissive = "permissive"
	PolicyMonotonic  = "monotonic"
)

// TransitionPolicy decides whether an entity of kind may move from one status to another.
type TransitionPolicy interface {
	Allow(kind Kind, from, to Status) error
}

// PolicyByName resolves the configured policy. An empty name selects Permissive.
func PolicyByName(name string) (TransitionPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", PolicyPermissive:
		return Permissive{}, nil
	case PolicyMonotonic, "strict":
		return Monotonic{}, nil
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause("status policy",
			fmt.Errorf("%q is not one of %s, %s", name, PolicyPermissive, PolicyMonotonic))
	}
}

// Permissive accepts any transition between recognized statuses.
type Permissive struct{}

func (Permissive) Allow(kind Kind, _, to Status) error {
	if !kind.Recognizes(to) {
		return errs.NewStatusIsInvalidError(kind.String(), to.String())
	}
	return nil
}

// Monotonic only lets an entity move forward through its lifecycle:
//
//	route point: planned -> en_route -> arrived -> completed
//	loading:     planned -> en_route -> arrived -> loading -> loading_completed -> completed
//
// Steps may be skipped. skipped is reachable from planned and en_route only.
// completed and skipped are final. Re-recording the current status is allowed.
type Monotonic struct{}

var ranks = map[Kind]map[Status]int{
	KindRoutePoint: {Planned: 0, EnRoute: 1, Arrived: 2, Completed: 3},
	KindLoading:    {Planned: 0, EnRoute: 1, Arrived: 2, Loading: 3, LoadingCompleted: 4, Completed: 5},
}

func (Monotonic) Allow(kind Kind, from, to Status) error {
	if !kind.Recognizes(to) {
		return errs.NewStatusIsInvalidError(kind.String(), to.String())
	}
	if from == to {
		return nil
	}

	refuse := func() error {
		return errs.NewStatusIsInvalidErrorWithCause(kind.String(), to.String(),
			fmt.Errorf("%s cannot follow %s", to, from))
	}

	if from.IsTerminal() {
		return refuse()
	}
	if to == Skipped {
		if from == Planned || from == EnRoute {
			return nil
		}
		return refuse()
	}

	fromRank, ok := ranks[kind][from]
	if !ok {
		// an unrecognized current value only comes from data written outside the core
		return nil
	}
	if ranks[kind][to] <= fromRank {
		return refuse()
	}
	return nil
}
