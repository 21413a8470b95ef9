package status

import (
	"errors"
	"strings"

	"routetrail/internal/pkg/errs"
	"routetrail/internal/pkg/guard"
)

// Status is one value of the canonical vocabulary, stored as its string form.
type Status string

const (
	Planned          Status = "planned"
	EnRoute          Status = "en_route"
	Arrived          Status = "arrived"
	Completed        Status = "completed"
	Skipped          Status = "skipped"
	Loading          Status = "loading"
	LoadingCompleted Status = "loading_completed"
)

// Kind tags the entity a ledger belongs to.
type Kind string

const (
	KindRoutePoint Kind = "route_point"
	KindLoading    Kind = "loading"
)

var (
	ErrKindIsInvalid          = errs.NewValueIsInvalidError("entity kind must be route_point or loading")
	ErrTaggedIsNotConstructed = errors.New("Tagged status must be created via NewPointStatus, NewLoadingStatus or Parse")
)

var vocabulary = map[Kind][]Status{
	KindRoutePoint: {Planned, EnRoute, Arrived, Completed, Skipped},
	KindLoading:    {Planned, EnRoute, Arrived, Loading, LoadingCompleted, Completed, Skipped},
}

func (k Kind) Validate() error {
	if _, ok := vocabulary[k]; !ok {
		return ErrKindIsInvalid
	}
	return nil
}

func (k Kind) String() string {
	return string(k)
}

// Vocabulary lists the statuses the kind recognizes, in lifecycle order.
func (k Kind) Vocabulary() []Status {
	return append([]Status(nil), vocabulary[k]...)
}

// Recognizes reports whether s belongs to the kind's vocabulary.
func (k Kind) Recognizes(s Status) bool {
	for _, v := range vocabulary[k] {
		if v == s {
			return true
		}
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether no further work is expected at the entity.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Skipped
}

// Tagged is a status already validated against an entity kind.
type Tagged struct {
	kind  Kind
	value Status
	guard guard.ConstructorGuard
}

// Parse validates raw against kind's vocabulary. Surrounding whitespace and case
// are ignored. Values outside the vocabulary yield an errs.StatusIsInvalidError.
func Parse(kind Kind, raw string) (Tagged, error) {
	if err := kind.Validate(); err != nil {
		return Tagged{}, err
	}

	s := Status(strings.ToLower(strings.TrimSpace(raw)))
	if !kind.Recognizes(s) {
		return Tagged{}, errs.NewStatusIsInvalidError(kind.String(), raw)
	}

	return Tagged{kind: kind, value: s, guard: guard.NewConstructorGuard()}, nil
}

func NewPointStatus(raw string) (Tagged, error) {
	return Parse(KindRoutePoint, raw)
}

func NewLoadingStatus(raw string) (Tagged, error) {
	return Parse(KindLoading, raw)
}

func (t Tagged) Validate() error {
	return t.guard.Validate(ErrTaggedIsNotConstructed)
}

func (t Tagged) Kind() Kind {
	return t.kind
}

func (t Tagged) Value() Status {
	return t.value
}

func (t Tagged) String() string {
	return string(t.value)
}
