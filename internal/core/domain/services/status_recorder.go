package services

import (
	"errors"
	"time"

	"routetrail/internal/core/domain/model/kernel"
	"routetrail/internal/core/domain/model/ledger"
	"routetrail/internal/core/domain/model/status"
	"routetrail/internal/pkg/errs"
)

var ErrTimestampBeforeHead = errors.New("timestamp is older than the latest recorded status")

// Trackable is an entity that keeps a status ledger: a route point or a loading.
type Trackable interface {
	ID() kernel.UUID
	Kind() status.Kind
	Status() status.Status
	ApplyStatus(tagged status.Tagged, at time.Time, geo *kernel.GeoPoint) error
}

// StatusRecorder turns a requested status change into a ledger entry and
// mirrors it onto the entity. Persisting both in one transaction is the
// caller's job.
type StatusRecorder struct {
	policy status.TransitionPolicy
	now    func() time.Time
}

// NewStatusRecorder builds a recorder. A nil policy accepts every transition and
// a nil clock reads the wall clock.
func NewStatusRecorder(policy status.TransitionPolicy, now func() time.Time) StatusRecorder {
	if policy == nil {
		policy = status.Permissive{}
	}
	if now == nil {
		now = time.Now
	}
	return StatusRecorder{policy: policy, now: now}
}

// Record validates raw against the entity's kind and the transition policy,
// then applies it. head is the entry the entity currently mirrors, nil for an
// empty ledger. A nil at means now, moved forward to the head's timestamp when
// the clock lags behind it. An explicit at older than the head is rejected:
// the new entry has to become the head, or the mirror would drift from it.
func (r StatusRecorder) Record(
	entity Trackable,
	head *ledger.Entry,
	raw string,
	at *time.Time,
	geo *kernel.GeoPoint,
	note string,
) (*ledger.Entry, error) {
	tagged, err := status.Parse(entity.Kind(), raw)
	if err != nil {
		return nil, err
	}

	if err = r.policy.Allow(entity.Kind(), entity.Status(), tagged.Value()); err != nil {
		return nil, err
	}

	timestamp, err := r.timestamp(head, at)
	if err != nil {
		return nil, err
	}

	ref, err := ledger.NewEntityRef(entity.Kind(), entity.ID())
	if err != nil {
		return nil, err
	}

	entry, err := ledger.NewEntry(ref, tagged, timestamp, geo, note)
	if err != nil {
		return nil, err
	}

	if err = entity.ApplyStatus(tagged, timestamp, geo); err != nil {
		return nil, err
	}

	return entry, nil
}

func (r StatusRecorder) timestamp(head *ledger.Entry, at *time.Time) (time.Time, error) {
	if at == nil {
		now := r.now().UTC()
		if head != nil && now.Before(head.Timestamp()) {
			return head.Timestamp(), nil
		}
		return now, nil
	}

	timestamp := at.UTC()
	if head != nil && timestamp.Before(head.Timestamp()) {
		return time.Time{}, errs.NewValueIsInvalidErrorWithCause("timestamp", ErrTimestampBeforeHead)
	}
	return timestamp, nil
}
