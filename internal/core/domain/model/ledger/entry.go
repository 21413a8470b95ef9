// Package ledger models the append-only status history kept for every route point
// and loading. Entries are immutable once built; the database assigns Seq, which
// breaks ties between entries that share a timestamp.
package ledger

import (
	"errors"
	"time"

	"routetrail/internal/core/domain/model/kernel"
	"routetrail/internal/core/domain/model/status"
	"routetrail/internal/pkg/errs"
)

var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry constructor")

// EntityRef points at the route point or loading a ledger belongs to.
type EntityRef struct {
	Kind status.Kind
	ID   kernel.UUID
}

func NewEntityRef(kind status.Kind, id kernel.UUID) (EntityRef, error) {
	if err := errors.Join(kind.Validate(), id.Validate()); err != nil {
		return EntityRef{}, err
	}
	return EntityRef{Kind: kind, ID: id}, nil
}

func (r EntityRef) String() string {
	return r.Kind.String() + ":" + r.ID.String()
}

// Entry is one recorded status change.
type Entry struct {
	id        kernel.UUID
	seq       int64
	ref       EntityRef
	status    status.Status
	timestamp time.Time
	geo       *kernel.GeoPoint
	note      string

	isConstructed bool
}

// NewEntry builds an entry for a status that was already validated against ref's kind.
func NewEntry(
	ref EntityRef,
	tagged status.Tagged,
	timestamp time.Time,
	geo *kernel.GeoPoint,
	note string,
) (*Entry, error) {
	if err := tagged.Validate(); err != nil {
		return nil, err
	}
	if tagged.Kind() != ref.Kind {
		return nil, errs.NewStatusIsInvalidError(ref.Kind.String(), tagged.String())
	}
	if timestamp.IsZero() {
		return nil, errs.NewValueIsRequiredError("timestamp")
	}

	return &Entry{
		id:            kernel.NewUUID(),
		ref:           ref,
		status:        tagged.Value(),
		timestamp:     timestamp,
		geo:           geo,
		note:          note,
		isConstructed: true,
	}, nil
}

// RestoreEntry rebuilds a persisted entry including its sequence number.
func RestoreEntry(
	id kernel.UUID,
	seq int64,
	ref EntityRef,
	value status.Status,
	timestamp time.Time,
	geo *kernel.GeoPoint,
	note string,
) *Entry {
	return &Entry{
		id:            id,
		seq:           seq,
		ref:           ref,
		status:        value,
		timestamp:     timestamp,
		geo:           geo,
		note:          note,
		isConstructed: true,
	}
}

func (e *Entry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEntryIsNotConstructed
	}
	return nil
}

func (e *Entry) ID() kernel.UUID {
	return e.id
}

func (e *Entry) Seq() int64 {
	return e.seq
}

func (e *Entry) Ref() EntityRef {
	return e.ref
}

func (e *Entry) Status() status.Status {
	return e.status
}

func (e *Entry) Timestamp() time.Time {
	return e.timestamp
}

func (e *Entry) Geo() *kernel.GeoPoint {
	return e.geo
}

func (e *Entry) Note() string {
	return e.note
}

// AssignSeq stores the insertion sequence handed out by the store.
func (e *Entry) AssignSeq(seq int64) {
	e.seq = seq
}
