package services

import (
	"cmp"
	"slices"
	"time"

	"routetrail/internal/core/domain/model/kernel"
	"routetrail/internal/core/domain/model/ledger"
	"routetrail/internal/core/domain/model/status"
)

// TimelineEvent is one ledger entry decorated for display.
type TimelineEvent struct {
	EntryID    kernel.UUID
	Seq        int64
	EntityKind status.Kind
	EntityID   kernel.UUID
	Label      string
	Status     status.Status
	Timestamp  time.Time
	Geo        *kernel.GeoPoint
	Note       string
}

// TimelineMerger combines the ledgers of every point and loading of a plan.
type TimelineMerger struct{}

func NewTimelineMerger() TimelineMerger {
	return TimelineMerger{}
}

// Merge returns every entry, oldest first. Entries with equal timestamps keep
// insertion order. Labels are looked up by entity; a missing label stays empty.
func (TimelineMerger) Merge(entries []*ledger.Entry, labels map[ledger.EntityRef]string) []TimelineEvent {
	events := make([]TimelineEvent, 0, len(entries))
	for _, e := range entries {
		events = append(events, TimelineEvent{
			EntryID:    e.ID(),
			Seq:        e.Seq(),
			EntityKind: e.Ref().Kind,
			EntityID:   e.Ref().ID,
			Label:      labels[e.Ref()],
			Status:     e.Status(),
			Timestamp:  e.Timestamp(),
			Geo:        e.Geo(),
			Note:       e.Note(),
		})
	}

	slices.SortStableFunc(events, func(a, b TimelineEvent) int {
		if c := a.Timestamp.Compare(b.Timestamp); c != 0 {
			return c
		}
		return cmp.Compare(a.Seq, b.Seq)
	})

	return events
}
