package ports

import (
	"context"

	"routetrail/internal/core/domain/model/ledger"
)

// StatusLogRepository is the append-only store of status ledgers.
type StatusLogRepository interface {
	// Append writes the entry and assigns its sequence number. Entries are
	// never updated or deleted.
	Append(ctx context.Context, entry *ledger.Entry) error

	// ListByEntity returns one entity's ledger ordered by timestamp, then by
	// sequence number.
	ListByEntity(ctx context.Context, ref ledger.EntityRef) ([]*ledger.Entry, error)

	// Head returns the entry the entity's status currently mirrors: the latest
	// by timestamp, ties broken by sequence number. Nil when the ledger is empty.
	Head(ctx context.Context, ref ledger.EntityRef) (*ledger.Entry, error)
}
