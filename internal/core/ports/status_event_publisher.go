package ports

import (
	"context"

	"routetrail/internal/core/domain/model/ledger"
)

// StatusEventPublisher announces ledger entries after their transaction commits.
type StatusEventPublisher interface {
	PublishStatusChanged(ctx context.Context, entry *ledger.Entry) error
}
