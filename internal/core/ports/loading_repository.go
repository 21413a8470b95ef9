package ports

import (
	"context"

	"routetrail/internal/core/domain/model/kernel"
	"routetrail/internal/core/domain/model/loading"
)

// LoadingRepository defines the persistence contract for loadings.
type LoadingRepository interface {
	Add(ctx context.Context, aggregate *loading.Loading) error
	Update(ctx context.Context, aggregate *loading.Loading) error
	Get(ctx context.Context, id kernel.UUID) (*loading.Loading, error)
	GetForUpdate(ctx context.Context, id kernel.UUID) (*loading.Loading, error)
	ListByPlan(ctx context.Context, planID kernel.UUID) ([]*loading.Loading, error)
}
