package loadingrepo

import (
	"context"

	"routetrail/internal/adapters/out/postgres/pgshared"
	"routetrail/internal/core/domain/model/kernel"
	"routetrail/internal/core/domain/model/loading"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormLoadingRepository implements ports.LoadingRepository using GORM.
type GormLoadingRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormLoadingRepository(db *gorm.DB, tracker aggregateTracker) *GormLoadingRepository {
	return &GormLoadingRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormLoadingRepository) Add(ctx context.Context, aggregate *loading.Loading) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgshared.TranslateError(err, "loading")
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormLoadingRepository) Update(ctx context.Context, aggregate *loading.Loading) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&LoadingDTO{ID: dto.ID}).
		Select("status", "start_time", "end_time", "latitude", "longitude").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pgshared.NotFound(gorm.ErrRecordNotFound, "loading", aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormLoadingRepository) Get(ctx context.Context, id kernel.UUID) (*loading.Loading, error) {
	return r.get(r.db.WithContext(ctx), id)
}

func (r *GormLoadingRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*loading.Loading, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormLoadingRepository) ListByPlan(ctx context.Context, planID kernel.UUID) ([]*loading.Loading, error) {
	if err := planID.Validate(); err != nil {
		return nil, err
	}

	var dtos []LoadingDTO
	if err := r.db.WithContext(ctx).
		Where("route_plan_id = ?", planID.Bytes()).
		Order("start_time NULLS LAST, id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	loadings := make([]*loading.Loading, 0, len(dtos))
	for _, dto := range dtos {
		l, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		loadings = append(loadings, l)
	}

	return loadings, nil
}

func (r *GormLoadingRepository) get(db *gorm.DB, id kernel.UUID) (*loading.Loading, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto LoadingDTO
	if err := db.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, pgshared.NotFound(err, "loading", id)
	}

	return toDomain(dto)
}
