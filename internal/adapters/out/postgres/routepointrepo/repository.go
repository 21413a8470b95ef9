package routepointrepo

import (
	"context"

	"routetrail/internal/adapters/out/postgres/pgshared"
	"routetrail/internal/core/domain/model/kernel"
	"routetrail/internal/core/domain/model/point"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormRoutePointRepository implements ports.RoutePointRepository using GORM.
type GormRoutePointRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormRoutePointRepository(db *gorm.DB, tracker aggregateTracker) *GormRoutePointRepository {
	return &GormRoutePointRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormRoutePointRepository) Add(ctx context.Context, aggregate *point.RoutePoint) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgshared.TranslateError(err, "route point order")
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes everything the status ledger mirrors onto the point. The order
// column is left alone.
func (r *GormRoutePointRepository) Update(ctx context.Context, aggregate *point.RoutePoint) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&RoutePointDTO{ID: dto.ID}).
		Select("status", "arrival_time", "departure_time", "duration_minutes", "latitude", "longitude").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pgshared.NotFound(gorm.ErrRecordNotFound, "route point", aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormRoutePointRepository) Get(ctx context.Context, id kernel.UUID) (*point.RoutePoint, error) {
	return r.get(r.db.WithContext(ctx), id)
}

func (r *GormRoutePointRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*point.RoutePoint, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormRoutePointRepository) ListByPlan(ctx context.Context, planID kernel.UUID) ([]*point.RoutePoint, error) {
	if err := planID.Validate(); err != nil {
		return nil, err
	}

	var dtos []RoutePointDTO
	if err := r.db.WithContext(ctx).
		Where("route_plan_id = ?", planID.Bytes()).
		Order("point_order").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	points := make([]*point.RoutePoint, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		points = append(points, p)
	}

	return points, nil
}

func (r *GormRoutePointRepository) UpdateOrder(ctx context.Context, id kernel.UUID, order int) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&RoutePointDTO{}).
		Where("id = ?", id.Bytes()).
		Update("point_order", order)
	if result.Error != nil {
		return pgshared.TranslateError(result.Error, "route point order")
	}
	if result.RowsAffected == 0 {
		return pgshared.NotFound(gorm.ErrRecordNotFound, "route point", id)
	}
	return nil
}

func (r *GormRoutePointRepository) get(db *gorm.DB, id kernel.UUID) (*point.RoutePoint, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RoutePointDTO
	if err := db.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, pgshared.NotFound(err, "route point", id)
	}

	return toDomain(dto)
}
