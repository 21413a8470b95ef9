package routeplanrepo

import (
	"context"
	"errors"
	"time"

	"routetrail/internal/adapters/out/postgres/pgshared"
	"routetrail/internal/core/domain/model/kernel"
	"routetrail/internal/core/domain/model/plan"
	"routetrail/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormRoutePlanRepository implements ports.RoutePlanRepository using GORM.
type GormRoutePlanRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormRoutePlanRepository(db *gorm.DB, tracker aggregateTracker) *GormRoutePlanRepository {
	return &GormRoutePlanRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormRoutePlanRepository) Add(ctx context.Context, aggregate *plan.RoutePlan) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgshared.TranslateError(err, "route plan")
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormRoutePlanRepository) Update(ctx context.Context, aggregate *plan.RoutePlan) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&RoutePlanDTO{ID: dto.ID}).
		Select("status", "start_time", "end_time", "notes").
		Updates(&dto)
	if result.Error != nil {
		return pgshared.TranslateError(result.Error, "route plan")
	}
	if result.RowsAffected == 0 {
		return pgshared.NotFound(gorm.ErrRecordNotFound, "route plan", aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormRoutePlanRepository) Get(ctx context.Context, id kernel.UUID) (*plan.RoutePlan, error) {
	return r.get(r.db.WithContext(ctx), id)
}

func (r *GormRoutePlanRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*plan.RoutePlan, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

// Ensure inserts the plan unless one already exists for the vehicle and date,
// then reads it back under a row lock. The insert never fails on a concurrent
// creation, so both callers see the same plan.
func (r *GormRoutePlanRepository) Ensure(ctx context.Context, vehicleID kernel.UUID, date time.Time) (*plan.RoutePlan, error) {
	candidate, err := plan.NewRoutePlan(kernel.NewUUID(), vehicleID, date, plan.AutoCreatedNote)
	if err != nil {
		return nil, err
	}

	dto := fromDomain(candidate)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "vehicle_id"}, {Name: "date"}},
			DoNothing: true,
		}).
		Create(&dto)
	if result.Error != nil {
		return nil, pgshared.TranslateError(result.Error, "route plan")
	}
	if result.RowsAffected == 1 {
		r.tracker.TrackAggregate(candidate.ID(), candidate)
	}

	var existing RoutePlanDTO
	if err = r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("vehicle_id = ? AND date = ?", vehicleID.Bytes(), candidate.Date().Format(dateLayout)).
		First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			key := vehicleID.String() + "/" + candidate.Date().Format(dateLayout)
			return nil, errs.NewObjectNotFoundError("route plan", key)
		}
		return nil, pgshared.TranslateError(err, "route plan")
	}

	return toDomain(existing)
}

func (r *GormRoutePlanRepository) ListByDate(ctx context.Context, date time.Time) ([]*plan.RoutePlan, error) {
	var dtos []RoutePlanDTO
	if err := r.db.WithContext(ctx).
		Where("date = ? AND status <> ?", kernel.DateOf(date).Format(dateLayout), plan.Completed.String()).
		Order("vehicle_id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	plans := make([]*plan.RoutePlan, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}

	return plans, nil
}

func (r *GormRoutePlanRepository) get(db *gorm.DB, id kernel.UUID) (*plan.RoutePlan, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RoutePlanDTO
	if err := db.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, pgshared.NotFound(err, "route plan", id)
	}

	return toDomain(dto)
}
