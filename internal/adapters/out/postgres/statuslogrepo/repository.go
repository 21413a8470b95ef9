package statuslogrepo

import (
	"context"

	"routetrail/internal/core/domain/model/kernel"
	"routetrail/internal/core/domain/model/ledger"

	"gorm.io/gorm"
)

// GormStatusLogRepository implements ports.StatusLogRepository using GORM.
// Appended entries are handed to the tracker so the unit of work can publish
// them after commit.
type GormStatusLogRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormStatusLogRepository(db *gorm.DB, tracker aggregateTracker) *GormStatusLogRepository {
	return &GormStatusLogRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormStatusLogRepository) Append(ctx context.Context, entry *ledger.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}
	entry.AssignSeq(dto.Seq)

	r.tracker.TrackAggregate(entry.ID(), entry)
	return nil
}

func (r *GormStatusLogRepository) ListByEntity(ctx context.Context, ref ledger.EntityRef) ([]*ledger.Entry, error) {
	if err := ref.ID.Validate(); err != nil {
		return nil, err
	}

	var dtos []StatusLogDTO
	if err := r.db.WithContext(ctx).
		Where("entity_type = ? AND entity_id = ?", ref.Kind.String(), ref.ID.Bytes()).
		Order("recorded_at, seq").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	entries := make([]*ledger.Entry, 0, len(dtos))
	for _, dto := range dtos {
		e, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, nil
}

func (r *GormStatusLogRepository) Head(ctx context.Context, ref ledger.EntityRef) (*ledger.Entry, error) {
	if err := ref.ID.Validate(); err != nil {
		return nil, err
	}

	var dtos []StatusLogDTO
	if err := r.db.WithContext(ctx).
		Where("entity_type = ? AND entity_id = ?", ref.Kind.String(), ref.ID.Bytes()).
		Order("recorded_at DESC, seq DESC").
		Limit(1).
		Find(&dtos).Error; err != nil {
		return nil, err
	}
	if len(dtos) == 0 {
		return nil, nil
	}

	return toDomain(dtos[0])
}
