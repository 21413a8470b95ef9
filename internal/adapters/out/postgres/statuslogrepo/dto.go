// Package statuslogrepo is the append-only store of status ledgers. Seq is a
// database sequence and orders entries that share a timestamp.
package statuslogrepo

import (
	"time"

	"routetrail/internal/adapters/out/postgres/pgshared"
	"routetrail/internal/core/domain/model/kernel"
	"routetrail/internal/core/domain/model/ledger"
	"routetrail/internal/core/domain/model/status"

	"github.com/google/uuid"
)

type StatusLogDTO struct {
	Seq        int64           `gorm:"primaryKey;autoIncrement"`
	ID         uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	EntityType string          `gorm:"not null;index:idx_status_log_entity,priority:1"`
	EntityID   uuid.UUID       `gorm:"type:uuid;not null;index:idx_status_log_entity,priority:2"`
	Status     string          `gorm:"not null"`
	RecordedAt time.Time       `gorm:"not null;index"`
	Geo        pgshared.GeoDTO `gorm:"embedded"`
	Note       string
}

func (StatusLogDTO) TableName() string {
	return "status_log_entries"
}

func fromDomain(entry *ledger.Entry) StatusLogDTO {
	return StatusLogDTO{
		ID:         entry.ID().Bytes(),
		EntityType: entry.Ref().Kind.String(),
		EntityID:   entry.Ref().ID.Bytes(),
		Status:     entry.Status().String(),
		RecordedAt: entry.Timestamp(),
		Geo:        pgshared.FromGeo(entry.Geo()),
		Note:       entry.Note(),
	}
}

func toDomain(dto StatusLogDTO) (*ledger.Entry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	entityID, err := kernel.UUIDFromBytes(dto.EntityID[:])
	if err != nil {
		return nil, err
	}

	ref, err := ledger.NewEntityRef(status.Kind(dto.EntityType), entityID)
	if err != nil {
		return nil, err
	}

	geo, err := dto.Geo.ToGeo()
	if err != nil {
		return nil, err
	}

	return ledger.RestoreEntry(id, dto.Seq, ref, status.Status(dto.Status), dto.RecordedAt, geo, dto.Note), nil
}
