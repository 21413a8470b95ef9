// Package loadingrepo persists loadings.
package loadingrepo

import (
	"time"

	"routetrail/internal/adapters/out/postgres/pgshared"
	"routetrail/internal/core/domain/model/kernel"
	"routetrail/internal/core/domain/model/loading"
	"routetrail/internal/core/domain/model/status"

	"github.com/google/uuid"
)

type LoadingDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	RoutePlanID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	LoadingPlaceID *uuid.UUID `gorm:"type:uuid"`
	StartTime      *time.Time
	EndTime        *time.Time
	DocNumber      string
	Volume         *float64
	Weight         *float64
	Note           string
	Geo            pgshared.GeoDTO `gorm:"embedded"`
	Status         string          `gorm:"not null;index"`
}

func (LoadingDTO) TableName() string {
	return "loadings"
}

func fromDomain(aggregate *loading.Loading) LoadingDTO {
	d := aggregate.Details()
	return LoadingDTO{
		ID:             aggregate.ID().Bytes(),
		RoutePlanID:    aggregate.RoutePlanID().Bytes(),
		LoadingPlaceID: pgshared.OptionalUUID(d.LoadingPlaceID),
		StartTime:      d.StartTime,
		EndTime:        d.EndTime,
		DocNumber:      d.DocNumber,
		Volume:         d.Volume,
		Weight:         d.Weight,
		Note:           d.Note,
		Geo:            pgshared.FromGeo(d.Geo),
		Status:         aggregate.Status().String(),
	}
}

func toDomain(dto LoadingDTO) (*loading.Loading, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	planID, err := kernel.UUIDFromBytes(dto.RoutePlanID[:])
	if err != nil {
		return nil, err
	}

	placeID, err := pgshared.ToOptionalUUID(dto.LoadingPlaceID)
	if err != nil {
		return nil, err
	}

	geo, err := dto.Geo.ToGeo()
	if err != nil {
		return nil, err
	}

	details := loading.Details{
		LoadingPlaceID: placeID,
		StartTime:      dto.StartTime,
		EndTime:        dto.EndTime,
		DocNumber:      dto.DocNumber,
		Volume:         dto.Volume,
		Weight:         dto.Weight,
		Note:           dto.Note,
		Geo:            geo,
	}

	return loading.Restore(id, planID, details, status.Status(dto.Status)), nil
}
