// Package routepointrepo persists route points. Orders are unique per plan
// through idx_route_points_plan_order.
package routepointrepo

import (
	"time"

	"routetrail/internal/adapters/out/postgres/pgshared"
	"routetrail/internal/core/domain/model/kernel"
	"routetrail/internal/core/domain/model/point"
	"routetrail/internal/core/domain/model/status"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RoutePointDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	RoutePlanID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_route_points_plan_order"`
	Order           int       `gorm:"column:point_order;not null;uniqueIndex:idx_route_points_plan_order"`
	Doc             string
	Payment         decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	Counterparty    string
	AddressID       *uuid.UUID      `gorm:"type:uuid"`
	StoreID         *uuid.UUID      `gorm:"type:uuid"`
	Geo             pgshared.GeoDTO `gorm:"embedded"`
	ArrivalTime     *time.Time
	DepartureTime   *time.Time
	DurationMinutes *int
	Note            string
	Status          string `gorm:"not null;index"`
}

func (RoutePointDTO) TableName() string {
	return "route_points"
}

func fromDomain(aggregate *point.RoutePoint) RoutePointDTO {
	d := aggregate.Details()
	return RoutePointDTO{
		ID:              aggregate.ID().Bytes(),
		RoutePlanID:     aggregate.RoutePlanID().Bytes(),
		Order:           aggregate.Order(),
		Doc:             d.Doc,
		Payment:         d.Payment,
		Counterparty:    d.Counterparty,
		AddressID:       pgshared.OptionalUUID(d.AddressID),
		StoreID:         pgshared.OptionalUUID(d.StoreID),
		Geo:             pgshared.FromGeo(d.Geo),
		ArrivalTime:     aggregate.ArrivalTime(),
		DepartureTime:   aggregate.DepartureTime(),
		DurationMinutes: aggregate.DurationMinutes(),
		Note:            d.Note,
		Status:          aggregate.Status().String(),
	}
}

func toDomain(dto RoutePointDTO) (*point.RoutePoint, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	planID, err := kernel.UUIDFromBytes(dto.RoutePlanID[:])
	if err != nil {
		return nil, err
	}

	addressID, err := pgshared.ToOptionalUUID(dto.AddressID)
	if err != nil {
		return nil, err
	}

	storeID, err := pgshared.ToOptionalUUID(dto.StoreID)
	if err != nil {
		return nil, err
	}

	geo, err := dto.Geo.ToGeo()
	if err != nil {
		return nil, err
	}

	details := point.Details{
		Doc:          dto.Doc,
		Payment:      dto.Payment,
		Counterparty: dto.Counterparty,
		AddressID:    addressID,
		StoreID:      storeID,
		Geo:          geo,
		Note:         dto.Note,
	}

	return point.Restore(
		id,
		planID,
		dto.Order,
		details,
		status.Status(dto.Status),
		dto.ArrivalTime,
		dto.DepartureTime,
		dto.DurationMinutes,
	), nil
}
