// Package routeplanrepo persists route plans.
package routeplanrepo

import (
	"time"

	"routetrail/internal/core/domain/model/kernel"
	"routetrail/internal/core/domain/model/plan"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// RoutePlanDTO is the route_plans row. (vehicle_id, date) is unique.
type RoutePlanDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	VehicleID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_route_plans_vehicle_date"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:idx_route_plans_vehicle_date;index"`
	Status    string    `gorm:"not null;default:planned"`
	StartTime *time.Time
	EndTime   *time.Time
	Notes     string
}

func (RoutePlanDTO) TableName() string {
	return "route_plans"
}

func fromDomain(aggregate *plan.RoutePlan) RoutePlanDTO {
	return RoutePlanDTO{
		ID:        aggregate.ID().Bytes(),
		VehicleID: aggregate.VehicleID().Bytes(),
		Date:      aggregate.Date(),
		Status:    aggregate.Lifecycle().String(),
		StartTime: aggregate.StartTime(),
		EndTime:   aggregate.EndTime(),
		Notes:     aggregate.Notes(),
	}
}

func toDomain(dto RoutePlanDTO) (*plan.RoutePlan, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	vehicleID, err := kernel.UUIDFromBytes(dto.VehicleID[:])
	if err != nil {
		return nil, err
	}

	lifecycle, err := plan.ParseLifecycle(dto.Status)
	if err != nil {
		return nil, err
	}

	return plan.Restore(id, vehicleID, dto.Date, lifecycle, dto.StartTime, dto.EndTime, dto.Notes), nil
}
