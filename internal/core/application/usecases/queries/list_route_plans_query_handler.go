package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListRoutePlansQueryHandler struct {
	db *gorm.DB
}

func NewListRoutePlansQueryHandler(db *gorm.DB) ListRoutePlansQueryHandler {
	return ListRoutePlansQueryHandler{db: db}
}

func (h ListRoutePlansQueryHandler) Handle(
	ctx context.Context,
	query ListRoutePlansQuery,
) (ListRoutePlansQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListRoutePlansQueryResponse{}, err
	}

	filter := query.Filter()
	stmt := h.db.WithContext(ctx).
		Table("route_plans rp").
		Select(`
			rp.id,
			rp.date,
			rp.status,
			rp.vehicle_id,
			COALESCE(v.plate_number, ''),
			v.owner_id,
			TRIM(COALESCE(d.first_name, '') || ' ' || COALESCE(d.last_name, '')),
			(SELECT COUNT(*) FROM route_points p WHERE p.route_plan_id = rp.id)
		`).
		Joins("LEFT JOIN vehicles v ON v.id = rp.vehicle_id").
		Joins("LEFT JOIN drivers d ON d.id = v.owner_id")

	if filter.Start != nil {
		stmt = stmt.Where("rp.date >= ?", filter.Start.Format(dateLayout))
	}
	if filter.End != nil {
		stmt = stmt.Where("rp.date <= ?", filter.End.Format(dateLayout))
	}
	if filter.VehicleID != nil {
		stmt = stmt.Where("rp.vehicle_id = ?", filter.VehicleID.String())
	}
	if filter.DriverID != nil {
		stmt = stmt.Where("v.owner_id = ?", filter.DriverID.String())
	}

	rows, err := stmt.Order("rp.date, v.plate_number, rp.id").Rows()
	if err != nil {
		return ListRoutePlansQueryResponse{}, err
	}
	defer rows.Close()

	response := ListRoutePlansQueryResponse{Plans: make([]RoutePlanSummary, 0)}
	for rows.Next() {
		var (
			summary       RoutePlanSummary
			id, vehicleID uuid.UUID
			driverID      uuid.NullUUID
		)
		if err = rows.Scan(
			&id,
			&summary.Date,
			&summary.Status,
			&vehicleID,
			&summary.PlateNumber,
			&driverID,
			&summary.DriverName,
			&summary.PointsCount,
		); err != nil {
			return ListRoutePlansQueryResponse{}, err
		}

		if summary.ID, err = toUUID(id); err != nil {
			return ListRoutePlansQueryResponse{}, err
		}
		if summary.VehicleID, err = toUUID(vehicleID); err != nil {
			return ListRoutePlansQueryResponse{}, err
		}
		if summary.DriverID, err = toOptionalUUID(driverID); err != nil {
			return ListRoutePlansQueryResponse{}, err
		}
		summary.Date = summary.Date.UTC()

		response.Plans = append(response.Plans, summary)
		response.TotalPoints += summary.PointsCount
	}
	if err = rows.Err(); err != nil {
		return ListRoutePlansQueryResponse{}, err
	}
	response.TotalPlans = len(response.Plans)

	return response, nil
}
