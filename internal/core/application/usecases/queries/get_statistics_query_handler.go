package queries

import (
	"context"
	"database/sql"
	"time"

	"routetrail/internal/core/domain/model/status"
	"routetrail/internal/core/domain/services"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetStatisticsQueryHandler loads one fact per point in the range and hands
// them to the aggregator. Facts, drivers and vehicles are read from a single
// repeatable-read snapshot so the figures agree with each other.
type GetStatisticsQueryHandler struct {
	db         *gorm.DB
	aggregator services.StatisticsAggregator
}

func NewGetStatisticsQueryHandler(db *gorm.DB, aggregator services.StatisticsAggregator) GetStatisticsQueryHandler {
	return GetStatisticsQueryHandler{db: db, aggregator: aggregator}
}

func (h GetStatisticsQueryHandler) Handle(
	ctx context.Context,
	query GetStatisticsQuery,
) (GetStatisticsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetStatisticsQueryResponse{}, err
	}

	var (
		facts    []services.PointFact
		drivers  []services.Party
		vehicles []services.Party
	)
	err := h.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if facts, err = pointFacts(tx, query.Start(), query.End()); err != nil {
			return err
		}
		if drivers, err = parties(tx, `
			SELECT id, TRIM(COALESCE(first_name, '') || ' ' || COALESCE(last_name, ''))
			FROM drivers
			ORDER BY last_name, first_name, id
		`); err != nil {
			return err
		}
		vehicles, err = parties(tx, `
			SELECT id, COALESCE(plate_number, '')
			FROM vehicles
			ORDER BY plate_number, id
		`)
		return err
	}, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		return GetStatisticsQueryResponse{}, err
	}

	return GetStatisticsQueryResponse{
		Start:  query.Start(),
		End:    query.End(),
		Report: h.aggregator.Aggregate(facts, drivers, vehicles),
	}, nil
}

func pointFacts(tx *gorm.DB, start, end time.Time) ([]services.PointFact, error) {
	rows, err := tx.Raw(`
		WITH latest AS (
			SELECT
				entity_id,
				status,
				ROW_NUMBER() OVER (PARTITION BY entity_id ORDER BY recorded_at DESC, seq DESC) AS rn
			FROM status_log_entries
			WHERE entity_type = ?
		)
		SELECT
			rp.id,
			p.vehicle_id,
			v.owner_id,
			COALESCE(a.raw, ''),
			rp.payment,
			rp.arrival_time,
			rp.departure_time,
			rp.duration_minutes,
			l.status
		FROM route_points rp
		JOIN route_plans p ON p.id = rp.route_plan_id
		LEFT JOIN vehicles v ON v.id = p.vehicle_id
		LEFT JOIN addresses a ON a.id = rp.address_id
		LEFT JOIN latest l ON l.entity_id = rp.id AND l.rn = 1
		WHERE p.date BETWEEN ?::date AND ?::date
		ORDER BY p.date, rp.route_plan_id, rp.point_order
	`, status.KindRoutePoint.String(), start.Format(dateLayout), end.Format(dateLayout)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	facts := make([]services.PointFact, 0)
	for rows.Next() {
		var (
			pointID, vehicleID uuid.UUID
			ownerID            uuid.NullUUID
			fact               services.PointFact
			latest             sql.NullString
			payment            decimal.NullDecimal
		)
		if err = rows.Scan(
			&pointID,
			&vehicleID,
			&ownerID,
			&fact.Address,
			&payment,
			&fact.ArrivalTime,
			&fact.DepartureTime,
			&fact.DurationMinutes,
			&latest,
		); err != nil {
			return nil, err
		}

		if fact.PointID, err = toUUID(pointID); err != nil {
			return nil, err
		}
		if fact.VehicleID, err = toUUID(vehicleID); err != nil {
			return nil, err
		}
		if fact.DriverID, err = toOptionalUUID(ownerID); err != nil {
			return nil, err
		}

		fact.Payment = decimal.Zero
		if payment.Valid {
			fact.Payment = payment.Decimal
		}
		if latest.Valid {
			s := status.Status(latest.String)
			fact.LatestStatus = &s
		}
		facts = append(facts, fact)
	}

	return facts, rows.Err()
}

func parties(tx *gorm.DB, sqlText string) ([]services.Party, error) {
	rows, err := tx.Raw(sqlText).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]services.Party, 0)
	for rows.Next() {
		var (
			id   uuid.UUID
			name string
		)
		if err = rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		partyID, idErr := toUUID(id)
		if idErr != nil {
			return nil, idErr
		}
		out = append(out, services.Party{ID: partyID, Name: name})
	}

	return out, rows.Err()
}
