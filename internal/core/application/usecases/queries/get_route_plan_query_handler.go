package queries

import (
	"context"
	"database/sql"
	"errors"

	"routetrail/internal/core/domain/model/kernel"
	"routetrail/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetRoutePlanQueryHandler struct {
	db *gorm.DB
}

func NewGetRoutePlanQueryHandler(db *gorm.DB) GetRoutePlanQueryHandler {
	return GetRoutePlanQueryHandler{db: db}
}

func (h GetRoutePlanQueryHandler) Handle(
	ctx context.Context,
	query GetRoutePlanQuery,
) (GetRoutePlanQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRoutePlanQueryResponse{}, err
	}

	var response GetRoutePlanQueryResponse
	err := h.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if response, err = routePlanHeader(tx, query.RoutePlanID()); err != nil {
			return err
		}
		if response.Points, err = routePointViews(tx, query.RoutePlanID()); err != nil {
			return err
		}
		response.Loadings, err = loadingViews(tx, query.RoutePlanID())
		return err
	}, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		return GetRoutePlanQueryResponse{}, err
	}

	return response, nil
}

func routePlanHeader(tx *gorm.DB, planID kernel.UUID) (GetRoutePlanQueryResponse, error) {
	row := tx.Raw(`
		SELECT id, vehicle_id, date, status, start_time, end_time, COALESCE(notes, '')
		FROM route_plans
		WHERE id = ?
	`, planID.String()).Row()

	var (
		response      GetRoutePlanQueryResponse
		id, vehicleID uuid.UUID
	)
	err := row.Scan(
		&id,
		&vehicleID,
		&response.Date,
		&response.Status,
		&response.StartTime,
		&response.EndTime,
		&response.Notes,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetRoutePlanQueryResponse{}, errs.NewObjectNotFoundError("route plan", planID.String())
	}
	if err != nil {
		return GetRoutePlanQueryResponse{}, err
	}

	if response.ID, err = toUUID(id); err != nil {
		return GetRoutePlanQueryResponse{}, err
	}
	if response.VehicleID, err = toUUID(vehicleID); err != nil {
		return GetRoutePlanQueryResponse{}, err
	}
	response.Date = response.Date.UTC()

	return response, nil
}

func routePointViews(tx *gorm.DB, planID kernel.UUID) ([]RoutePointView, error) {
	rows, err := tx.Raw(`
		SELECT
			rp.id,
			rp.point_order,
			COALESCE(rp.doc, ''),
			rp.payment,
			COALESCE(rp.counterparty, ''),
			rp.address_id,
			COALESCE(a.raw, ''),
			rp.store_id,
			COALESCE(s.name, ''),
			rp.latitude,
			rp.longitude,
			rp.arrival_time,
			rp.departure_time,
			rp.duration_minutes,
			COALESCE(rp.note, ''),
			rp.status
		FROM route_points rp
		LEFT JOIN addresses a ON a.id = rp.address_id
		LEFT JOIN stores s ON s.id = rp.store_id
		WHERE rp.route_plan_id = ?
		ORDER BY rp.point_order
	`, planID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]RoutePointView, 0)
	for rows.Next() {
		var (
			view               RoutePointView
			id                 uuid.UUID
			addressID, storeID uuid.NullUUID
			payment            decimal.NullDecimal
			lat, lng           sql.NullFloat64
		)
		if err = rows.Scan(
			&id,
			&view.Order,
			&view.Doc,
			&payment,
			&view.Counterparty,
			&addressID,
			&view.Address,
			&storeID,
			&view.StoreName,
			&lat,
			&lng,
			&view.ArrivalTime,
			&view.DepartureTime,
			&view.DurationMinutes,
			&view.Note,
			&view.Status,
		); err != nil {
			return nil, err
		}

		if view.ID, err = toUUID(id); err != nil {
			return nil, err
		}
		if view.AddressID, err = toOptionalUUID(addressID); err != nil {
			return nil, err
		}
		if view.StoreID, err = toOptionalUUID(storeID); err != nil {
			return nil, err
		}
		if view.Geo, err = toOptionalGeo(lat, lng); err != nil {
			return nil, err
		}
		view.Payment = decimal.Zero
		if payment.Valid {
			view.Payment = payment.Decimal
		}
		views = append(views, view)
	}

	return views, rows.Err()
}

func loadingViews(tx *gorm.DB, planID kernel.UUID) ([]LoadingView, error) {
	rows, err := tx.Raw(`
		SELECT
			l.id,
			l.loading_place_id,
			COALESCE(lp.name, ''),
			l.start_time,
			l.end_time,
			COALESCE(l.doc_number, ''),
			l.volume,
			l.weight,
			COALESCE(l.note, ''),
			l.latitude,
			l.longitude,
			l.status
		FROM loadings l
		LEFT JOIN loading_places lp ON lp.id = l.loading_place_id
		WHERE l.route_plan_id = ?
		ORDER BY l.start_time NULLS LAST, l.id
	`, planID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]LoadingView, 0)
	for rows.Next() {
		var (
			view     LoadingView
			id       uuid.UUID
			placeID  uuid.NullUUID
			lat, lng sql.NullFloat64
		)
		if err = rows.Scan(
			&id,
			&placeID,
			&view.LoadingPlaceName,
			&view.StartTime,
			&view.EndTime,
			&view.DocNumber,
			&view.Volume,
			&view.Weight,
			&view.Note,
			&lat,
			&lng,
			&view.Status,
		); err != nil {
			return nil, err
		}

		if view.ID, err = toUUID(id); err != nil {
			return nil, err
		}
		if view.LoadingPlaceID, err = toOptionalUUID(placeID); err != nil {
			return nil, err
		}
		if view.Geo, err = toOptionalGeo(lat, lng); err != nil {
			return nil, err
		}
		views = append(views, view)
	}

	return views, rows.Err()
}
