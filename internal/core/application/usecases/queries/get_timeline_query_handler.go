package queries

import (
	"context"
	"database/sql"
	"time"

	"routetrail/internal/core/domain/model/kernel"
	"routetrail/internal/core/domain/model/ledger"
	"routetrail/internal/core/domain/model/status"
	"routetrail/internal/core/domain/services"
	"routetrail/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetTimelineQueryHandler reads the ledgers of a plan's points and loadings
// and merges them into one chronological list.
//
// Points are labelled with their store name, falling back to the raw address;
// loadings with the name of their loading place.
type GetTimelineQueryHandler struct {
	db     *gorm.DB
	merger services.TimelineMerger
}

func NewGetTimelineQueryHandler(db *gorm.DB, merger services.TimelineMerger) GetTimelineQueryHandler {
	return GetTimelineQueryHandler{db: db, merger: merger}
}

func (h GetTimelineQueryHandler) Handle(ctx context.Context, query GetTimelineQuery) (GetTimelineQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetTimelineQueryResponse{}, err
	}

	response := GetTimelineQueryResponse{RoutePlanID: query.RoutePlanID()}
	err := h.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := planExists(tx, query.RoutePlanID()); err != nil {
			return err
		}

		labels, err := timelineLabels(tx, query.RoutePlanID())
		if err != nil {
			return err
		}

		entries, err := ledgerEntries(tx, labels)
		if err != nil {
			return err
		}

		response.Events = h.merger.Merge(entries, labels)
		return nil
	}, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		return GetTimelineQueryResponse{}, err
	}

	return response, nil
}

func planExists(tx *gorm.DB, planID kernel.UUID) error {
	var found int64
	if err := tx.Raw(`SELECT COUNT(*) FROM route_plans WHERE id = ?`, planID.String()).Scan(&found).Error; err != nil {
		return err
	}
	if found == 0 {
		return errs.NewObjectNotFoundError("route plan", planID.String())
	}
	return nil
}

// timelineLabels returns a label for every point and loading of the plan. The
// key set doubles as the list of entities whose ledgers belong to the timeline.
func timelineLabels(tx *gorm.DB, planID kernel.UUID) (map[ledger.EntityRef]string, error) {
	rows, err := tx.Raw(`
		SELECT
			?::text AS kind,
			rp.id,
			COALESCE(NULLIF(s.name, ''), a.raw, '') AS label
		FROM route_points rp
		LEFT JOIN stores s ON s.id = rp.store_id
		LEFT JOIN addresses a ON a.id = rp.address_id
		WHERE rp.route_plan_id = ?
		UNION ALL
		SELECT
			?::text AS kind,
			l.id,
			COALESCE(lp.name, '') AS label
		FROM loadings l
		LEFT JOIN loading_places lp ON lp.id = l.loading_place_id
		WHERE l.route_plan_id = ?
	`, status.KindRoutePoint.String(), planID.String(), status.KindLoading.String(), planID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	labels := make(map[ledger.EntityRef]string)
	for rows.Next() {
		var (
			kind  string
			id    uuid.UUID
			label string
		)
		if err = rows.Scan(&kind, &id, &label); err != nil {
			return nil, err
		}

		entityID, idErr := toUUID(id)
		if idErr != nil {
			return nil, idErr
		}
		ref, refErr := ledger.NewEntityRef(status.Kind(kind), entityID)
		if refErr != nil {
			return nil, refErr
		}
		labels[ref] = label
	}

	return labels, rows.Err()
}

func ledgerEntries(tx *gorm.DB, refs map[ledger.EntityRef]string) ([]*ledger.Entry, error) {
	if len(refs) == 0 {
		return []*ledger.Entry{}, nil
	}

	var pointIDs, loadingIDs []string
	for ref := range refs {
		switch ref.Kind {
		case status.KindRoutePoint:
			pointIDs = append(pointIDs, ref.ID.String())
		case status.KindLoading:
			loadingIDs = append(loadingIDs, ref.ID.String())
		}
	}

	rows, err := tx.Raw(`
		SELECT seq, id, entity_type, entity_id, status, recorded_at, latitude, longitude, note
		FROM status_log_entries
		WHERE (entity_type = ? AND entity_id = ANY(?::uuid[]))
		   OR (entity_type = ? AND entity_id = ANY(?::uuid[]))
		ORDER BY recorded_at, seq
	`, status.KindRoutePoint.String(), pq.Array(pointIDs), status.KindLoading.String(), pq.Array(loadingIDs)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]*ledger.Entry, 0)
	for rows.Next() {
		entry, scanErr := scanEntry(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanEntry reads the columns seq, id, entity_type, entity_id, status,
// recorded_at, latitude, longitude and note.
func scanEntry(row rowScanner) (*ledger.Entry, error) {
	var (
		seq        int64
		id         uuid.UUID
		entityType string
		entityID   uuid.UUID
		value      string
		recordedAt time.Time
		lat, lng   sql.NullFloat64
		note       sql.NullString
	)
	if err := row.Scan(&seq, &id, &entityType, &entityID, &value, &recordedAt, &lat, &lng, &note); err != nil {
		return nil, err
	}

	entryID, err := toUUID(id)
	if err != nil {
		return nil, err
	}
	subjectID, err := toUUID(entityID)
	if err != nil {
		return nil, err
	}
	ref, err := ledger.NewEntityRef(status.Kind(entityType), subjectID)
	if err != nil {
		return nil, err
	}
	geo, err := toOptionalGeo(lat, lng)
	if err != nil {
		return nil, err
	}

	return ledger.RestoreEntry(entryID, seq, ref, status.Status(value), recordedAt.UTC(), geo, note.String), nil
}
