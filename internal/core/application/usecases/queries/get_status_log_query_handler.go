package queries

import (
	"context"
	"database/sql"

	"routetrail/internal/core/domain/model/ledger"
	"routetrail/internal/core/domain/model/status"
	"routetrail/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetStatusLogQueryHandler returns one entity's ledger ordered by timestamp,
// ties broken by insertion order. An unknown entity is not found; a known one
// without entries yields an empty list.
type GetStatusLogQueryHandler struct {
	db *gorm.DB
}

func NewGetStatusLogQueryHandler(db *gorm.DB) GetStatusLogQueryHandler {
	return GetStatusLogQueryHandler{db: db}
}

func (h GetStatusLogQueryHandler) Handle(
	ctx context.Context,
	query GetStatusLogQuery,
) (GetStatusLogQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetStatusLogQueryResponse{}, err
	}

	response := GetStatusLogQueryResponse{Ref: query.Ref()}
	err := h.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := entityExists(tx, query.Ref()); err != nil {
			return err
		}

		rows, err := tx.Raw(`
			SELECT seq, id, entity_type, entity_id, status, recorded_at, latitude, longitude, note
			FROM status_log_entries
			WHERE entity_type = ? AND entity_id = ?
			ORDER BY recorded_at, seq
		`, query.Ref().Kind.String(), query.Ref().ID.String()).Rows()
		if err != nil {
			return err
		}
		defer rows.Close()

		response.Entries = make([]*ledger.Entry, 0)
		for rows.Next() {
			entry, scanErr := scanEntry(rows)
			if scanErr != nil {
				return scanErr
			}
			response.Entries = append(response.Entries, entry)
		}
		return rows.Err()
	}, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		return GetStatusLogQueryResponse{}, err
	}

	return response, nil
}

func entityExists(tx *gorm.DB, ref ledger.EntityRef) error {
	table := "route_points"
	if ref.Kind == status.KindLoading {
		table = "loadings"
	}

	var found int64
	if err := tx.Table(table).Where("id = ?", ref.ID.String()).Count(&found).Error; err != nil {
		return err
	}
	if found == 0 {
		return errs.NewObjectNotFoundError(ref.Kind.String(), ref.ID.String())
	}
	return nil
}
