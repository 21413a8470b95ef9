package queries

import (
	"database/sql"

	"routetrail/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

func toUUID(id uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func toOptionalUUID(id uuid.NullUUID) (*kernel.UUID, error) {
	if !id.Valid {
		return nil, nil
	}
	converted, err := toUUID(id.UUID)
	if err != nil {
		return nil, err
	}
	return &converted, nil
}

func toOptionalGeo(lat, lng sql.NullFloat64) (*kernel.GeoPoint, error) {
	var latPtr, lngPtr *float64
	if lat.Valid {
		latPtr = &lat.Float64
	}
	if lng.Valid {
		lngPtr = &lng.Float64
	}
	return kernel.NewOptionalGeoPoint(latPtr, lngPtr)
}
