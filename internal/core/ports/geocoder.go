package ports

import (
	"context"

	"routetrail/internal/core/domain/model/kernel"
)

// Geocoder resolves free-text addresses to coordinates. A query without a match
// yields a nil point and a nil error. Callers treat every failure as best-effort.
type Geocoder interface {
	Geocode(ctx context.Context, query string) (*kernel.GeoPoint, error)
}
