package geocoding

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"routetrail/internal/core/domain/model/kernel"
	"routetrail/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "geocode:"

// cachedPoint is the stored form. Found is false for addresses the upstream
// could not resolve, so misses are cached too.
type cachedPoint struct {
	Found bool    `json:"found"`
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
}

// CachedGeocoder decorates a geocoder with a Redis cache. Redis failures are
// logged and fall through to the upstream geocoder.
type CachedGeocoder struct {
	next   ports.Geocoder
	client redis.UniversalClient
	ttl    time.Duration
	logger *slog.Logger
}

func NewCachedGeocoder(
	next ports.Geocoder,
	client redis.UniversalClient,
	ttl time.Duration,
	logger *slog.Logger,
) *CachedGeocoder {
	if logger == nil {
		logger = slog.Default()
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &CachedGeocoder{
		next:   next,
		client: client,
		ttl:    ttl,
		logger: logger.With("component", "geocode-cache"),
	}
}

func (c *CachedGeocoder) Geocode(ctx context.Context, query string) (*kernel.GeoPoint, error) {
	query = normalize(query)
	if query == "" {
		return nil, nil
	}
	key := keyPrefix + query

	if point, ok := c.lookup(ctx, key); ok {
		return point, nil
	}

	point, err := c.next.Geocode(ctx, query)
	if err != nil {
		return nil, err
	}

	c.store(ctx, key, point)
	return point, nil
}

func (c *CachedGeocoder) lookup(ctx context.Context, key string) (*kernel.GeoPoint, bool) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		c.logger.WarnContext(ctx, "cache read failed", "key", key, "error", err)
		return nil, false
	}

	var cached cachedPoint
	if err = json.Unmarshal(raw, &cached); err != nil {
		c.logger.WarnContext(ctx, "cache entry is corrupt", "key", key, "error", err)
		return nil, false
	}
	if !cached.Found {
		return nil, true
	}

	point, err := kernel.NewGeoPoint(cached.Lat, cached.Lng)
	if err != nil {
		c.logger.WarnContext(ctx, "cache entry is out of range", "key", key, "error", err)
		return nil, false
	}
	return &point, true
}

func (c *CachedGeocoder) store(ctx context.Context, key string, point *kernel.GeoPoint) {
	cached := cachedPoint{}
	if point != nil {
		cached = cachedPoint{Found: true, Lat: point.Lat(), Lng: point.Lng()}
	}

	raw, err := json.Marshal(cached)
	if err != nil {
		return
	}
	if err = c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "cache write failed", "key", key, "error", err)
	}
}
