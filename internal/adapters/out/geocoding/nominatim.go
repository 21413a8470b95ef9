// Package geocoding resolves free-text addresses to coordinates.
//
// NominatimGeocoder talks to an OpenStreetMap Nominatim endpoint and retries
// transient failures. CachedGeocoder puts a Redis cache in front of any
// ports.Geocoder so repeated addresses do not hit the remote service.
package geocoding

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"routetrail/internal/core/domain/model/kernel"
)

const DefaultNominatimURL = "https://nominatim.openstreetmap.org"

type nominatimPlace struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// NominatimGeocoder implements ports.Geocoder. It is safe for concurrent use.
type NominatimGeocoder struct {
	session   *http.Client
	baseURL   string
	userAgent string
	backoff   time.Duration
}

// NewNominatimGeocoder builds a client. Nominatim's usage policy requires an
// identifying user agent, so an empty one is rejected.
func NewNominatimGeocoder(baseURL, userAgent string, timeout time.Duration) (*NominatimGeocoder, error) {
	if strings.TrimSpace(userAgent) == "" {
		return nil, errors.New("nominatim user agent is empty")
	}
	if baseURL == "" {
		baseURL = DefaultNominatimURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &NominatimGeocoder{
		session:   &http.Client{Timeout: timeout},
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
		backoff:   200 * time.Millisecond,
	}, nil
}

// Geocode returns the first match for query, or nil when there is none.
func (g *NominatimGeocoder) Geocode(ctx context.Context, query string) (*kernel.GeoPoint, error) {
	query = normalize(query)
	if query == "" {
		return nil, nil
	}

	endpoint := g.baseURL + "/search"
	resp, err := g.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := g.newRequest(ctx, endpoint)
		if err != nil {
			return nil, err
		}
		q := req.URL.Query()
		q.Set("format", "json")
		q.Set("limit", "1")
		q.Set("q", query)
		req.URL.RawQuery = q.Encode()
		return req, nil
	})
	if err != nil {
		return nil, fmt.Errorf("geocode %q: %w", query, err)
	}
	defer resp.Body.Close()

	var places []nominatimPlace
	if err = json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return nil, fmt.Errorf("decode geocode response: %w", err)
	}
	if len(places) == 0 {
		return nil, nil
	}

	return parsePlace(places[0])
}

func parsePlace(place nominatimPlace) (*kernel.GeoPoint, error) {
	lat, err := strconv.ParseFloat(place.Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("parse latitude %q: %w", place.Lat, err)
	}
	lng, err := strconv.ParseFloat(place.Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("parse longitude %q: %w", place.Lon, err)
	}

	point, err := kernel.NewGeoPoint(lat, lng)
	if err != nil {
		return nil, err
	}
	return &point, nil
}

// normalize collapses whitespace so equal addresses share a cache key.
func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
