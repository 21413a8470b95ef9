package kernel_test

import (
	"testing"
	"time"

	"routetrail/internal/core/domain/model/kernel"
	"routetrail/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoPoint(t *testing.T) {
	tests := []struct {
		name    string
		lat     float64
		lng     float64
		wantErr bool
	}{
		{name: "almaty", lat: 43.238949, lng: 76.889709},
		{name: "bounds", lat: kernel.MaxLatitude, lng: kernel.MinLongitude},
		{name: "lat too large", lat: 90.5, lng: 10, wantErr: true},
		{name: "lng too small", lat: 10, lng: -180.1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := kernel.NewGeoPoint(tt.lat, tt.lng)
			if tt.wantErr {
				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
				return
			}
			require.NoError(t, err)
			require.NoError(t, p.Validate())
			assert.InDelta(t, tt.lat, p.Lat(), 1e-9)
			assert.InDelta(t, tt.lng, p.Lng(), 1e-9)
		})
	}
}

func TestNewGeoPoint_BothCoordinatesInvalid(t *testing.T) {
	_, err := kernel.NewGeoPoint(100, 200)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "lat")
	assert.Contains(t, err.Error(), "lng")
}

func TestGeoPoint_ZeroValueIsInvalid(t *testing.T) {
	var p kernel.GeoPoint
	assert.Equal(t, kernel.ErrGeoPointIsNotConstructed, p.Validate())
}

func TestNewOptionalGeoPoint(t *testing.T) {
	lat, lng := 51.12, 71.43

	p, err := kernel.NewOptionalGeoPoint(nil, nil)
	require.NoError(t, err)
	assert.Nil(t, p)

	p, err = kernel.NewOptionalGeoPoint(&lat, &lng)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.InDelta(t, lat, p.Lat(), 1e-9)

	_, err = kernel.NewOptionalGeoPoint(&lat, nil)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestDateOf(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*60*60)
	ts := time.Date(2024, 3, 9, 23, 30, 0, 0, loc)

	assert.Equal(t, time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC), kernel.DateOf(ts))
}
