package geocoding_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"routetrail/internal/adapters/out/geocoding"
	"routetrail/internal/core/domain/model/kernel"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockGeocoder struct {
	mock.Mock
}

func (m *MockGeocoder) Geocode(ctx context.Context, query string) (*kernel.GeoPoint, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*kernel.GeoPoint), args.Error(1)
}

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return server, client
}

func TestCachedGeocoder_HitSkipsUpstream(t *testing.T) {
	ctx := context.Background()
	_, client := newRedis(t)
	upstream := new(MockGeocoder)
	point, err := kernel.NewGeoPoint(43.25, 76.92)
	require.NoError(t, err)
	upstream.On("Geocode", ctx, "Abaya 10").Return(&point, nil).Once()

	geocoder := geocoding.NewCachedGeocoder(upstream, client, time.Hour, nil)

	first, err := geocoder.Geocode(ctx, "Abaya  10")
	require.NoError(t, err)
	second, err := geocoder.Geocode(ctx, " Abaya 10")
	require.NoError(t, err)

	require.NotNil(t, second)
	assert.True(t, first.IsEqual(*second))
	upstream.AssertExpectations(t)
}

func TestCachedGeocoder_CachesMisses(t *testing.T) {
	ctx := context.Background()
	server, client := newRedis(t)
	upstream := new(MockGeocoder)
	upstream.On("Geocode", ctx, "nowhere").Return(nil, nil).Once()

	geocoder := geocoding.NewCachedGeocoder(upstream, client, time.Minute, nil)

	for i := 0; i < 2; i++ {
		point, err := geocoder.Geocode(ctx, "nowhere")
		require.NoError(t, err)
		assert.Nil(t, point)
	}
	upstream.AssertExpectations(t)
	assert.Equal(t, time.Minute, server.TTL("geocode:nowhere"))
}

func TestCachedGeocoder_UpstreamErrorIsNotCached(t *testing.T) {
	ctx := context.Background()
	server, client := newRedis(t)
	upstream := new(MockGeocoder)
	upstream.On("Geocode", ctx, "flaky").Return(nil, errors.New("timeout")).Once()

	geocoder := geocoding.NewCachedGeocoder(upstream, client, time.Hour, nil)

	_, err := geocoder.Geocode(ctx, "flaky")

	require.Error(t, err)
	assert.False(t, server.Exists("geocode:flaky"))
}

func TestCachedGeocoder_RedisDownFallsThrough(t *testing.T) {
	ctx := context.Background()
	server, client := newRedis(t)
	server.Close()
	upstream := new(MockGeocoder)
	point, err := kernel.NewGeoPoint(1, 2)
	require.NoError(t, err)
	upstream.On("Geocode", ctx, "anywhere").Return(&point, nil).Once()

	geocoder := geocoding.NewCachedGeocoder(upstream, client, time.Hour, nil)

	got, err := geocoder.Geocode(ctx, "anywhere")

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.InDelta(t, 2.0, got.Lng(), 1e-9)
}
