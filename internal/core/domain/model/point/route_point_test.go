package point_test

import (
	"testing"
	"time"

	"routetrail/internal/core/domain/model/kernel"
	"routetrail/internal/core/domain/model/point"
	"routetrail/internal/core/domain/model/status"
	"routetrail/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPoint(t *testing.T) *point.RoutePoint {
	t.Helper()
	p, err := point.NewRoutePoint(kernel.NewUUID(), kernel.NewUUID(), 1, point.Details{
		Doc:          "INV-001",
		Payment:      decimal.RequireFromString("1500.50"),
		Counterparty: "Small Shop LLC",
	})
	require.NoError(t, err)
	return p
}

func mustStatus(t *testing.T, raw string) status.Tagged {
	t.Helper()
	tagged, err := status.NewPointStatus(raw)
	require.NoError(t, err)
	return tagged
}

func TestNewRoutePoint(t *testing.T) {
	p := newPoint(t)

	require.NoError(t, p.Validate())
	assert.Equal(t, 1, p.Order())
	assert.Equal(t, status.Planned, p.Status())
	assert.Equal(t, status.KindRoutePoint, p.Kind())
	assert.Nil(t, p.ArrivalTime())
	assert.Nil(t, p.DepartureTime())
	assert.Nil(t, p.DurationMinutes())
	assert.True(t, decimal.RequireFromString("1500.5").Equal(p.Details().Payment))
}

func TestNewRoutePoint_InvalidInput(t *testing.T) {
	_, err := point.NewRoutePoint(kernel.UUID{}, kernel.UUID{}, 0, point.Details{
		Payment: decimal.NewFromInt(-1),
	})

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	require.ErrorIs(t, err, errs.ErrOrderIsInvalid)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestRoutePoint_CompletedWithoutArrival(t *testing.T) {
	p := newPoint(t)
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, p.ApplyStatus(mustStatus(t, "completed"), at, nil))

	require.NotNil(t, p.ArrivalTime())
	require.NotNil(t, p.DepartureTime())
	assert.Equal(t, at, *p.ArrivalTime())
	assert.Equal(t, at, *p.DepartureTime())
	assert.Equal(t, 0, *p.DurationMinutes())
	assert.Equal(t, status.Completed, p.Status())
}

func TestRoutePoint_ArrivedThenCompleted(t *testing.T) {
	p := newPoint(t)
	t1 := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(25 * time.Minute)

	require.NoError(t, p.ApplyStatus(mustStatus(t, "arrived"), t1, nil))
	require.NoError(t, p.ApplyStatus(mustStatus(t, "completed"), t2, nil))

	assert.Equal(t, t1, *p.ArrivalTime())
	assert.Equal(t, t2, *p.DepartureTime())
	assert.Equal(t, 25, *p.DurationMinutes())
}

func TestRoutePoint_ArrivedTwiceKeepsFirstArrival(t *testing.T) {
	p := newPoint(t)
	t1 := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, p.ApplyStatus(mustStatus(t, "arrived"), t1, nil))
	require.NoError(t, p.ApplyStatus(mustStatus(t, "en_route"), t1.Add(time.Minute), nil))
	require.NoError(t, p.ApplyStatus(mustStatus(t, "arrived"), t1.Add(time.Hour), nil))

	assert.Equal(t, t1, *p.ArrivalTime())
	assert.Nil(t, p.DepartureTime())
	assert.Equal(t, status.Arrived, p.Status())
}

func TestRoutePoint_TimestampsAreNeverCleared(t *testing.T) {
	p := newPoint(t)
	t1 := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, p.ApplyStatus(mustStatus(t, "completed"), t1, nil))
	require.NoError(t, p.ApplyStatus(mustStatus(t, "planned"), t1.Add(time.Minute), nil))

	assert.NotNil(t, p.ArrivalTime())
	assert.NotNil(t, p.DepartureTime())
	assert.Equal(t, status.Planned, p.Status())
}

func TestRoutePoint_ApplyStatusUpdatesGeo(t *testing.T) {
	p := newPoint(t)
	geo, err := kernel.NewGeoPoint(43.25, 76.95)
	require.NoError(t, err)

	require.NoError(t, p.ApplyStatus(mustStatus(t, "en_route"), time.Now(), &geo))

	require.NotNil(t, p.Details().Geo)
	assert.True(t, geo.IsEqual(*p.Details().Geo))
}

func TestRoutePoint_ApplyStatusRejectsLoadingStatus(t *testing.T) {
	p := newPoint(t)
	loading, err := status.NewLoadingStatus("loading_completed")
	require.NoError(t, err)

	err = p.ApplyStatus(loading, time.Now(), nil)

	require.ErrorIs(t, err, errs.ErrStatusIsInvalid)
	assert.Equal(t, status.Planned, p.Status())
}

func TestRoutePoint_SetOrder(t *testing.T) {
	p := newPoint(t)

	require.NoError(t, p.SetOrder(4))
	assert.Equal(t, 4, p.Order())
	require.ErrorIs(t, p.SetOrder(0), errs.ErrOrderIsInvalid)
	assert.Equal(t, 4, p.Order())
}
