package ledger_test

import (
	"testing"
	"time"

	"routetrail/internal/core/domain/model/kernel"
	"routetrail/internal/core/domain/model/ledger"
	"routetrail/internal/core/domain/model/status"
	"routetrail/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntry(t *testing.T) {
	ref, err := ledger.NewEntityRef(status.KindRoutePoint, kernel.NewUUID())
	require.NoError(t, err)
	arrived, err := status.NewPointStatus("arrived")
	require.NoError(t, err)
	geo, err := kernel.NewGeoPoint(43.2, 76.9)
	require.NoError(t, err)
	at := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)

	entry, err := ledger.NewEntry(ref, arrived, at, &geo, "gate 3")

	require.NoError(t, err)
	require.NoError(t, entry.Validate())
	assert.Equal(t, ref, entry.Ref())
	assert.Equal(t, status.Arrived, entry.Status())
	assert.Equal(t, at, entry.Timestamp())
	assert.Equal(t, "gate 3", entry.Note())
	assert.Zero(t, entry.Seq())

	entry.AssignSeq(17)
	assert.Equal(t, int64(17), entry.Seq())
}

func TestNewEntry_KindMismatch(t *testing.T) {
	ref, err := ledger.NewEntityRef(status.KindRoutePoint, kernel.NewUUID())
	require.NoError(t, err)
	loading, err := status.NewLoadingStatus("loading")
	require.NoError(t, err)

	_, err = ledger.NewEntry(ref, loading, time.Now(), nil, "")

	require.ErrorIs(t, err, errs.ErrStatusIsInvalid)
}

func TestNewEntry_RequiresTimestamp(t *testing.T) {
	ref, err := ledger.NewEntityRef(status.KindLoading, kernel.NewUUID())
	require.NoError(t, err)
	planned, err := status.NewLoadingStatus("planned")
	require.NoError(t, err)

	_, err = ledger.NewEntry(ref, planned, time.Time{}, nil, "")

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewEntityRef_Invalid(t *testing.T) {
	_, err := ledger.NewEntityRef(status.Kind("vehicle"), kernel.UUID{})

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestEntry_ZeroValueIsInvalid(t *testing.T) {
	var entry *ledger.Entry
	require.ErrorIs(t, entry.Validate(), ledger.ErrEntryIsNotConstructed)
}
