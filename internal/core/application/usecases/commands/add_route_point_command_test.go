package commands_test

import (
	"testing"
	"time"

	"routetrail/internal/core/application/usecases/commands"
	"routetrail/internal/core/domain/model/kernel"
	"routetrail/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddRoutePointCommand_ByPlan(t *testing.T) {
	pointID := kernel.NewUUID()
	planID := kernel.NewUUID()
	order := 2

	cmd, err := commands.NewAddRoutePointCommand(pointID, planID, commands.PointSpec{
		Doc:          "INV-7",
		Payment:      decimal.RequireFromString("1500.50"),
		DesiredOrder: &order,
	})

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	require.NotNil(t, cmd.PlanID())
	assert.Equal(t, planID, *cmd.PlanID())
	assert.Equal(t, pointID, cmd.PointID())
	assert.Equal(t, "INV-7", cmd.Spec().Doc)
	assert.Nil(t, cmd.OwnerCheck())
}

func TestNewAddRoutePointForDateCommand_TruncatesDate(t *testing.T) {
	vehicleID := kernel.NewUUID()

	cmd, err := commands.NewAddRoutePointForDateCommand(kernel.NewUUID(), vehicleID,
		time.Date(2024, 5, 1, 23, 59, 0, 0, time.UTC), commands.PointSpec{})

	require.NoError(t, err)
	assert.Nil(t, cmd.PlanID())
	assert.Equal(t, vehicleID, cmd.VehicleID())
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), cmd.Date())
}

func TestNewAddRoutePointCommand_InvalidSpec(t *testing.T) {
	testCases := []struct {
		name   string
		spec   commands.PointSpec
		target error
	}{
		{
			name:   "negative payment",
			spec:   commands.PointSpec{Payment: decimal.NewFromInt(-1)},
			target: errs.ErrValueIsInvalid,
		},
		{
			name:   "desired order below one",
			spec:   commands.PointSpec{DesiredOrder: new(int)},
			target: errs.ErrOrderIsInvalid,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := commands.NewAddRoutePointCommand(kernel.NewUUID(), kernel.NewUUID(), tc.spec)

			require.Error(t, err)
			assert.ErrorIs(t, err, tc.target)
		})
	}
}

func TestAddRoutePointCommand_WithOwnerCheckKeepsOriginal(t *testing.T) {
	cmd, err := commands.NewAddRoutePointCommand(kernel.NewUUID(), kernel.NewUUID(), commands.PointSpec{})
	require.NoError(t, err)

	checked := cmd.WithOwnerCheck(func(kernel.UUID) bool { return false })

	assert.Nil(t, cmd.OwnerCheck())
	assert.NotNil(t, checked.OwnerCheck())
	assert.NoError(t, checked.Validate())
}
