package iofleet_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voidtraders/voidtrade/internal/iocontent"
	"github.com/voidtraders/voidtrade/internal/iofleet"
	"github.com/voidtraders/voidtrade/internal/iostore"
	"github.com/voidtraders/voidtrade/internal/iotesting"
	"github.com/voidtraders/voidtrade/pkg/config"
	"github.com/voidtraders/voidtrade/pkg/errcode"
	"github.com/voidtraders/voidtrade/pkg/schema"
)

// newWarehouse starts a game and grants the player a property at the
// ship's starting location.
func newWarehouse(
	t *testing.T,
) (*iofleet.Fleet, *iostore.Store, *schema.Player, *schema.Ship) {
	t.Helper()
	ctx := context.Background()

	loader := iocontent.New(iotesting.ContentDir(t))
	path := filepath.Join(t.TempDir(), "pilot.save")
	st, _, err := iostore.OpenOrCreate(ctx, path, loader)
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	player, ship, err := st.NewGame(ctx, "ripley",
		config.GameConfig{StartingCash: 10_000})
	require.NoError(t, err)

	var def schema.PropertyDef
	require.NoError(t, st.DB().First(&def).Error)
	require.NoError(t, st.DB().Create(&schema.Property{
		DefID:      def.ID,
		PlayerID:   player.ID,
		LocationID: ship.LocationID,
	}).Error)

	return iofleet.New(st), st, player, ship
}

func TestStoreCargoWeightedAverage(t *testing.T) {
	fleet, _, player, ship := newWarehouse(t)
	ctx := context.Background()

	err := fleet.StoreCargo(ctx, player.ID, ship.LocationID, "drugs", 10, 5)
	require.NoError(t, err)
	err = fleet.StoreCargo(ctx, player.ID, ship.LocationID, "drugs", 10, 15)
	require.NoError(t, err)

	prop, err := fleet.Warehouse(ctx, player.ID, ship.LocationID)
	require.NoError(t, err)
	require.Len(t, prop.Stock, 1)
	assert.Equal(t, 20, prop.Stock[0].Quantity)
	assert.InDelta(t, 10.0, prop.Stock[0].AvgPrice, 1e-9)

	// a second commodity gets its own stock line
	err = fleet.StoreCargo(ctx, player.ID, ship.LocationID, "grain", 5, 20)
	require.NoError(t, err)
	prop, err = fleet.Warehouse(ctx, player.ID, ship.LocationID)
	require.NoError(t, err)
	assert.Len(t, prop.Stock, 2)
}

func TestStoreCargoNoWarehouse(t *testing.T) {
	fleet, st, player, _ := newWarehouse(t)
	ctx := context.Background()

	// the player owns nothing at the second location
	loc, err := st.LocationByName(ctx, "friesland yards")
	require.NoError(t, err)

	err = fleet.StoreCargo(ctx, player.ID, loc.ID, "drugs", 5, 5)
	require.Error(t, err)
	assert.Equal(t, errcode.NoWarehouseError, errcode.Of(err))
	assert.Contains(t, err.Error(), "Friesland Yards")
}

func TestWithdrawCargo(t *testing.T) {
	fleet, _, player, ship := newWarehouse(t)
	ctx := context.Background()

	err := fleet.StoreCargo(ctx, player.ID, ship.LocationID, "drugs", 20, 5)
	require.NoError(t, err)

	err = fleet.WithdrawCargo(ctx, player.ID, ship.LocationID, "drugs", 5)
	require.NoError(t, err)
	prop, err := fleet.Warehouse(ctx, player.ID, ship.LocationID)
	require.NoError(t, err)
	require.Len(t, prop.Stock, 1)
	assert.Equal(t, 15, prop.Stock[0].Quantity)

	err = fleet.WithdrawCargo(ctx, player.ID, ship.LocationID, "drugs", 16)
	require.Error(t, err)
	assert.Equal(t, errcode.InsufficientCargoError, errcode.Of(err))

	// withdrawing the full quantity removes the line
	err = fleet.WithdrawCargo(ctx, player.ID, ship.LocationID, "drugs", 15)
	require.NoError(t, err)
	prop, err = fleet.Warehouse(ctx, player.ID, ship.LocationID)
	require.NoError(t, err)
	assert.Empty(t, prop.Stock)

	err = fleet.WithdrawCargo(ctx, player.ID, ship.LocationID, "drugs", 1)
	require.Error(t, err)
	assert.Equal(t, errcode.InsufficientCargoError, errcode.Of(err))
}
