package iotrade_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voidtraders/voidtrade/internal/iocontent"
	"github.com/voidtraders/voidtrade/internal/iofleet"
	"github.com/voidtraders/voidtrade/internal/iostore"
	"github.com/voidtraders/voidtrade/internal/iotesting"
	"github.com/voidtraders/voidtrade/internal/iotrade"
	"github.com/voidtraders/voidtrade/pkg/config"
	"github.com/voidtraders/voidtrade/pkg/errcode"
	"github.com/voidtraders/voidtrade/pkg/schema"
	"github.com/voidtraders/voidtrade/pkg/voidtrade"
)

func TestImplementsTrader(t *testing.T) {
	var _ voidtrade.Trader = (*iotrade.Trader)(nil)
}

func newTrader(t *testing.T) (*iotrade.Trader, *iostore.Store, *schema.Ship) {
	t.Helper()
	ctx := context.Background()

	loader := iocontent.New(iotesting.ContentDir(t))
	path := filepath.Join(t.TempDir(), "pilot.save")
	st, _, err := iostore.OpenOrCreate(ctx, path, loader)
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	_, ship, err := st.NewGame(ctx, "ripley",
		config.GameConfig{StartingCash: 10_000})
	require.NoError(t, err)

	// price drugs at the starting location; grain stays unpriced
	setPrice(t, st, ship.LocationID, "Drugs", 100)

	return iotrade.New(st, iofleet.New(st)), st, ship
}

func setPrice(
	t *testing.T,
	st *iostore.Store,
	locationID uint,
	commodity string,
	price int,
) {
	t.Helper()
	var def schema.CommodityDef
	err := st.DB().Where("name = ?", commodity).First(&def).Error
	require.NoError(t, err)
	err = st.DB().Model(&schema.Commodity{}).
		Where("commodity_def_id = ? AND location_id = ?", def.ID, locationID).
		Update("price", sql.NullInt64{Int64: int64(price), Valid: true}).Error
	require.NoError(t, err)
}

// grantProperty gives the ship's owner a property at the ship's
// location.
func grantProperty(t *testing.T, st *iostore.Store, ship *schema.Ship) {
	t.Helper()
	var def schema.PropertyDef
	require.NoError(t, st.DB().First(&def).Error)
	require.NoError(t, st.DB().Create(&schema.Property{
		DefID:      def.ID,
		PlayerID:   ship.PlayerID,
		LocationID: ship.LocationID,
	}).Error)
}

func cash(t *testing.T, st *iostore.Store) int64 {
	t.Helper()
	var player schema.Player
	require.NoError(t, st.DB().First(&player).Error)
	return player.Cash
}

func TestBuy(t *testing.T) {
	trader, st, ship := newTrader(t)
	ctx := context.Background()

	require.NoError(t, trader.Buy(ctx, ship.ID, "drugs", 10, 0))
	assert.Equal(t, int64(9_000), cash(t, st))

	var line schema.Cargo
	require.NoError(t, st.DB().First(&line).Error)
	assert.Equal(t, 10, line.Quantity)
	assert.InDelta(t, 100.0, line.AvgPrice, 1e-9)
}

func TestBuySplit(t *testing.T) {
	trader, st, ship := newTrader(t)
	ctx := context.Background()
	grantProperty(t, st, ship)

	// 60 hold-only units would exceed the 50-unit hold; routing 20
	// through the warehouse makes the same purchase fit
	require.NoError(t, trader.Buy(ctx, ship.ID, "drugs", 40, 20))
	assert.Equal(t, int64(4_000), cash(t, st))

	var line schema.Cargo
	require.NoError(t, st.DB().First(&line).Error)
	assert.Equal(t, 40, line.Quantity)

	var stock schema.Stock
	require.NoError(t, st.DB().First(&stock).Error)
	assert.Equal(t, 20, stock.Quantity)
	assert.InDelta(t, 100.0, stock.AvgPrice, 1e-9)
}

func TestBuyInsufficientFunds(t *testing.T) {
	trader, st, ship := newTrader(t)

	err := trader.Buy(context.Background(), ship.ID, "drugs", 200, 0)
	require.Error(t, err)
	assert.Equal(t, errcode.InsufficientFundsError, errcode.Of(err))
	assert.Equal(t, int64(10_000), cash(t, st))

	var lines []schema.Cargo
	require.NoError(t, st.DB().Find(&lines).Error)
	assert.Empty(t, lines)
}

func TestBuyCapacityLeavesCash(t *testing.T) {
	trader, st, ship := newTrader(t)
	ctx := context.Background()

	// 60 units at 100 is affordable at 6000 but exceeds the 50-unit
	// hold; cash must stay untouched
	err := trader.Buy(ctx, ship.ID, "drugs", 60, 0)
	require.Error(t, err)
	assert.Equal(t, errcode.CapacityExceededError, errcode.Of(err))
	assert.Equal(t, int64(10_000), cash(t, st))
}

func TestBuyNoWarehouseRollsBack(t *testing.T) {
	trader, st, ship := newTrader(t)
	ctx := context.Background()

	// the hold leg settles before the warehouse leg fails; the whole
	// settlement must roll back
	err := trader.Buy(ctx, ship.ID, "drugs", 10, 5)
	require.Error(t, err)
	assert.Equal(t, errcode.NoWarehouseError, errcode.Of(err))
	assert.Equal(t, int64(10_000), cash(t, st))

	var lines []schema.Cargo
	require.NoError(t, st.DB().Find(&lines).Error)
	assert.Empty(t, lines)
}

func TestSell(t *testing.T) {
	trader, st, ship := newTrader(t)
	ctx := context.Background()

	require.NoError(t, trader.Buy(ctx, ship.ID, "drugs", 10, 0))
	require.NoError(t, trader.Sell(ctx, ship.ID, "drugs", 5, 0))
	assert.Equal(t, int64(9_500), cash(t, st))

	var line schema.Cargo
	require.NoError(t, st.DB().First(&line).Error)
	assert.Equal(t, 5, line.Quantity)
}

func TestSellFromWarehouse(t *testing.T) {
	trader, st, ship := newTrader(t)
	ctx := context.Background()
	grantProperty(t, st, ship)

	require.NoError(t, trader.Buy(ctx, ship.ID, "drugs", 10, 20))
	require.NoError(t, trader.Sell(ctx, ship.ID, "drugs", 5, 15))
	assert.Equal(t, int64(9_000), cash(t, st))

	var line schema.Cargo
	require.NoError(t, st.DB().First(&line).Error)
	assert.Equal(t, 5, line.Quantity)

	var stock schema.Stock
	require.NoError(t, st.DB().First(&stock).Error)
	assert.Equal(t, 5, stock.Quantity)
}

func TestSellInsufficientCargo(t *testing.T) {
	trader, st, ship := newTrader(t)
	ctx := context.Background()

	require.NoError(t, trader.Buy(ctx, ship.ID, "drugs", 5, 0))
	err := trader.Sell(ctx, ship.ID, "drugs", 6, 0)
	require.Error(t, err)
	assert.Equal(t, errcode.InsufficientCargoError, errcode.Of(err))
	assert.Equal(t, int64(9_500), cash(t, st))
}

func TestSellWarehouseOverdrawRollsBack(t *testing.T) {
	trader, st, ship := newTrader(t)
	ctx := context.Background()
	grantProperty(t, st, ship)

	require.NoError(t, trader.Buy(ctx, ship.ID, "drugs", 10, 5))

	// the hold unload settles before the warehouse overdraw fails
	err := trader.Sell(ctx, ship.ID, "drugs", 10, 6)
	require.Error(t, err)
	assert.Equal(t, errcode.InsufficientCargoError, errcode.Of(err))
	assert.Equal(t, int64(8_500), cash(t, st))

	var line schema.Cargo
	require.NoError(t, st.DB().First(&line).Error)
	assert.Equal(t, 10, line.Quantity)
}

func TestBuyNotTraded(t *testing.T) {
	trader, st, ship := newTrader(t)

	err := trader.Buy(context.Background(), ship.ID, "grain", 1, 0)
	require.Error(t, err)
	assert.Equal(t, errcode.UnknownCommodityError, errcode.Of(err))
	assert.Equal(t, int64(10_000), cash(t, st))
}
