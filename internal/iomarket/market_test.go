package iomarket_test

import (
	"context"
	"math/rand/v2"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voidtraders/voidtrade/internal/iocontent"
	"github.com/voidtraders/voidtrade/internal/iomarket"
	"github.com/voidtraders/voidtrade/internal/iostore"
	"github.com/voidtraders/voidtrade/internal/iotesting"
	"github.com/voidtraders/voidtrade/pkg/config"
	"github.com/voidtraders/voidtrade/pkg/market"
	"github.com/voidtraders/voidtrade/pkg/schema"
	"github.com/voidtraders/voidtrade/pkg/voidtrade"
)

// scriptedRand replays a fixed draw sequence, reducing each draw
// modulo n.
type scriptedRand struct {
	draws []int
	pos   int
}

func (r *scriptedRand) IntN(n int) int {
	v := r.draws[r.pos%len(r.draws)]
	r.pos++
	return v % n
}

// recorder captures published notifications.
type recorder struct {
	updates []voidtrade.PriceUpdate
	events  []voidtrade.MarketEvent
}

func (r *recorder) PriceUpdated(u voidtrade.PriceUpdate) {
	r.updates = append(r.updates, u)
}

func (r *recorder) MarketHappening(e voidtrade.MarketEvent) {
	r.events = append(r.events, e)
}

func TestImplementsMarket(t *testing.T) {
	var _ voidtrade.Market = (*iomarket.Market)(nil)
}

func newSave(t *testing.T) *iostore.Store {
	t.Helper()

	loader := iocontent.New(iotesting.ContentDir(t))
	path := filepath.Join(t.TempDir(), "pilot.save")
	st, _, err := iostore.OpenOrCreate(context.Background(), path, loader)
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	_, _, err = st.NewGame(context.Background(), "pilot", config.GameConfig{
		StartingCash: 10_000,
	})
	require.NoError(t, err)
	return st
}

func TestInitializePricesEverything(t *testing.T) {
	st := newSave(t)
	rec := &recorder{}
	rng := rand.New(rand.NewPCG(7, 11))
	mkt := iomarket.New(st, market.New(rng), rec)

	err := mkt.Initialize(context.Background())
	require.NoError(t, err)

	var rows []schema.Commodity
	require.NoError(t, st.DB().Find(&rows).Error)
	require.Len(t, rows, 4)
	for _, row := range rows {
		assert.True(t, row.Price.Valid)
		assert.GreaterOrEqual(t, row.Price.Int64, int64(1))
	}
	// one update per commodity per location
	assert.Len(t, rec.updates, 4)
}

func TestArrivePublishesAndPersists(t *testing.T) {
	st := newSave(t)
	ctx := context.Background()
	rec := &recorder{}

	// Drugs: an increase event roll, matching the shortage event with
	// adjustment 25: 100 + (2*40 + 25) = 205.
	// Grain: inner-band increase with adjustment 5: 25 + 5 = 30.
	rng := &scriptedRand{draws: []int{99, 0, 0, 0, 5}}
	mkt := iomarket.New(st, market.New(rng), rec)

	err := mkt.Arrive(ctx, "friesland station")
	require.NoError(t, err)

	require.Len(t, rec.updates, 2)
	assert.Equal(t, "Friesland Station", rec.updates[0].Location)
	assert.Equal(t, "Drugs", rec.updates[0].Commodity)
	assert.Equal(t, 205, rec.updates[0].Price)
	assert.Equal(t, "Grain", rec.updates[1].Commodity)
	assert.Equal(t, 30, rec.updates[1].Price)

	require.Len(t, rec.events, 1)
	assert.Equal(t, "Drugs", rec.events[0].Commodity)
	assert.Equal(t, "A shortage of Drugs grips the market.", rec.events[0].Narrative)

	table, err := mkt.PriceTable(ctx, "friesland station")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"Drugs": 205, "Grain": 30}, table)
}

func TestArriveSyntheticNarrative(t *testing.T) {
	st := newSave(t)
	ctx := context.Background()
	rec := &recorder{}

	// Both commodities draw an increase event roll. Drugs matches the
	// shortage event; Grain has no event for its categories and falls
	// back to its mean with the neutral narrative.
	rng := &scriptedRand{draws: []int{99, 0}}
	mkt := iomarket.New(st, market.New(rng), rec)

	err := mkt.Arrive(ctx, "friesland station")
	require.NoError(t, err)

	require.Len(t, rec.events, 2)
	assert.Equal(t, "Grain is right on target.", rec.events[1].Narrative)
	assert.Equal(t, 25, rec.events[1].Price)
}

func TestArriveReassignsPrices(t *testing.T) {
	st := newSave(t)
	ctx := context.Background()
	rec := &recorder{}
	rng := rand.New(rand.NewPCG(3, 5))
	mkt := iomarket.New(st, market.New(rng), rec)

	require.NoError(t, mkt.Arrive(ctx, "friesland station"))
	_, err := st.AdvanceTick(ctx)
	require.NoError(t, err)
	require.NoError(t, mkt.Arrive(ctx, "friesland station"))

	loc, err := st.LocationByName(ctx, "friesland station")
	require.NoError(t, err)
	var rows []schema.Commodity
	err = st.DB().Where("location_id = ?", loc.ID).Find(&rows).Error
	require.NoError(t, err)
	for _, row := range rows {
		assert.True(t, row.Price.Valid)
		assert.Equal(t, int64(1), row.UpdatedTick)
	}
	assert.Len(t, rec.updates, 4)
}

func TestPriceTableOmitsUnpriced(t *testing.T) {
	st := newSave(t)
	rec := &recorder{}
	rng := rand.New(rand.NewPCG(1, 2))
	mkt := iomarket.New(st, market.New(rng), rec)

	table, err := mkt.PriceTable(context.Background(), "friesland yards")
	require.NoError(t, err)
	assert.Empty(t, table)
}
