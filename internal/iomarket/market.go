// Package iomarket binds the pure price model to the save-file store
// and the notification publisher. It loads commodity parameters and
// event definitions from the save, recalculates prices and persists
// the results.
package iomarket

import (
	"context"
	"database/sql"
	"log/slog"
	"sync"

	"gorm.io/gorm"

	"github.com/voidtraders/voidtrade/internal/iostore"
	"github.com/voidtraders/voidtrade/pkg/market"
	"github.com/voidtraders/voidtrade/pkg/schema"
	"github.com/voidtraders/voidtrade/pkg/voidtrade"
)

// Market implements voidtrade.Market on top of a Store.
type Market struct {
	store  *iostore.Store
	pricer *market.Pricer
	pub    voidtrade.Publisher

	mu     sync.Mutex
	events []market.Event
}

// New wires a market to a store, a pricer and a publisher.
func New(
	store *iostore.Store,
	pricer *market.Pricer,
	pub voidtrade.Publisher,
) *Market {
	return &Market{store: store, pricer: pricer, pub: pub}
}

// Initialize assigns a first price to every commodity at every
// location. It runs once after a save is created, so no commodity
// stays priceless.
func (m *Market) Initialize(ctx context.Context) error {
	var locs []schema.Location
	err := m.store.DB().WithContext(ctx).Order("id").Find(&locs).Error
	if err != nil {
		return iostore.QueryError(err)
	}
	for i := range locs {
		if err = m.refresh(ctx, &locs[i]); err != nil {
			return err
		}
	}
	return nil
}

// Arrive refreshes every commodity price at a location. Repeat
// arrivals re-trigger the recalculation; prices are not sticky.
func (m *Market) Arrive(ctx context.Context, location string) error {
	loc, err := m.store.LocationByName(ctx, location)
	if err != nil {
		return err
	}
	return m.refresh(ctx, loc)
}

// PriceTable returns the commodity name to price mapping at one
// location, omitting commodities without an assigned price.
func (m *Market) PriceTable(
	ctx context.Context,
	location string,
) (map[string]int, error) {
	loc, err := m.store.LocationByName(ctx, location)
	if err != nil {
		return nil, err
	}

	rows, err := m.commoditiesAt(ctx, loc.ID)
	if err != nil {
		return nil, err
	}

	res := make(map[string]int, len(rows))
	for _, row := range rows {
		if !row.Price.Valid {
			continue
		}
		res[row.CommodityDef.Name] = int(row.Price.Int64)
	}
	return res, nil
}

func (m *Market) refresh(ctx context.Context, loc *schema.Location) error {
	events, err := m.eventList(ctx)
	if err != nil {
		return err
	}
	rows, err := m.commoditiesAt(ctx, loc.ID)
	if err != nil {
		return err
	}
	world, err := m.store.World(ctx)
	if err != nil {
		return err
	}

	db := m.store.DB().WithContext(ctx)
	for i := range rows {
		row := &rows[i]
		def := row.CommodityDef

		cats := make([]string, len(def.Categories))
		for j, cat := range def.Categories {
			cats[j] = cat.Tag
		}
		price, outcome := m.pricer.Recalculate(market.Commodity{
			Name:       def.Name,
			MeanPrice:  def.MeanPrice,
			StdDev:     def.StdDev,
			Categories: cats,
		}, events)

		row.Price = sql.NullInt64{Int64: int64(price), Valid: true}
		row.UpdatedTick = world.Tick
		err = db.Model(&schema.Commodity{}).
			Where("id = ?", row.ID).
			Updates(map[string]any{
				"price":        row.Price,
				"updated_tick": row.UpdatedTick,
			}).Error
		if err != nil {
			return iostore.QueryError(err)
		}

		m.pub.PriceUpdated(voidtrade.PriceUpdate{
			Location:  loc.Name,
			Commodity: def.Name,
			Price:     price,
		})
		if outcome != nil {
			if outcome.Synthetic {
				slog.Warn("No event matches commodity categories",
					"commodity", def.Name, "categories", cats)
			}
			m.pub.MarketHappening(voidtrade.MarketEvent{
				Location:  loc.Name,
				Commodity: def.Name,
				Price:     price,
				Narrative: outcome.Message,
			})
		}
	}

	slog.Debug("Recalculated market prices",
		"location", loc.Name, "commodities", len(rows))
	return nil
}

func (m *Market) commoditiesAt(
	ctx context.Context,
	locationID uint,
) ([]schema.Commodity, error) {
	var rows []schema.Commodity
	err := m.store.DB().WithContext(ctx).
		Preload("CommodityDef.Categories").
		Where("location_id = ?", locationID).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, iostore.QueryError(err)
	}
	return rows, nil
}

// eventList loads event definitions once per Market. Events are
// definition data: immutable after population, so the cache never
// goes stale within a session.
func (m *Market) eventList(ctx context.Context) ([]market.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.events != nil {
		return m.events, nil
	}

	var defs []schema.EventDef
	err := m.store.DB().WithContext(ctx).
		Preload("Conditions", func(db *gorm.DB) *gorm.DB {
			return db.Order("ordinal")
		}).
		Preload("Conditions.Tags").
		Order("position").
		Find(&defs).Error
	if err != nil {
		return nil, iostore.QueryError(err)
	}

	events := make([]market.Event, len(defs))
	for i, def := range defs {
		conds := make([][]string, len(def.Conditions))
		for j, cond := range def.Conditions {
			tags := make([]string, len(cond.Tags))
			for k, tag := range cond.Tags {
				tags[k] = tag.Tag
			}
			conds[j] = tags
		}
		events[i] = market.Event{
			Name:       def.Name,
			Kind:       def.Kind,
			Message:    def.Message,
			Adjustment: def.Adjustment,
			Conditions: conds,
		}
	}
	m.events = events
	return events, nil
}
