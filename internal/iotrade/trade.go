// Package iotrade settles buy and sell requests. It composes the
// fleet's cargo operations with the current market prices and the
// player's cash balance. A settlement runs in one transaction, so a
// failed check or a failed leg leaves cash, the hold and the
// warehouse untouched.
package iotrade

import (
	"context"
	"log/slog"

	"gorm.io/gorm"

	"github.com/voidtraders/voidtrade/internal/iofleet"
	"github.com/voidtraders/voidtrade/internal/iostore"
	"github.com/voidtraders/voidtrade/pkg/content"
	"github.com/voidtraders/voidtrade/pkg/schema"
)

// Trader implements voidtrade.Trader.
type Trader struct {
	store *iostore.Store
	fleet *iofleet.Fleet
}

// New wires a trader to a store and a fleet.
func New(store *iostore.Store, fleet *iofleet.Fleet) *Trader {
	return &Trader{store: store, fleet: fleet}
}

// Buy purchases holdQty+warehouseQty units of a commodity at the
// ship's current location, loading holdQty into the hold and storing
// warehouseQty in the player's warehouse there. The funds check on
// the full quantity runs first, then the capacity check; cash is
// deducted in the same transaction that moves the cargo.
func (t *Trader) Buy(
	ctx context.Context,
	shipID uint,
	commodity string,
	holdQty, warehouseQty int,
) error {
	ship, err := t.fleet.Ship(ctx, shipID)
	if err != nil {
		return err
	}
	price, err := t.price(ctx, ship, commodity)
	if err != nil {
		return err
	}
	player, err := t.player(ctx, ship.PlayerID)
	if err != nil {
		return err
	}

	quantity := holdQty + warehouseQty
	cost := int64(price) * int64(quantity)
	if cost > player.Cash {
		return InsufficientFundsError(commodity, cost, player.Cash)
	}
	cash := player.Cash - cost

	err = t.store.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if holdQty > 0 {
			err := t.fleet.AddCargoTx(tx, shipID, commodity, holdQty, price)
			if err != nil {
				return err
			}
		}
		if warehouseQty > 0 {
			err := t.fleet.StoreCargoTx(tx,
				ship.PlayerID, ship.LocationID, commodity, warehouseQty, price)
			if err != nil {
				return err
			}
		}
		return t.settleCash(tx, player.ID, cash)
	})
	if err != nil {
		return err
	}

	slog.Debug("Bought cargo",
		"commodity", commodity, "hold", holdQty, "warehouse", warehouseQty,
		"price", price, "cash", cash)
	return nil
}

// Sell unloads holdQty units from the hold and warehouseQty units
// from the player's warehouse at the ship's current location, and
// credits the proceeds at the current price. The unload and the
// credit commit together.
func (t *Trader) Sell(
	ctx context.Context,
	shipID uint,
	commodity string,
	holdQty, warehouseQty int,
) error {
	ship, err := t.fleet.Ship(ctx, shipID)
	if err != nil {
		return err
	}
	price, err := t.price(ctx, ship, commodity)
	if err != nil {
		return err
	}
	player, err := t.player(ctx, ship.PlayerID)
	if err != nil {
		return err
	}

	quantity := holdQty + warehouseQty
	cash := player.Cash + int64(price)*int64(quantity)

	err = t.store.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if holdQty > 0 {
			err := t.fleet.RemoveCargoTx(tx, shipID, commodity, holdQty)
			if err != nil {
				return err
			}
		}
		if warehouseQty > 0 {
			err := t.fleet.WithdrawCargoTx(tx,
				ship.PlayerID, ship.LocationID, commodity, warehouseQty)
			if err != nil {
				return err
			}
		}
		return t.settleCash(tx, player.ID, cash)
	})
	if err != nil {
		return err
	}

	slog.Debug("Sold cargo",
		"commodity", commodity, "hold", holdQty, "warehouse", warehouseQty,
		"price", price, "cash", cash)
	return nil
}

func (t *Trader) settleCash(tx *gorm.DB, playerID uint, cash int64) error {
	err := tx.Model(&schema.Player{}).
		Where("id = ?", playerID).
		Update("cash", cash).Error
	if err != nil {
		return iostore.QueryError(err)
	}
	return nil
}

// price looks up the current price of a commodity at the ship's
// location. A commodity without an assigned price is not traded there.
func (t *Trader) price(
	ctx context.Context,
	ship *schema.Ship,
	commodity string,
) (int, error) {
	name := content.Normalize(commodity)

	var row schema.Commodity
	err := t.store.DB().WithContext(ctx).
		Joins("JOIN commodity_defs ON commodity_defs.id = commodities.commodity_def_id").
		Where("commodity_defs.name = ? AND commodities.location_id = ?",
			name, ship.LocationID).
		First(&row).Error
	if err != nil || !row.Price.Valid {
		return 0, NotTradedError(name, ship.Location.Name)
	}
	return int(row.Price.Int64), nil
}

func (t *Trader) player(
	ctx context.Context,
	playerID uint,
) (*schema.Player, error) {
	var player schema.Player
	err := t.store.DB().WithContext(ctx).First(&player, playerID).Error
	if err != nil {
		return nil, iostore.QueryError(err)
	}
	return &player, nil
}
