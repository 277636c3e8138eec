// Package iofleet tracks ships, their holds, their movement and the
// warehouse stock a player keeps ashore. Capacity invariants are
// enforced here: a manifest is never left in a state that exceeds the
// ship's effective storage. Every cargo mutation has a Tx variant
// operating on a caller-supplied transaction, so a trade settlement
// can combine cargo and cash writes atomically.
package iofleet

import (
	"context"
	"errors"
	"log/slog"

	"gorm.io/gorm"

	"github.com/voidtraders/voidtrade/internal/iostore"
	"github.com/voidtraders/voidtrade/pkg/content"
	"github.com/voidtraders/voidtrade/pkg/schema"
)

// Fleet implements voidtrade.Fleet on top of a Store.
type Fleet struct {
	store *iostore.Store
}

// New wires a fleet to a store.
func New(store *iostore.Store) *Fleet {
	return &Fleet{store: store}
}

// AddCargo loads quantity units of a commodity bought at unitPrice.
// An existing manifest line for the same commodity is merged with a
// weighted-average price; otherwise a new line is created. The load
// fails with CapacityExceededError when the hold cannot take it, and
// the manifest stays untouched.
func (f *Fleet) AddCargo(
	ctx context.Context,
	shipID uint,
	commodity string,
	quantity, unitPrice int,
) error {
	return f.db(ctx).Transaction(func(tx *gorm.DB) error {
		return f.AddCargoTx(tx, shipID, commodity, quantity, unitPrice)
	})
}

// AddCargoTx is AddCargo operating on a caller-supplied transaction.
func (f *Fleet) AddCargoTx(
	tx *gorm.DB,
	shipID uint,
	commodity string,
	quantity, unitPrice int,
) error {
	ship, err := loadShip(tx, shipID)
	if err != nil {
		return err
	}
	def, err := commodityDef(tx, commodity)
	if err != nil {
		return err
	}

	capacity := Capacity(ship)
	filled := Filled(ship)
	if filled+quantity > capacity {
		return CapacityExceededError(ship.Name, quantity, capacity-filled)
	}

	tick, err := worldTick(tx)
	if err != nil {
		return err
	}

	for i := range ship.Cargo {
		line := &ship.Cargo[i]
		if line.CommodityDefID != def.ID {
			continue
		}
		total := line.Quantity + quantity
		line.AvgPrice = (line.AvgPrice*float64(line.Quantity) +
			float64(unitPrice*quantity)) / float64(total)
		line.Quantity = total
		line.PurchasedTick = tick
		if err = tx.Save(line).Error; err != nil {
			return iostore.QueryError(err)
		}
		return nil
	}

	line := schema.Cargo{
		ShipID:         ship.ID,
		CommodityDefID: def.ID,
		Quantity:       quantity,
		AvgPrice:       float64(unitPrice),
		PurchasedTick:  tick,
	}
	if err = tx.Create(&line).Error; err != nil {
		return iostore.QueryError(err)
	}
	return nil
}

// RemoveCargo unloads quantity units of a commodity. It fails with
// InsufficientCargoError on overdraw and deletes the manifest line
// when the full held quantity is unloaded.
func (f *Fleet) RemoveCargo(
	ctx context.Context,
	shipID uint,
	commodity string,
	quantity int,
) error {
	return f.db(ctx).Transaction(func(tx *gorm.DB) error {
		return f.RemoveCargoTx(tx, shipID, commodity, quantity)
	})
}

// RemoveCargoTx is RemoveCargo operating on a caller-supplied
// transaction.
func (f *Fleet) RemoveCargoTx(
	tx *gorm.DB,
	shipID uint,
	commodity string,
	quantity int,
) error {
	ship, err := loadShip(tx, shipID)
	if err != nil {
		return err
	}
	def, err := commodityDef(tx, commodity)
	if err != nil {
		return err
	}

	for i := range ship.Cargo {
		line := &ship.Cargo[i]
		if line.CommodityDefID != def.ID {
			continue
		}
		if quantity > line.Quantity {
			return InsufficientCargoError(def.Name, quantity, line.Quantity)
		}
		if quantity == line.Quantity {
			if err = tx.Delete(line).Error; err != nil {
				return iostore.QueryError(err)
			}
			return nil
		}
		line.Quantity -= quantity
		if err = tx.Save(line).Error; err != nil {
			return iostore.QueryError(err)
		}
		return nil
	}

	return InsufficientCargoError(def.Name, quantity, 0)
}

// SetLocation moves a ship, advances the world tick and returns the
// recomputed valid-destination list: every location in the ship's new
// system except the one it now occupies. The move and the tick
// advance commit together.
func (f *Fleet) SetLocation(
	ctx context.Context,
	shipID uint,
	location string,
) ([]string, error) {
	ship, err := f.Ship(ctx, shipID)
	if err != nil {
		return nil, err
	}
	loc, err := f.store.LocationByName(ctx, location)
	if err != nil {
		return nil, err
	}

	err = f.db(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&schema.Ship{}).
			Where("id = ?", ship.ID).
			Update("location_id", loc.ID).Error
		if err != nil {
			return iostore.QueryError(err)
		}
		return advanceTick(tx)
	})
	if err != nil {
		return nil, err
	}

	dests, err := f.destinations(ctx, loc)
	if err != nil {
		return nil, err
	}

	slog.Debug("Ship moved",
		"ship", ship.Name, "location", loc.Name, "destinations", len(dests))
	return dests, nil
}

// Ship returns a ship with its class, parts and manifest loaded.
func (f *Fleet) Ship(
	ctx context.Context,
	shipID uint,
) (*schema.Ship, error) {
	return loadShip(f.db(ctx), shipID)
}

// Capacity is the effective storage of a ship: its class storage plus
// the storage bonus of every installed part, minus the hold space the
// parts themselves consume.
func Capacity(ship *schema.Ship) int {
	res := ship.ClassDef.Storage
	for _, part := range ship.Parts {
		if part.Def.Storage != nil {
			res += *part.Def.Storage
		}
		if part.Def.Volume != nil {
			res -= *part.Def.Volume
		}
	}
	return res
}

// Filled is the total quantity aboard a ship.
func Filled(ship *schema.Ship) int {
	var res int
	for _, line := range ship.Cargo {
		res += line.Quantity
	}
	return res
}

func (f *Fleet) db(ctx context.Context) *gorm.DB {
	return f.store.DB().WithContext(ctx)
}

func loadShip(tx *gorm.DB, shipID uint) (*schema.Ship, error) {
	var ship schema.Ship
	err := tx.
		Preload("ClassDef").
		Preload("Parts.Def").
		Preload("Cargo").
		Preload("Location").
		First(&ship, shipID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NoShipError(shipID)
	}
	if err != nil {
		return nil, iostore.QueryError(err)
	}
	return &ship, nil
}

func commodityDef(tx *gorm.DB, name string) (*schema.CommodityDef, error) {
	var def schema.CommodityDef
	err := tx.
		Where("name = ?", content.Normalize(name)).
		First(&def).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, UnknownCommodityError(name)
	}
	if err != nil {
		return nil, iostore.QueryError(err)
	}
	return &def, nil
}

func worldTick(tx *gorm.DB) (int64, error) {
	var w schema.World
	if err := tx.First(&w).Error; err != nil {
		return 0, iostore.QueryError(err)
	}
	return w.Tick, nil
}

func advanceTick(tx *gorm.DB) error {
	var w schema.World
	if err := tx.First(&w).Error; err != nil {
		return iostore.QueryError(err)
	}
	w.Tick++
	if err := tx.Save(&w).Error; err != nil {
		return iostore.QueryError(err)
	}
	return nil
}

// destinations lists every location in the same system as loc, minus
// loc itself, ordered by name.
func (f *Fleet) destinations(
	ctx context.Context,
	loc *schema.Location,
) ([]string, error) {
	var cel schema.Celestial
	db := f.db(ctx)
	if err := db.First(&cel, loc.CelestialID).Error; err != nil {
		return nil, iostore.QueryError(err)
	}

	var names []string
	err := db.Model(&schema.Location{}).
		Joins("JOIN celestials ON celestials.id = locations.celestial_id").
		Where("celestials.system_id = ? AND locations.id <> ?",
			cel.SystemID, loc.ID).
		Order("locations.name").
		Pluck("locations.name", &names).Error
	if err != nil {
		return nil, iostore.QueryError(err)
	}
	return names, nil
}
