package iofleet

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/voidtraders/voidtrade/internal/iostore"
	"github.com/voidtraders/voidtrade/pkg/schema"
)

// StoreCargo deposits quantity units of a commodity bought at
// unitPrice into the player's warehouse at a location. An existing
// stock line for the same commodity is merged with a weighted-average
// price; otherwise a new line is created. It fails with
// NoWarehouseError when the player owns no property at the location.
func (f *Fleet) StoreCargo(
	ctx context.Context,
	playerID, locationID uint,
	commodity string,
	quantity, unitPrice int,
) error {
	return f.db(ctx).Transaction(func(tx *gorm.DB) error {
		return f.StoreCargoTx(
			tx, playerID, locationID, commodity, quantity, unitPrice)
	})
}

// StoreCargoTx is StoreCargo operating on a caller-supplied
// transaction.
func (f *Fleet) StoreCargoTx(
	tx *gorm.DB,
	playerID, locationID uint,
	commodity string,
	quantity, unitPrice int,
) error {
	prop, err := warehouse(tx, playerID, locationID)
	if err != nil {
		return err
	}
	def, err := commodityDef(tx, commodity)
	if err != nil {
		return err
	}
	tick, err := worldTick(tx)
	if err != nil {
		return err
	}

	for i := range prop.Stock {
		line := &prop.Stock[i]
		if line.CommodityDefID != def.ID {
			continue
		}
		total := line.Quantity + quantity
		line.AvgPrice = (line.AvgPrice*float64(line.Quantity) +
			float64(unitPrice*quantity)) / float64(total)
		line.Quantity = total
		line.StoredTick = tick
		if err = tx.Save(line).Error; err != nil {
			return iostore.QueryError(err)
		}
		return nil
	}

	line := schema.Stock{
		PropertyID:     prop.ID,
		CommodityDefID: def.ID,
		Quantity:       quantity,
		AvgPrice:       float64(unitPrice),
		StoredTick:     tick,
	}
	if err = tx.Create(&line).Error; err != nil {
		return iostore.QueryError(err)
	}
	return nil
}

// WithdrawCargo takes quantity units of a commodity out of the
// player's warehouse at a location. It fails with
// InsufficientCargoError on overdraw and deletes the stock line when
// the full stored quantity is withdrawn.
func (f *Fleet) WithdrawCargo(
	ctx context.Context,
	playerID, locationID uint,
	commodity string,
	quantity int,
) error {
	return f.db(ctx).Transaction(func(tx *gorm.DB) error {
		return f.WithdrawCargoTx(tx, playerID, locationID, commodity, quantity)
	})
}

// WithdrawCargoTx is WithdrawCargo operating on a caller-supplied
// transaction.
func (f *Fleet) WithdrawCargoTx(
	tx *gorm.DB,
	playerID, locationID uint,
	commodity string,
	quantity int,
) error {
	prop, err := warehouse(tx, playerID, locationID)
	if err != nil {
		return err
	}
	def, err := commodityDef(tx, commodity)
	if err != nil {
		return err
	}

	for i := range prop.Stock {
		line := &prop.Stock[i]
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

// Warehouse returns the player's property at a location with its
// stock loaded.
func (f *Fleet) Warehouse(
	ctx context.Context,
	playerID, locationID uint,
) (*schema.Property, error) {
	return warehouse(f.db(ctx), playerID, locationID)
}

// warehouse resolves the property that stores a player's goods at a
// location. A player owning several properties there stores in the
// oldest one.
func warehouse(
	tx *gorm.DB,
	playerID, locationID uint,
) (*schema.Property, error) {
	var loc schema.Location
	if err := tx.First(&loc, locationID).Error; err != nil {
		return nil, iostore.QueryError(err)
	}

	var prop schema.Property
	err := tx.
		Preload("Stock").
		Where("player_id = ? AND location_id = ?", playerID, locationID).
		Order("id").
		First(&prop).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NoWarehouseError(loc.Name)
	}
	if err != nil {
		return nil, iostore.QueryError(err)
	}
	return &prop, nil
}
