// Package schema provides the save-file database models for voidtrade.
// Definition tables mirror the static content ("what this version of
// the game knows about") and are immutable after population; instance
// tables hold per-playthrough mutable state.
package schema

import (
	"database/sql"
	"time"
)

// System is a star system.
type System struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:255;not null;uniqueIndex"`
}

// Celestial is a star, planet or moon. Orbit defines ordering within
// the system. Names are unique per system, not globally.
type Celestial struct {
	ID       uint   `gorm:"primaryKey"`
	SystemID uint   `gorm:"not null;uniqueIndex:idx_celestial_system_name"`
	Name     string `gorm:"size:255;not null;uniqueIndex:idx_celestial_system_name"`
	Orbit    int    `gorm:"not null"`
	Kind     string `gorm:"size:64;not null"`

	System System
}

// Location is a place a ship can travel to and trade at. A location
// cannot exist without its celestial.
type Location struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:255;not null;uniqueIndex"`
	Kind        string `gorm:"size:64;not null"`
	CelestialID uint   `gorm:"not null"`

	Celestial Celestial
}

// CommodityDef holds a tradeable good's static pricing parameters.
type CommodityDef struct {
	ID           uint    `gorm:"primaryKey"`
	Name         string  `gorm:"size:255;not null;uniqueIndex"`
	MeanPrice    int     `gorm:"not null"`
	StdDev       int     `gorm:"not null"`
	Depreciation float64 `gorm:"not null"`
	Volume       int     `gorm:"not null"`

	Categories []CommodityCategory
}

// CommodityCategory is one category tag of a commodity definition.
// Tags are members of the CommodityType registry.
type CommodityCategory struct {
	ID             uint   `gorm:"primaryKey"`
	CommodityDefID uint   `gorm:"not null;uniqueIndex:idx_commodity_category"`
	Tag            string `gorm:"size:64;not null;uniqueIndex:idx_commodity_category"`
}

// Commodity is a commodity definition materialized at one location
// with a live price. At most one row exists per (definition, location)
// pair. Price stays unset until the first market recalculation.
type Commodity struct {
	ID             uint          `gorm:"primaryKey"`
	CommodityDefID uint          `gorm:"not null;uniqueIndex:idx_commodity_def_location"`
	LocationID     uint          `gorm:"not null;uniqueIndex:idx_commodity_def_location"`
	Price          sql.NullInt64 `gorm:""`
	UpdatedTick    int64         `gorm:"not null;default:0"`

	CommodityDef CommodityDef
	Location     Location
}

// EventDef is a rare, data-defined price override. Kind is a member of
// the EventType registry; Position preserves declaration order for
// first-match selection.
type EventDef struct {
	ID         uint   `gorm:"primaryKey"`
	Name       string `gorm:"size:255;not null"`
	Kind       string `gorm:"size:64;not null"`
	Message    string `gorm:"not null"`
	Adjustment int    `gorm:"not null"`
	Position   int    `gorm:"not null"`

	Conditions []EventCondition
}

// EventCondition is one "affects" entry of an event: a conjunction of
// category tags satisfied when every tag applies to the commodity.
type EventCondition struct {
	ID         uint `gorm:"primaryKey"`
	EventDefID uint `gorm:"not null;index"`
	Ordinal    int  `gorm:"not null"`

	Tags []EventConditionTag
}

// EventConditionTag is one category tag inside a condition.
type EventConditionTag struct {
	ID               uint   `gorm:"primaryKey"`
	EventConditionID uint   `gorm:"not null;index"`
	Tag              string `gorm:"size:64;not null"`
}

// ShipClassDef describes a purchasable ship class as a sellable asset
// plus its cargo storage and weapon mounts.
type ShipClassDef struct {
	ID           uint    `gorm:"primaryKey"`
	Name         string  `gorm:"size:255;not null;uniqueIndex"`
	MeanPrice    int     `gorm:"not null"`
	StdDev       int     `gorm:"not null"`
	Depreciation float64 `gorm:"not null"`
	Storage      int     `gorm:"not null"`
	WeaponMounts int     `gorm:"not null"`
}

// PropertyDef describes a purchasable property.
type PropertyDef struct {
	ID           uint    `gorm:"primaryKey"`
	Name         string  `gorm:"size:255;not null;uniqueIndex"`
	MeanPrice    int     `gorm:"not null"`
	StdDev       int     `gorm:"not null"`
	Depreciation float64 `gorm:"not null"`
}

// ShipPartDef describes an installable ship part. Exactly one of
// Volume and Storage is set; the content validator guarantees it
// before rows are created.
type ShipPartDef struct {
	ID           uint    `gorm:"primaryKey"`
	Name         string  `gorm:"size:255;not null;uniqueIndex"`
	MeanPrice    int     `gorm:"not null"`
	StdDev       int     `gorm:"not null"`
	Depreciation float64 `gorm:"not null"`
	Volume       *int
	Storage      *int
}

// Player is the commanding trader of one playthrough.
type Player struct {
	ID         uint   `gorm:"primaryKey"`
	Name       string `gorm:"size:255;not null;uniqueIndex"`
	Credential string `gorm:"size:255"`
	Cash       int64  `gorm:"not null"`
}

// Ship is a ship instance built from a class definition. Condition is
// a damage value, 100 means factory state.
type Ship struct {
	ID         uint   `gorm:"primaryKey"`
	Name       string `gorm:"size:255;not null"`
	ClassDefID uint   `gorm:"not null"`
	PlayerID   uint   `gorm:"not null"`
	LocationID uint   `gorm:"not null"`
	Condition  int    `gorm:"not null;default:100"`

	ClassDef ShipClassDef `gorm:"foreignKey:ClassDefID"`
	Location Location
	Parts    []ShipPart
	Cargo    []Cargo
}

// ShipPart is a part installed on a ship.
type ShipPart struct {
	ID     uint `gorm:"primaryKey"`
	DefID  uint `gorm:"not null"`
	ShipID uint `gorm:"not null;index"`

	Def ShipPartDef `gorm:"foreignKey:DefID"`
}

// Property is a property instance owned by a player at a location.
type Property struct {
	ID         uint `gorm:"primaryKey"`
	DefID      uint `gorm:"not null"`
	PlayerID   uint `gorm:"not null;index"`
	LocationID uint `gorm:"not null;index"`

	Def      PropertyDef `gorm:"foreignKey:DefID"`
	Location Location
	Stock    []Stock `gorm:"foreignKey:PropertyID"`
}

// Cargo is one manifest line aboard a ship: quantity of one commodity
// with its weighted-average purchase price.
type Cargo struct {
	ID             uint    `gorm:"primaryKey"`
	ShipID         uint    `gorm:"not null;uniqueIndex:idx_cargo_ship_commodity"`
	CommodityDefID uint    `gorm:"not null;uniqueIndex:idx_cargo_ship_commodity"`
	Quantity       int     `gorm:"not null"`
	AvgPrice       float64 `gorm:"not null"`
	PurchasedTick  int64   `gorm:"not null"`

	CommodityDef CommodityDef
}

// Stock is one warehouse manifest line: quantity of one commodity
// stored at a player's property, with its weighted-average purchase
// price.
type Stock struct {
	ID             uint    `gorm:"primaryKey"`
	PropertyID     uint    `gorm:"not null;uniqueIndex:idx_stock_property_commodity"`
	CommodityDefID uint    `gorm:"not null;uniqueIndex:idx_stock_property_commodity"`
	Quantity       int     `gorm:"not null"`
	AvgPrice       float64 `gorm:"not null"`
	StoredTick     int64   `gorm:"not null"`

	CommodityDef CommodityDef
}

// World is a single global row holding the elapsed-tick counter of a
// running game. It is created together with the player, not when the
// save file is populated.
type World struct {
	ID   uint  `gorm:"primaryKey"`
	Tick int64 `gorm:"not null;default:0"`
}

// SaveInfo is a single row of save-file metadata, written once when
// the definition tables are populated.
type SaveInfo struct {
	ID                 uint      `gorm:"primaryKey"`
	PlaythroughID      string    `gorm:"size:64;not null"`
	ContentFingerprint string    `gorm:"size:64;not null"`
	CreatedAt          time.Time `gorm:"not null"`
}

// SchemaVersion tracks save-file schema migrations.
type SchemaVersion struct {
	Version     string `gorm:"primaryKey;size:64"`
	Description string
	AppliedAt   time.Time
}
