package schema

import (
	"gorm.io/gorm"
)

// Version is the current save-file schema version. It is recorded in
// the schema_versions table when a save is created and drives the
// migration runner when an older save is opened.
const Version = "1.0.0"

// AllModels returns all schema models for GORM AutoMigrate, definition
// tables first so instance tables can reference them.
func AllModels() []interface{} {
	return []interface{}{
		&System{},
		&Celestial{},
		&Location{},
		&CommodityDef{},
		&CommodityCategory{},
		&EventDef{},
		&EventCondition{},
		&EventConditionTag{},
		&ShipClassDef{},
		&PropertyDef{},
		&ShipPartDef{},
		&Commodity{},
		&Player{},
		&Ship{},
		&ShipPart{},
		&Property{},
		&Cargo{},
		&Stock{},
		&World{},
		&SaveInfo{},
		&SchemaVersion{},
	}
}

// Migrate runs GORM AutoMigrate to create or update the save-file
// schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}
