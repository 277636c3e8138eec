package schema

// Explicit table names keep the save-file layout stable across GORM
// naming-strategy changes.

func (System) TableName() string            { return "systems" }
func (Celestial) TableName() string         { return "celestials" }
func (Location) TableName() string          { return "locations" }
func (CommodityDef) TableName() string      { return "commodity_defs" }
func (CommodityCategory) TableName() string { return "commodity_categories" }
func (Commodity) TableName() string         { return "commodities" }
func (EventDef) TableName() string          { return "event_defs" }
func (EventCondition) TableName() string    { return "event_conditions" }
func (EventConditionTag) TableName() string { return "event_condition_tags" }
func (ShipClassDef) TableName() string      { return "ship_class_defs" }
func (PropertyDef) TableName() string       { return "property_defs" }
func (ShipPartDef) TableName() string       { return "ship_part_defs" }
func (Player) TableName() string            { return "players" }
func (Ship) TableName() string              { return "ships" }
func (ShipPart) TableName() string          { return "ship_parts" }
func (Property) TableName() string          { return "properties" }
func (Cargo) TableName() string             { return "cargo" }
func (Stock) TableName() string             { return "stock" }
func (World) TableName() string             { return "world" }
func (SaveInfo) TableName() string          { return "save_info" }
func (SchemaVersion) TableName() string     { return "schema_versions" }
