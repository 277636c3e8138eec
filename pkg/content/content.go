// Package content defines the static game-content documents (ship
// classes, properties, ship parts, market events, and the galaxy
// topology) and validates them against the type registry. The package
// is pure: reading content files from disk lives in internal/iocontent.
package content

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// SupportedVersions lists the content-document versions this build
// accepts. Both base.yaml and systems.yaml must declare one of them.
var SupportedVersions = []int{1}

// Event kinds recognized by the pricing engine.
const (
	EventSale     = "sale"
	EventShortage = "shortage"
)

// CommodityDef is a tradeable good's static pricing parameters.
type CommodityDef struct {
	Name         string   `yaml:"name"`
	MeanPrice    int      `yaml:"mean_price"`
	StdDev       int      `yaml:"std_dev"`
	Depreciation float64  `yaml:"depreciation"`
	Volume       int      `yaml:"volume"`
	Categories   []string `yaml:"categories"`
}

// ShipClassDef describes a purchasable ship class.
type ShipClassDef struct {
	Name         string  `yaml:"name"`
	MeanPrice    int     `yaml:"mean_price"`
	StdDev       int     `yaml:"std_dev"`
	Depreciation float64 `yaml:"depreciation"`
	Storage      int     `yaml:"storage"`
	WeaponMounts int     `yaml:"weapon_mounts"`
}

// PropertyDef describes a purchasable property.
type PropertyDef struct {
	Name         string  `yaml:"name"`
	MeanPrice    int     `yaml:"mean_price"`
	StdDev       int     `yaml:"std_dev"`
	Depreciation float64 `yaml:"depreciation"`
}

// ShipPartDef describes an installable ship part. Exactly one of
// Volume (space consumed) and Storage (space granted) must be set;
// the validator enforces this at load time.
type ShipPartDef struct {
	Name         string  `yaml:"name"`
	MeanPrice    int     `yaml:"mean_price"`
	StdDev       int     `yaml:"std_dev"`
	Depreciation float64 `yaml:"depreciation"`
	Volume       *int    `yaml:"volume"`
	Storage      *int    `yaml:"storage"`
}

// Condition is one "affects" entry of an event: a conjunction of
// commodity category tags, satisfied when every tag applies to the
// commodity being priced. In YAML it is either a scalar tag or a list
// of tags.
type Condition []string

// UnmarshalYAML accepts both the scalar and the list form.
func (c *Condition) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var tag string
		if err := value.Decode(&tag); err != nil {
			return err
		}
		*c = Condition{tag}
		return nil
	case yaml.SequenceNode:
		var tags []string
		if err := value.Decode(&tags); err != nil {
			return err
		}
		*c = Condition(tags)
		return nil
	default:
		return fmt.Errorf(
			"affects entry must be a tag or a list of tags, got %v",
			value.Kind,
		)
	}
}

// EventDef is a rare, data-defined price override tied to one or more
// commodity categories.
type EventDef struct {
	Name       string      `yaml:"name"`
	Kind       string      `yaml:"type"`
	Message    string      `yaml:"message"`
	Adjustment int         `yaml:"adjustment"`
	Affects    []Condition `yaml:"affects"`

	// Position is the declaration order inside base.yaml; event
	// selection is first-match in this order.
	Position int `yaml:"-"`
}

// CelestialDef is a star, planet or moon inside a system.
type CelestialDef struct {
	Name  string `yaml:"name"`
	Orbit int    `yaml:"orbit"`
	Kind  string `yaml:"type"`
}

// LocationDef is a place a ship can travel to and trade at. Celestial
// must name a celestial defined in the same system.
type LocationDef struct {
	Name      string `yaml:"name"`
	Kind      string `yaml:"type"`
	Celestial string `yaml:"celestial"`
}

// SystemDef is a star system: an ordered set of celestials plus the
// locations hosted on them.
type SystemDef struct {
	Name       string         `yaml:"name"`
	Celestials []CelestialDef `yaml:"celestials"`
	Locations  []LocationDef  `yaml:"locations"`
}

// BaseDoc is the parsed base.yaml document.
type BaseDoc struct {
	Version    int            `yaml:"version"`
	Ships      []ShipClassDef `yaml:"ships"`
	Properties []PropertyDef  `yaml:"properties"`
	Parts      []ShipPartDef  `yaml:"parts"`
	Events     []EventDef     `yaml:"events"`
}

// SystemsDoc is the parsed systems.yaml document.
type SystemsDoc struct {
	Version     int            `yaml:"version"`
	Commodities []CommodityDef `yaml:"commodities"`
	Systems     []SystemDef    `yaml:"systems"`
}

// Bundle is the merged, validated content: the system document folded
// into the base document, with the version keys dropped.
type Bundle struct {
	Ships       []ShipClassDef
	Properties  []PropertyDef
	Parts       []ShipPartDef
	Events      []EventDef
	Commodities []CommodityDef
	Systems     []SystemDef
}

// ParseBase reads a base.yaml document without validating it.
func ParseBase(data []byte) (*BaseDoc, error) {
	var doc BaseDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, parseError("base", err)
	}
	return &doc, nil
}

// ParseSystems reads a systems.yaml document without validating it.
func ParseSystems(data []byte) (*SystemsDoc, error) {
	var doc SystemsDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, parseError("systems", err)
	}
	return &doc, nil
}
