package content

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/voidtraders/voidtrade/pkg/registry"
)

var titleCaser = cases.Title(language.English)

// Normalize title-cases every word of a name. It is applied to all
// name fields during validation, so "friesland station" and
// "Friesland station" refer to the same entity.
func Normalize(name string) string {
	return titleCaser.String(name)
}

// Validate checks both documents against the registry, normalizes all
// name fields, and merges them into a Bundle. Validation is fail-fast:
// on any violation no bundle is returned. Error messages are path
// qualified ("... @ systems[0].locations[1].celestial").
func Validate(
	base *BaseDoc,
	sys *SystemsDoc,
	reg *registry.Registry,
) (*Bundle, error) {
	if err := checkVersion("base", base.Version); err != nil {
		return nil, err
	}
	if err := checkVersion("systems", sys.Version); err != nil {
		return nil, err
	}

	res := &Bundle{
		Ships:       make([]ShipClassDef, len(base.Ships)),
		Properties:  make([]PropertyDef, len(base.Properties)),
		Parts:       make([]ShipPartDef, len(base.Parts)),
		Events:      make([]EventDef, len(base.Events)),
		Commodities: make([]CommodityDef, len(sys.Commodities)),
		Systems:     make([]SystemDef, len(sys.Systems)),
	}
	copy(res.Ships, base.Ships)
	copy(res.Properties, base.Properties)
	copy(res.Parts, base.Parts)
	copy(res.Events, base.Events)
	copy(res.Commodities, sys.Commodities)
	copy(res.Systems, sys.Systems)

	if err := validateShips(res.Ships); err != nil {
		return nil, err
	}
	if err := validateProperties(res.Properties); err != nil {
		return nil, err
	}
	if err := validateParts(res.Parts); err != nil {
		return nil, err
	}
	if err := validateEvents(res.Events, reg); err != nil {
		return nil, err
	}
	if err := validateCommodities(res.Commodities, reg); err != nil {
		return nil, err
	}
	if err := validateSystems(res.Systems, reg); err != nil {
		return nil, err
	}

	return res, nil
}

func checkVersion(doc string, got int) error {
	for _, v := range SupportedVersions {
		if got == v {
			return nil
		}
	}
	return versionError(doc, got)
}

func validateShips(ships []ShipClassDef) error {
	seen := map[string]struct{}{}
	for i := range ships {
		s := &ships[i]
		path := fmt.Sprintf("ships[%d]", i)
		if s.Name == "" {
			return requiredError(path + ".name")
		}
		s.Name = Normalize(s.Name)
		if _, ok := seen[s.Name]; ok {
			return duplicateError(path+".name", s.Name)
		}
		seen[s.Name] = struct{}{}
		if s.MeanPrice < 0 {
			return negativeError(path+".mean_price", s.MeanPrice)
		}
		if s.StdDev < 0 {
			return negativeError(path+".std_dev", s.StdDev)
		}
		if s.Storage < 0 {
			return negativeError(path+".storage", s.Storage)
		}
	}
	return nil
}

func validateProperties(props []PropertyDef) error {
	seen := map[string]struct{}{}
	for i := range props {
		p := &props[i]
		path := fmt.Sprintf("properties[%d]", i)
		if p.Name == "" {
			return requiredError(path + ".name")
		}
		p.Name = Normalize(p.Name)
		if _, ok := seen[p.Name]; ok {
			return duplicateError(path+".name", p.Name)
		}
		seen[p.Name] = struct{}{}
		if p.MeanPrice < 0 {
			return negativeError(path+".mean_price", p.MeanPrice)
		}
		if p.StdDev < 0 {
			return negativeError(path+".std_dev", p.StdDev)
		}
	}
	return nil
}

func validateParts(parts []ShipPartDef) error {
	seen := map[string]struct{}{}
	for i := range parts {
		p := &parts[i]
		path := fmt.Sprintf("parts[%d]", i)
		if p.Name == "" {
			return requiredError(path + ".name")
		}
		p.Name = Normalize(p.Name)
		if _, ok := seen[p.Name]; ok {
			return duplicateError(path+".name", p.Name)
		}
		seen[p.Name] = struct{}{}

		// exactly one of volume/storage must be set
		if (p.Volume == nil) == (p.Storage == nil) {
			return partExclusivityError(path, p.Name, p.Volume != nil)
		}
		if p.Volume != nil && *p.Volume < 0 {
			return negativeError(path+".volume", *p.Volume)
		}
		if p.Storage != nil && *p.Storage < 0 {
			return negativeError(path+".storage", *p.Storage)
		}
	}
	return nil
}

func validateEvents(events []EventDef, reg *registry.Registry) error {
	kindOK := reg.Validator(registry.EventType)
	tagOK := reg.Validator(registry.CommodityType)
	for i := range events {
		e := &events[i]
		path := fmt.Sprintf("events[%d]", i)
		if e.Name == "" {
			return requiredError(path + ".name")
		}
		e.Name = Normalize(e.Name)
		e.Position = i
		if err := kindOK(e.Kind); err != nil {
			return categoryError(path+".type", err)
		}
		if e.Adjustment < 0 {
			return negativeError(path+".adjustment", e.Adjustment)
		}
		for j, cond := range e.Affects {
			condPath := fmt.Sprintf("%s.affects[%d]", path, j)
			if len(cond) == 0 {
				return requiredError(condPath)
			}
			for _, tag := range cond {
				if err := tagOK(tag); err != nil {
					return categoryError(condPath, err)
				}
			}
		}
	}
	return nil
}

func validateCommodities(defs []CommodityDef, reg *registry.Registry) error {
	tagOK := reg.Validator(registry.CommodityType)
	seen := map[string]struct{}{}
	for i := range defs {
		d := &defs[i]
		path := fmt.Sprintf("commodities[%d]", i)
		if d.Name == "" {
			return requiredError(path + ".name")
		}
		d.Name = Normalize(d.Name)
		if _, ok := seen[d.Name]; ok {
			return duplicateError(path+".name", d.Name)
		}
		seen[d.Name] = struct{}{}
		if d.MeanPrice < 0 {
			return negativeError(path+".mean_price", d.MeanPrice)
		}
		if d.StdDev < 0 {
			return negativeError(path+".std_dev", d.StdDev)
		}
		for j, tag := range d.Categories {
			if err := tagOK(tag); err != nil {
				return categoryError(
					fmt.Sprintf("%s.categories[%d]", path, j), err)
			}
		}
	}
	return nil
}

func validateSystems(systems []SystemDef, reg *registry.Registry) error {
	celOK := reg.Validator(registry.CelestialType)
	locOK := reg.Validator(registry.LocationType)
	sysSeen := map[string]struct{}{}
	locSeen := map[string]struct{}{}

	for i := range systems {
		s := &systems[i]
		path := fmt.Sprintf("systems[%d]", i)
		if s.Name == "" {
			return requiredError(path + ".name")
		}
		s.Name = Normalize(s.Name)
		if _, ok := sysSeen[s.Name]; ok {
			return duplicateError(path+".name", s.Name)
		}
		sysSeen[s.Name] = struct{}{}

		celestials := map[string]struct{}{}
		for j := range s.Celestials {
			c := &s.Celestials[j]
			celPath := fmt.Sprintf("%s.celestials[%d]", path, j)
			if c.Name == "" {
				return requiredError(celPath + ".name")
			}
			c.Name = Normalize(c.Name)
			if _, ok := celestials[c.Name]; ok {
				return duplicateError(celPath+".name", c.Name)
			}
			celestials[c.Name] = struct{}{}
			if err := celOK(c.Kind); err != nil {
				return categoryError(celPath+".type", err)
			}
		}

		for j := range s.Locations {
			l := &s.Locations[j]
			locPath := fmt.Sprintf("%s.locations[%d]", path, j)
			if l.Name == "" {
				return requiredError(locPath + ".name")
			}
			l.Name = Normalize(l.Name)
			if _, ok := locSeen[l.Name]; ok {
				return duplicateError(locPath+".name", l.Name)
			}
			locSeen[l.Name] = struct{}{}
			if err := locOK(l.Kind); err != nil {
				return categoryError(locPath+".type", err)
			}
			if l.Celestial == "" {
				return requiredError(locPath + ".celestial")
			}
			l.Celestial = Normalize(l.Celestial)
			if _, ok := celestials[l.Celestial]; !ok {
				return celestialRefError(
					locPath+".celestial", s.Name, l.Celestial)
			}
		}
	}
	return nil
}
