// Package iotesting provides shared test utilities: it writes a small,
// fully valid content directory used by loader, store and market
// tests. This is an internal package for test infrastructure only.
package iotesting

import (
	"os"
	"path/filepath"
	"testing"
)

// TypesYAML is a minimal, valid types document.
const TypesYAML = `version: 1
types:
  CommodityType: [cargo, ship, food, metal, fuel, chemical, illegal]
  CelestialType: [star, planet, moon]
  LocationType: [station, settlement, shipyard]
  EventType: [sale, shortage]
  OrderStatusType: [open, filled, cancelled]
`

// BaseYAML declares one ship class, one property, two ship parts and
// two events with resolved category conjunctions.
const BaseYAML = `version: 1
ships:
  - name: ship
    mean_price: 3000
    std_dev: 700
    depreciation: 0.8
    storage: 50
    weapon_mounts: 2
properties:
  - name: property
    mean_price: 20000
    std_dev: 5000
    depreciation: 0.7
parts:
  - name: cargo pod
    mean_price: 200
    std_dev: 50
    depreciation: 0.4
    storage: 20
  - name: scanner
    mean_price: 100
    std_dev: 20
    depreciation: 0.4
    volume: 2
events:
  - name: price lower
    type: sale
    message: "A glut of {commodity} floods the market."
    adjustment: 25
    affects:
      - chemical
      - [chemical, illegal]
  - name: price higher
    type: shortage
    message: "A shortage of {commodity} grips the market."
    adjustment: 25
    affects:
      - [chemical, illegal]
`

// SystemsYAML declares the system "Test" with celestials "Primary" and
// "Friesland", two locations, and two commodities.
const SystemsYAML = `version: 1
commodities:
  - name: drugs
    mean_price: 100
    std_dev: 40
    depreciation: 0.1
    volume: 1
    categories: [chemical, illegal]
  - name: grain
    mean_price: 25
    std_dev: 10
    depreciation: 0.2
    volume: 2
    categories: [food]
systems:
  - name: test
    celestials:
      - {name: primary, orbit: 0, type: star}
      - {name: friesland, orbit: 1, type: planet}
    locations:
      - name: friesland station
        type: station
        celestial: friesland
      - name: friesland yards
        type: shipyard
        celestial: friesland
`

// ContentDir writes the fixture content files into a fresh temporary
// directory and returns its path.
func ContentDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	files := map[string]string{
		"types.yaml":   TypesYAML,
		"base.yaml":    BaseYAML,
		"systems.yaml": SystemsYAML,
	}
	for name, body := range files {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(body), 0644); err != nil {
			t.Fatalf("cannot write fixture %s: %v", name, err)
		}
	}
	return dir
}
