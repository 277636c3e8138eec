package content_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voidtraders/voidtrade/pkg/content"
	"github.com/voidtraders/voidtrade/pkg/errcode"
	"github.com/voidtraders/voidtrade/pkg/registry"
)

const typesDoc = `
version: 1
types:
  CommodityType: [cargo, ship, food, metal, fuel, chemical, illegal]
  CelestialType: [star, planet, moon]
  LocationType: [station, settlement, shipyard]
  EventType: [sale, shortage]
  OrderStatusType: [open, filled, cancelled]
`

const baseDoc = `
version: 1
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
    message: "A glut of goods floods the market on {location}."
    adjustment: 25
    affects:
      - chemical
      - [chemical, illegal]
  - name: price higher
    type: shortage
    message: "Customs crackdowns dry up supply across {location}."
    adjustment: 25
    affects:
      - [chemical, illegal]
`

const systemsDoc = `
version: 1
commodities:
  - name: drugs
    mean_price: 100
    std_dev: 40
    depreciation: 0.1
    volume: 1
    categories: [chemical, illegal]
systems:
  - name: test
    celestials:
      - {name: primary, orbit: 0, type: star}
      - {name: friesland, orbit: 1, type: planet}
    locations:
      - name: friesland station
        type: station
        celestial: friesland
`

func mustRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	reg, err := registry.Parse([]byte(typesDoc))
	require.NoError(t, err)
	return reg
}

func mustDocs(t *testing.T) (*content.BaseDoc, *content.SystemsDoc) {
	t.Helper()
	base, err := content.ParseBase([]byte(baseDoc))
	require.NoError(t, err)
	sys, err := content.ParseSystems([]byte(systemsDoc))
	require.NoError(t, err)
	return base, sys
}

func TestValidate(t *testing.T) {
	reg := mustRegistry(t)
	base, sys := mustDocs(t)

	bundle, err := content.Validate(base, sys, reg)
	require.NoError(t, err)
	require.NotNil(t, bundle)

	// names are title-cased during validation
	assert.Equal(t, "Ship", bundle.Ships[0].Name)
	assert.Equal(t, "Property", bundle.Properties[0].Name)
	assert.Equal(t, "Cargo Pod", bundle.Parts[0].Name)
	assert.Equal(t, "Drugs", bundle.Commodities[0].Name)
	assert.Equal(t, "Test", bundle.Systems[0].Name)
	assert.Equal(t, "Primary", bundle.Systems[0].Celestials[0].Name)
	assert.Equal(t, "Friesland", bundle.Systems[0].Celestials[1].Name)
	assert.Equal(t, "Friesland Station", bundle.Systems[0].Locations[0].Name)
	assert.Equal(t, "Friesland", bundle.Systems[0].Locations[0].Celestial)

	// categories stay lowercase tags
	assert.Equal(t, []string{"chemical", "illegal"},
		bundle.Commodities[0].Categories)

	// polymorphic affects: scalar folded into one-tag conjunction
	ev := bundle.Events[0]
	assert.Equal(t, "Price Lower", ev.Name)
	assert.Equal(t, content.EventSale, ev.Kind)
	require.Len(t, ev.Affects, 2)
	assert.Equal(t, content.Condition{"chemical"}, ev.Affects[0])
	assert.Equal(t, content.Condition{"chemical", "illegal"}, ev.Affects[1])

	// declaration order is preserved for first-match selection
	assert.Equal(t, 0, bundle.Events[0].Position)
	assert.Equal(t, 1, bundle.Events[1].Position)
}

func TestValidateVersion(t *testing.T) {
	reg := mustRegistry(t)
	base, sys := mustDocs(t)

	base.Version = 99
	_, err := content.Validate(base, sys, reg)
	require.Error(t, err)
	assert.Equal(t, errcode.DataFormatError, errcode.Of(err))

	base.Version = 1
	sys.Version = 0
	_, err = content.Validate(base, sys, reg)
	require.Error(t, err)
	assert.Equal(t, errcode.DataFormatError, errcode.Of(err))
}

func TestValidateCelestialReference(t *testing.T) {
	reg := mustRegistry(t)
	base, sys := mustDocs(t)

	sys.Systems[0].Locations[0].Celestial = "vanished moon"
	_, err := content.Validate(base, sys, reg)
	require.Error(t, err)
	assert.Equal(t, errcode.ReferentialIntegrityError, errcode.Of(err))
	// the message names the exact celestial
	assert.Contains(t, err.Error(), "Vanished Moon")
}

func TestValidatePartExclusivity(t *testing.T) {
	reg := mustRegistry(t)

	two := 2
	twenty := 20
	tests := []struct {
		msg     string
		volume  *int
		storage *int
		ok      bool
	}{
		{"volume only", &two, nil, true},
		{"storage only", nil, &twenty, true},
		{"both set", &two, &twenty, false},
		{"neither set", nil, nil, false},
	}

	for _, v := range tests {
		base, sys := mustDocs(t)
		base.Parts = []content.ShipPartDef{{
			Name:    "widget",
			Volume:  v.volume,
			Storage: v.storage,
		}}
		_, err := content.Validate(base, sys, reg)
		if v.ok {
			assert.NoError(t, err, v.msg)
		} else {
			require.Error(t, err, v.msg)
			assert.Equal(t, errcode.DataFormatError, errcode.Of(err), v.msg)
			assert.Contains(t, err.Error(), "Widget", v.msg)
		}
	}
}

func TestValidateUnknownCategory(t *testing.T) {
	reg := mustRegistry(t)

	t.Run("commodity category", func(t *testing.T) {
		base, sys := mustDocs(t)
		sys.Commodities[0].Categories = []string{"granite"}
		_, err := content.Validate(base, sys, reg)
		require.Error(t, err)
		assert.Equal(t, errcode.UnknownCategoryError, errcode.Of(err))
	})

	t.Run("event affects tag", func(t *testing.T) {
		base, sys := mustDocs(t)
		base.Events[0].Affects = []content.Condition{{"granite"}}
		_, err := content.Validate(base, sys, reg)
		require.Error(t, err)
		assert.Equal(t, errcode.UnknownCategoryError, errcode.Of(err))
		assert.Contains(t, err.Error(), "events[0].affects[0]")
	})

	t.Run("celestial type", func(t *testing.T) {
		base, sys := mustDocs(t)
		sys.Systems[0].Celestials[0].Kind = "comet"
		_, err := content.Validate(base, sys, reg)
		require.Error(t, err)
		assert.Equal(t, errcode.UnknownCategoryError, errcode.Of(err))
	})
}

func TestValidateRequired(t *testing.T) {
	reg := mustRegistry(t)
	base, sys := mustDocs(t)

	base.Ships[0].Name = ""
	_, err := content.Validate(base, sys, reg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ships[0].name")
}

func TestValidateDuplicateNames(t *testing.T) {
	reg := mustRegistry(t)
	base, sys := mustDocs(t)

	sys.Commodities = append(sys.Commodities, content.CommodityDef{
		Name:       "DRUGS",
		Categories: []string{"chemical"},
	})
	_, err := content.Validate(base, sys, reg)
	require.Error(t, err)
	assert.Equal(t, errcode.DataFormatError, errcode.Of(err))
	assert.Contains(t, err.Error(), "commodities[1].name")
}
