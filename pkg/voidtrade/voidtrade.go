// Package voidtrade defines the contracts between the game core and
// its collaborators (the terminal UI and the CLI). Implementations
// live in internal/io* packages.
package voidtrade

import (
	"context"
)

// PriceUpdate is published whenever the market assigns a new price to
// a commodity at a location.
type PriceUpdate struct {
	Location  string
	Commodity string
	Price     int
}

// MarketEvent is published when an event roll produced a narrative.
type MarketEvent struct {
	Location  string
	Commodity string
	Price     int
	Narrative string
}

// Publisher is the message-passing primitive the core publishes market
// notifications through. The bus implementation itself is a
// collaborator concern.
type Publisher interface {
	PriceUpdated(PriceUpdate)
	MarketHappening(MarketEvent)
}

// Market recalculates and exposes commodity prices.
type Market interface {
	// Initialize assigns a first price to every commodity at every
	// location of a freshly created save.
	Initialize(ctx context.Context) error

	// Arrive refreshes every commodity price at a location. It runs
	// whenever a ship arrives there; repeat arrivals re-trigger it.
	Arrive(ctx context.Context, location string) error

	// PriceTable returns the current commodity name -> price mapping
	// for one location. Commodities without an assigned price are
	// omitted.
	PriceTable(ctx context.Context, location string) (map[string]int, error)
}

// Fleet tracks ships, their holds and their movement.
type Fleet interface {
	// AddCargo loads quantity units of a commodity bought at
	// unitPrice, merging into an existing manifest line with a
	// weighted-average price. Fails with CapacityExceededError when
	// the hold cannot take the quantity; the manifest is untouched.
	AddCargo(
		ctx context.Context,
		shipID uint,
		commodity string,
		quantity, unitPrice int,
	) error

	// RemoveCargo unloads quantity units. Fails with
	// InsufficientCargoError on overdraw; removes the line entirely
	// when the full quantity is unloaded.
	RemoveCargo(
		ctx context.Context,
		shipID uint,
		commodity string,
		quantity int,
	) error

	// SetLocation moves a ship and returns its recomputed
	// valid-destination list: all known in-system locations minus the
	// new current one. It is the trigger point for Market.Arrive.
	SetLocation(
		ctx context.Context,
		shipID uint,
		location string,
	) ([]string, error)

	// StoreCargo deposits quantity units into the player's warehouse
	// at a location, merging into an existing stock line with a
	// weighted-average price. Fails with NoWarehouseError when the
	// player owns no property there.
	StoreCargo(
		ctx context.Context,
		playerID, locationID uint,
		commodity string,
		quantity, unitPrice int,
	) error

	// WithdrawCargo takes quantity units out of the player's
	// warehouse at a location. Fails with InsufficientCargoError on
	// overdraw; removes the stock line entirely when the full
	// quantity is withdrawn.
	WithdrawCargo(
		ctx context.Context,
		playerID, locationID uint,
		commodity string,
		quantity int,
	) error
}

// Trader settles buy and sell requests against a player's cash, a
// ship's hold and the player's warehouse at the ship's location. The
// traded quantity is split between hold and warehouse; a settlement
// is atomic, so a failed leg leaves cash and both manifests
// untouched.
type Trader interface {
	Buy(
		ctx context.Context,
		shipID uint,
		commodity string,
		holdQty, warehouseQty int,
	) error
	Sell(
		ctx context.Context,
		shipID uint,
		commodity string,
		holdQty, warehouseQty int,
	) error
}
