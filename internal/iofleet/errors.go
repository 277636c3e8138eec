package iofleet

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/voidtraders/voidtrade/pkg/errcode"
)

// CapacityExceededError reports a cargo load that does not fit the
// ship's hold. The manifest is untouched when it is returned.
func CapacityExceededError(ship string, quantity, free int) error {
	msg := `The <em>%s</em> cannot take %d more units, only %d fit

<em>How to fix:</em>
  1. Sell or unload cargo first
  2. Install cargo pods to extend the hold`
	vars := []any{ship, quantity, free}
	return &gn.Error{
		Code: errcode.CapacityExceededError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("capacity exceeded on %s: %d requested, %d free",
			ship, quantity, free),
	}
}

// InsufficientCargoError reports an unload of more units than held.
func InsufficientCargoError(commodity string, quantity, held int) error {
	msg := "Cannot unload %d units of <em>%s</em>, only %d held"
	vars := []any{quantity, commodity, held}
	return &gn.Error{
		Code: errcode.InsufficientCargoError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("insufficient cargo %s: %d requested, %d held",
			commodity, quantity, held),
	}
}

// UnknownCommodityError reports a commodity name absent from the
// content data.
func UnknownCommodityError(name string) error {
	msg := `There is no commodity named <em>%s</em>

<em>How to fix:</em>
  1. Run <em>voidtrade market</em> to list tradeable commodities`
	vars := []any{name}
	return &gn.Error{
		Code: errcode.UnknownCommodityError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("unknown commodity %q", name),
	}
}

// NoWarehouseError reports a warehouse operation at a location where
// the player owns no property.
func NoWarehouseError(location string) error {
	msg := `You own no property at <em>%s</em> to store goods in

<em>How to fix:</em>
  1. Keep the goods in the ship's hold
  2. Acquire a property at this location first`
	vars := []any{location}
	return &gn.Error{
		Code: errcode.NoWarehouseError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("no property owned at %s", location),
	}
}

// NoShipError reports a ship id absent from the save.
func NoShipError(id uint) error {
	msg := "There is no ship with id <em>%d</em> in this saved game"
	vars := []any{id}
	return &gn.Error{
		Code: errcode.UnknownShipError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("no ship with id %d", id),
	}
}
