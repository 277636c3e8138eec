package iotrade

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/voidtraders/voidtrade/pkg/errcode"
)

// InsufficientFundsError reports a purchase the player cannot afford.
// Cash and manifest are untouched when it is returned.
func InsufficientFundsError(commodity string, cost, cash int64) error {
	msg := "Buying <em>%s</em> costs %d credits, you have %d"
	vars := []any{commodity, cost, cash}
	return &gn.Error{
		Code: errcode.InsufficientFundsError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("insufficient funds for %s: cost %d, cash %d",
			commodity, cost, cash),
	}
}

// NotTradedError reports a commodity with no price assigned at the
// ship's current location.
func NotTradedError(commodity, location string) error {
	msg := `<em>%s</em> is not traded at <em>%s</em>

<em>How to fix:</em>
  1. Run <em>voidtrade market</em> to list local prices`
	vars := []any{commodity, location}
	return &gn.Error{
		Code: errcode.UnknownCommodityError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("%s is not traded at %s", commodity, location),
	}
}
