/*
Copyright © 2025 The voidtrade authors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// warehouseQty is the part of the traded quantity routed through the
// player's warehouse at the current location.
var warehouseQty int

// buyCmd purchases cargo at the current location.
var buyCmd = &cobra.Command{
	Use:   "buy <commodity> <quantity>",
	Short: "Buy cargo at the current location",
	Long: `Buy a quantity of a commodity at the current location's posted
price. With --warehouse some of the quantity goes into your warehouse
at the location instead of the hold. The purchase fails when the hold
is too small, you own no warehouse there, or the price exceeds your
cash; nothing changes in that case.

Examples:
  voidtrade buy grain 20
  voidtrade buy "machine parts" 5
  voidtrade buy grain 30 --warehouse 25`,
	Args: cobra.MinimumNArgs(2),
	RunE: runBuy,
}

func runBuy(_ *cobra.Command, args []string) error {
	return runTrade(args, true)
}

// runTrade settles a buy or sell command; the argument layout of the
// two commands is identical.
func runTrade(args []string, buy bool) error {
	ctx := context.Background()

	quantity, err := strconv.Atoi(args[len(args)-1])
	if err != nil || quantity < 1 {
		gn.Warn("The last argument must be a positive quantity.")
		return fmt.Errorf("invalid quantity %q", args[len(args)-1])
	}
	if warehouseQty < 0 || warehouseQty > quantity {
		gn.Warn("The warehouse share must be between 0 and the quantity.")
		return fmt.Errorf("invalid warehouse share %d of %d",
			warehouseQty, quantity)
	}
	holdQty := quantity - warehouseQty
	commodity := strings.Join(args[:len(args)-1], " ")

	ses, err := openSession(ctx)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer ses.Close()

	ship, err := ses.ship(ctx)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if buy {
		err = ses.trader.Buy(ctx, ship.ID, commodity, holdQty, warehouseQty)
	} else {
		err = ses.trader.Sell(ctx, ship.ID, commodity, holdQty, warehouseQty)
	}
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	player, err := ses.player(ctx)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	verb := "Bought"
	if !buy {
		verb = "Sold"
	}
	if warehouseQty > 0 {
		gn.Info("%s %d units of <em>%s</em> (%d hold, %d warehouse). "+
			"You have %s credits.",
			verb, quantity, commodity, holdQty, warehouseQty,
			humanize.Comma(player.Cash))
	} else {
		gn.Info("%s %d units of <em>%s</em>. You have %s credits.",
			verb, quantity, commodity, humanize.Comma(player.Cash))
	}
	return nil
}

func init() {
	rootCmd.AddCommand(buyCmd)
	buyCmd.Flags().IntVarP(&warehouseQty, "warehouse", "w", 0,
		"units of the quantity stored in your warehouse instead of the hold")
}
