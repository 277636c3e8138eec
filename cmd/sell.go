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
	"github.com/spf13/cobra"
)

// sellCmd sells cargo at the current location.
var sellCmd = &cobra.Command{
	Use:   "sell <commodity> <quantity>",
	Short: "Sell cargo at the current location",
	Long: `Sell a quantity of a commodity from the hold at the current
location's posted price. With --warehouse some of the quantity is
taken from your warehouse at the location instead of the hold.

Examples:
  voidtrade sell grain 20
  voidtrade sell "machine parts" 5
  voidtrade sell grain 30 --warehouse 25`,
	Args: cobra.MinimumNArgs(2),
	RunE: runSell,
}

func runSell(_ *cobra.Command, args []string) error {
	return runTrade(args, false)
}

func init() {
	rootCmd.AddCommand(sellCmd)
	sellCmd.Flags().IntVarP(&warehouseQty, "warehouse", "w", 0,
		"units of the quantity taken from your warehouse instead of the hold")
}
