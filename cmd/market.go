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
	"os"
	"sort"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// marketCmd prints the commodity prices at a location.
var marketCmd = &cobra.Command{
	Use:   "market [location]",
	Short: "Show commodity prices at a location",
	Long: `Show the current commodity prices at a location. Without an
argument the ship's current location is used.

Examples:
  voidtrade market
  voidtrade market "bastion high port"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMarket,
}

func runMarket(_ *cobra.Command, args []string) error {
	ctx := context.Background()

	ses, err := openSession(ctx)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer ses.Close()

	var location string
	if len(args) > 0 {
		location = args[0]
	} else {
		ship, err := ses.ship(ctx)
		if err != nil {
			gn.PrintErrorMessage(err)
			return err
		}
		location = ship.Location.Name
	}

	table, err := ses.market.PriceTable(ctx, location)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if len(table) == 0 {
		gn.Info("No prices are posted at <em>%s</em> yet.", location)
		return nil
	}

	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, name := range names {
		fmt.Fprintf(w, "%s\t%s cr\n", name,
			humanize.Comma(int64(table[name])))
	}
	return w.Flush()
}

func init() {
	rootCmd.AddCommand(marketCmd)
}
