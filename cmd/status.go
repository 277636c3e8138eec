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
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"

	"github.com/voidtraders/voidtrade/internal/iofleet"
	"github.com/voidtraders/voidtrade/pkg/schema"
)

// statusCmd summarizes the playthrough.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show player, ship and cargo status",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func runStatus(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	ses, err := openSession(ctx)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer ses.Close()

	player, err := ses.player(ctx)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	ship, err := ses.ship(ctx)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	world, err := ses.store.World(ctx)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info("Commander <em>%s</em>, %s credits, tick %d.",
		player.Name, humanize.Comma(player.Cash), world.Tick)
	gn.Info("The <em>%s</em> (%s) is at <em>%s</em>, hold %d/%d.",
		ship.Name, ship.ClassDef.Name, ship.Location.Name,
		iofleet.Filled(ship), iofleet.Capacity(ship))

	if len(ship.Cargo) == 0 {
		gn.Info("The hold is empty.")
		return nil
	}

	names, err := cargoNames(ctx, ses, ship)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for i, line := range ship.Cargo {
		fmt.Fprintf(w, "%s\t%d units\tavg %s cr\n",
			names[i], line.Quantity,
			humanize.Commaf(line.AvgPrice))
	}
	return w.Flush()
}

// cargoNames resolves commodity names of every manifest line.
func cargoNames(
	ctx context.Context,
	ses *session,
	ship *schema.Ship,
) ([]string, error) {
	names := make([]string, len(ship.Cargo))
	db := ses.store.DB().WithContext(ctx)
	for i, line := range ship.Cargo {
		var def schema.CommodityDef
		if err := db.First(&def, line.CommodityDefID).Error; err != nil {
			return nil, err
		}
		names[i] = def.Name
	}
	return names, nil
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
