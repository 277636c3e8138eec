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
	"strings"

	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// travelCmd moves the ship to another location.
var travelCmd = &cobra.Command{
	Use:   "travel <destination>",
	Short: "Fly to another location",
	Long: `Fly the ship to another location in the system. Arrival refreshes
the local market: every commodity gets a new price and rare market
events may fire.

Examples:
  voidtrade travel "verdant landing"
  voidtrade travel scatter refinery`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTravel,
}

func runTravel(_ *cobra.Command, args []string) error {
	ctx := context.Background()
	destination := strings.Join(args, " ")

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

	dests, err := ses.fleet.SetLocation(ctx, ship.ID, destination)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = ses.market.Arrive(ctx, destination); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info("The <em>%s</em> has arrived at <em>%s</em>.",
		ship.Name, destination)
	if len(dests) > 0 {
		gn.Info("From here you can reach: %s.",
			strings.Join(dests, ", "))
	}
	return nil
}

func init() {
	rootCmd.AddCommand(travelCmd)
}
