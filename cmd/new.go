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

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"

	"github.com/voidtraders/voidtrade/internal/iocontent"
	"github.com/voidtraders/voidtrade/internal/iostore"
	"github.com/voidtraders/voidtrade/pkg/config"
)

// newCmd creates a new game in the selected save slot.
var newCmd = &cobra.Command{
	Use:   "new [player-name]",
	Short: "Create a new game",
	Long: `Create a new game in the save slot selected with --save.

The save file is built from the game-content files: the galaxy, its
markets and every ship and part definition are copied in, then your
player and starting ship are created at the first location.

Examples:
  voidtrade new
  voidtrade new Ripley
  voidtrade new Ripley --save second-run`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNew,
}

func runNew(_ *cobra.Command, args []string) error {
	ctx := context.Background()

	playerName := saveName
	if len(args) > 0 {
		playerName = args[0]
	}

	path := config.SaveFilePath(homeDir, saveName)
	if _, err := os.Stat(path); err == nil {
		gn.Warn("The save slot <em>%s</em> already exists.", saveName)
		gn.Warn("Pick another name with <em>--save</em> or delete the file.")
		return fmt.Errorf("save %s already exists", path)
	}

	loader := iocontent.New(cfg.Content.Dir)
	st, _, err := iostore.OpenOrCreate(ctx, path, loader)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer st.Close()

	player, ship, err := st.NewGame(ctx, playerName, cfg.Game)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	ses := newSession(st)
	if err = ses.market.Initialize(ctx); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	docked, err := ses.ship(ctx)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info("Welcome, commander <em>%s</em>.", player.Name)
	gn.Info("Your <em>%s</em> is docked at <em>%s</em>.",
		ship.Name, docked.Location.Name)
	gn.Info("You have %s credits.", humanize.Comma(player.Cash))
	return nil
}

func init() {
	rootCmd.AddCommand(newCmd)
}
