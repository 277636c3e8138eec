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
	"fmt"

	"github.com/gnames/gn"
	"github.com/spf13/cobra"

	"github.com/voidtraders/voidtrade/internal/iofs"
)

// savesCmd lists existing save slots.
var savesCmd = &cobra.Command{
	Use:   "saves",
	Short: "List existing save slots",
	Long: `List the names of existing save slots. Any of them can be played
with the --save flag.`,
	Args: cobra.NoArgs,
	RunE: runSaves,
}

func runSaves(_ *cobra.Command, _ []string) error {
	saves, err := iofs.ListSaves(homeDir)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if len(saves) == 0 {
		gn.Info("No saved games yet. Start one with <em>voidtrade new</em>.")
		return nil
	}

	for _, name := range saves {
		fmt.Println(name)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(savesCmd)
}
