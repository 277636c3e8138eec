// Package main provides the voidtrade CLI application, a single-player
// text space-trading game.
package main

import (
	"github.com/voidtraders/voidtrade/cmd"
)

func main() {
	cmd.Execute()
}
