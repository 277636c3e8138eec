package cmd

import (
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"

	"github.com/voidtraders/voidtrade/pkg/voidtrade"
)

// terminalPublisher surfaces market notifications on the terminal.
// Price updates are routine and only logged; event narratives are
// shown to the player.
type terminalPublisher struct{}

func (p *terminalPublisher) PriceUpdated(u voidtrade.PriceUpdate) {
	slog.Debug("Price updated",
		"location", u.Location, "commodity", u.Commodity, "price", u.Price)
}

func (p *terminalPublisher) MarketHappening(e voidtrade.MarketEvent) {
	gn.Info("%s <em>%s</em> trades at %s credits.",
		e.Narrative, e.Commodity, humanize.Comma(int64(e.Price)))
}
