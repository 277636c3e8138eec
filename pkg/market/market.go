// Package market implements the stochastic commodity price model. The
// package is pure: it computes prices from static parameters and an
// injected random source, and leaves persistence and event publishing
// to internal/iomarket.
package market

import (
	"strings"
)

// Event kinds. On an event roll the price direction picks the kind:
// a decrease looks for a sale, an increase for a shortage.
const (
	KindSale     = "sale"
	KindShortage = "shortage"
)

// Rand is the random source the price model draws from. The standard
// *rand.Rand of math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

// Commodity carries the static parameters the model needs.
type Commodity struct {
	Name       string
	MeanPrice  int
	StdDev     int
	Categories []string
}

// Event is a data-defined price override. Conditions is the list of
// "affects" conjunctions; an event applies to a commodity when at
// least one conjunction is fully contained in the commodity's
// categories. Events are ordered as declared in content.
type Event struct {
	Name       string
	Kind       string
	Message    string
	Adjustment int
	Conditions [][]string
}

// Outcome describes the narrative side of an event roll. Synthetic is
// true when no matching event existed in content and the neutral
// fallback was substituted - a data-authoring anomaly worth logging.
type Outcome struct {
	Event     *Event
	Message   string
	Synthetic bool
}

// Pricer computes new prices from uniform random draws.
type Pricer struct {
	rng Rand
}

// New creates a Pricer drawing from rng.
func New(rng Rand) *Pricer {
	return &Pricer{rng: rng}
}

// Recalculate draws a new price for a commodity. The distribution,
// given uniform draws:
//
//   - 68%: price = mean ± uniform[0, σ]
//   - 27%: price = mean ± uniform[σ, 2σ]
//   - 5%: an event - price = mean ∓ (2σ + event adjustment), with the
//     event narrative; without a matching event the price falls back
//     to the mean with a neutral narrative.
//
// The result is clamped to a minimum of 1. The second return value is
// nil unless an event roll happened.
func (p *Pricer) Recalculate(c Commodity, events []Event) (int, *Outcome) {
	roll := p.rng.IntN(100) + 1
	decrease := p.rng.IntN(2) == 1

	var price int
	var outcome *Outcome

	switch {
	case roll <= 68:
		price = adjusted(c.MeanPrice, p.rng.IntN(c.StdDev+1), decrease)
	case roll <= 95:
		adj := c.StdDev + p.rng.IntN(c.StdDev+1)
		price = adjusted(c.MeanPrice, adj, decrease)
	default:
		price, outcome = p.eventPrice(c, events, decrease)
	}

	if price < 1 {
		price = 1
	}
	return price, outcome
}

func (p *Pricer) eventPrice(
	c Commodity,
	events []Event,
	decrease bool,
) (int, *Outcome) {
	kind := KindShortage
	if decrease {
		kind = KindSale
	}

	ev := firstMatch(events, kind, c.Categories)
	if ev == nil {
		// content defines no event for this commodity and
		// direction; substitute the neutral narrative
		return c.MeanPrice, &Outcome{
			Message:   c.Name + " is right on target.",
			Synthetic: true,
		}
	}

	price := adjusted(c.MeanPrice, 2*c.StdDev+ev.Adjustment, decrease)
	return price, &Outcome{
		Event:   ev,
		Message: renderMessage(ev.Message, c.Name),
	}
}

// firstMatch returns the first event, in declaration order, whose kind
// matches and which applies to the given categories.
func firstMatch(events []Event, kind string, categories []string) *Event {
	for i := range events {
		ev := &events[i]
		if ev.Kind != kind {
			continue
		}
		if Applies(ev, categories) {
			return ev
		}
	}
	return nil
}

// Applies reports whether an event applies to a commodity with the
// given categories: some condition of the event must have every one of
// its tags among the categories.
func Applies(ev *Event, categories []string) bool {
	set := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		set[c] = struct{}{}
	}
	for _, cond := range ev.Conditions {
		if len(cond) == 0 {
			continue
		}
		all := true
		for _, tag := range cond {
			if _, ok := set[tag]; !ok {
				all = false
				break
			}
		}
		if all {
			return true
		}
	}
	return false
}

func adjusted(mean, adj int, decrease bool) int {
	if decrease {
		return mean - adj
	}
	return mean + adj
}

func renderMessage(msg, commodity string) string {
	return strings.ReplaceAll(msg, "{commodity}", commodity)
}
