package hand

import (
	"fmt"

	"github.com/pterm/pterm"
)

// Card symbols for the ranks above nine.
const (
	Ten   Card = 'T'
	Jack  Card = 'J' // the wildcard under the Wildcard rule
	Queen Card = 'Q'
	King  Card = 'K'
	Ace   Card = 'A'
)

// Card is one of the 13 ranks 2-9, T, J, Q, K, A, stored as its symbol.
type Card byte

// Ranks lists every card from weakest to strongest under the Plain rule.
var Ranks = [13]Card{'2', '3', '4', '5', '6', '7', '8', '9', Ten, Jack, Queen, King, Ace}

// Substitutes lists the ranks a wildcard may stand for.
var Substitutes = [12]Card{'2', '3', '4', '5', '6', '7', '8', '9', Ten, Queen, King, Ace}

// ParseCard validates a card symbol.
func ParseCard(b byte) (Card, error) {
	c := Card(b)
	if !c.valid() {
		return 0, fmt.Errorf("invalid card %q", b)
	}
	return c, nil
}

func (c Card) valid() bool {
	switch {
	case c >= '2' && c <= '9':
		return true
	case c == Ten, c == Jack, c == Queen, c == King, c == Ace:
		return true
	}
	return false
}

// Value returns the numeric rank used for tie-breaking. Under the Wildcard
// rule the Jack is the weakest card.
func (c Card) Value(rule Rule) uint32 {
	if c >= '2' && c <= '9' {
		return uint32(c - '0')
	}
	switch c {
	case Ten:
		return 10
	case Jack:
		if rule == Wildcard {
			return 1
		}
		return 11
	case Queen:
		return 12
	case King:
		return 13
	case Ace:
		return 14
	}
	panic(fmt.Sprintf("hand: value of invalid card %q", byte(c)))
}

func (c Card) String() string {
	return string(rune(c))
}

// Pretty renders the card for terminal output, highlighting jokers when the
// Wildcard rule is in effect.
func (c Card) Pretty(rule Rule) string {
	switch {
	case c == Jack && rule == Wildcard:
		return pterm.LightYellow(c.String())
	case c == Ace || c == King || c == Queen:
		return pterm.LightRed(c.String())
	}
	return c.String()
}
