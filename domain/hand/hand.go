package hand

import (
	"errors"
	"fmt"
	"strings"
)

// Size is the number of cards in a hand.
const Size = 5

var (
	ErrHandSize    = errors.New("hand must have exactly five cards")
	ErrNegativeBid = errors.New("bid must not be negative")
)

// Hand is one parsed input record. Categories and tie-break scores for both
// rules are computed by NewHand and never change afterwards.
type Hand struct {
	cards      [Size]Card
	bid        int
	categories [len(Rules)]Category
	tiebreaks  [len(Rules)]uint32
}

// NewHand validates the card string and bid and precomputes the ranking keys.
func NewHand(cards string, bid int) (Hand, error) {
	if len(cards) != Size {
		return Hand{}, fmt.Errorf("%w: got %q", ErrHandSize, cards)
	}
	if bid < 0 {
		return Hand{}, fmt.Errorf("%w: got %d", ErrNegativeBid, bid)
	}

	h := Hand{bid: bid}
	for i := 0; i < Size; i++ {
		c, err := ParseCard(cards[i])
		if err != nil {
			return Hand{}, fmt.Errorf("hand %q: %w", cards, err)
		}
		h.cards[i] = c
	}
	for _, r := range Rules {
		h.categories[r] = Classify(h.cards, r)
		h.tiebreaks[r] = Tiebreak(h.cards, r)
	}
	return h, nil
}

// Cards returns a copy of the hand's cards.
func (h Hand) Cards() [Size]Card {
	return h.cards
}

func (h Hand) Bid() int {
	return h.bid
}

// Category returns the cached category under rule.
func (h Hand) Category(rule Rule) Category {
	checkRule(rule)
	return h.categories[rule]
}

// Tiebreak returns the cached tie-break score under rule.
func (h Hand) Tiebreak(rule Rule) uint32 {
	checkRule(rule)
	return h.tiebreaks[rule]
}

func checkRule(rule Rule) {
	if int(rule) >= len(Rules) {
		panic(fmt.Sprintf("hand: unknown rule %d", rule))
	}
}

func (h Hand) String() string {
	var b strings.Builder
	for _, c := range h.cards {
		b.WriteByte(byte(c))
	}
	return b.String()
}

// Pretty renders the cards with terminal colours for the given rule.
func (h Hand) Pretty(rule Rule) string {
	var b strings.Builder
	for _, c := range h.cards {
		b.WriteString(c.Pretty(rule))
	}
	return b.String()
}
