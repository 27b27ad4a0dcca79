package hand

import "fmt"

// Category is the poker-style class of a hand, weakest first.
type Category uint8

const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	FullHouse
	FourOfAKind
	FiveOfAKind
)

func (c Category) String() string {
	switch c {
	case HighCard:
		return "high card"
	case OnePair:
		return "one pair"
	case TwoPair:
		return "two pair"
	case ThreeOfAKind:
		return "three of a kind"
	case FullHouse:
		return "full house"
	case FourOfAKind:
		return "four of a kind"
	case FiveOfAKind:
		return "five of a kind"
	}
	return fmt.Sprintf("Category(%d)", uint8(c))
}

// Classify returns the category of cards under rule.
//
// Under the Wildcard rule every Jack is replaced by each of the Substitutes
// in turn and the best resulting category wins. All jokers in a hand take
// the same rank within one trial, which is always optimal.
func Classify(cards [5]Card, rule Rule) Category {
	switch rule {
	case Plain:
		return classifyPlain(cards)
	case Wildcard:
		best := classifyPlain(cards)
		for _, sub := range Substitutes {
			if cat := classifyPlain(substitute(cards, sub)); cat > best {
				best = cat
			}
		}
		return best
	}
	panic(fmt.Sprintf("hand: unknown rule %d", rule))
}

func substitute(cards [5]Card, sub Card) [5]Card {
	for i, c := range cards {
		if c == Jack {
			cards[i] = sub
		}
	}
	return cards
}

func classifyPlain(cards [5]Card) Category {
	var counts [256]int
	for _, c := range cards {
		counts[c]++
	}

	// hist[n] is the number of distinct cards seen exactly n times.
	var hist [len(cards) + 1]int
	for c, n := range counts {
		if n > len(cards) {
			panic(fmt.Sprintf("hand: card %q counted %d times in a five-card hand", byte(c), n))
		}
		if n > 0 {
			hist[n]++
		}
	}

	switch {
	case hist[5] > 0:
		return FiveOfAKind
	case hist[4] > 0:
		return FourOfAKind
	case hist[3] > 0 && hist[2] > 0:
		return FullHouse
	case hist[3] > 0:
		return ThreeOfAKind
	case hist[2] == 2:
		return TwoPair
	case hist[2] == 1:
		return OnePair
	}
	return HighCard
}
