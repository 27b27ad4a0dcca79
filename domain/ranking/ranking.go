package ranking

import (
	"cmp"
	"slices"

	"github.com/luca-patrignani/camel-cards/domain/hand"
)

// Compare orders a and b by category, then by tie-break score, under rule.
func Compare(a, b hand.Hand, rule hand.Rule) int {
	if c := cmp.Compare(a.Category(rule), b.Category(rule)); c != 0 {
		return c
	}
	return cmp.Compare(a.Tiebreak(rule), b.Tiebreak(rule))
}

// Rank returns a copy of hands sorted weakest first. Hands with equal keys
// keep their input order.
func Rank(hands []hand.Hand, rule hand.Rule) []hand.Hand {
	ranked := slices.Clone(hands)
	slices.SortStableFunc(ranked, func(a, b hand.Hand) int {
		return Compare(a, b, rule)
	})
	return ranked
}

// Winnings sums rank position times bid, the weakest hand having rank 1.
func Winnings(hands []hand.Hand, rule hand.Rule) int {
	total := 0
	for i, h := range Rank(hands, rule) {
		total += (i + 1) * h.Bid()
	}
	return total
}

// Standing is one row of a ranked table.
type Standing struct {
	Position int
	Hand     hand.Hand
	Winnings int
}

// Standings ranks hands under rule and reports each hand's contribution to
// the total.
func Standings(hands []hand.Hand, rule hand.Rule) []Standing {
	ranked := Rank(hands, rule)
	standings := make([]Standing, len(ranked))
	for i, h := range ranked {
		standings[i] = Standing{
			Position: i + 1,
			Hand:     h,
			Winnings: (i + 1) * h.Bid(),
		}
	}
	return standings
}

// Report holds the total winnings under both rules.
type Report struct {
	Plain    int
	Wildcard int
}

// Evaluate computes both totals.
func Evaluate(hands []hand.Hand) Report {
	return Report{
		Plain:    Winnings(hands, hand.Plain),
		Wildcard: Winnings(hands, hand.Wildcard),
	}
}

// Total returns the total for rule.
func (r Report) Total(rule hand.Rule) int {
	if rule == hand.Wildcard {
		return r.Wildcard
	}
	return r.Plain
}
