// Package ranking orders camel-cards hands and computes total winnings.
//
// Under each rule hands are sorted by category and then by tie-break score,
// weakest first. A hand's winnings are its 1-based position times its bid,
// and the total is the sum over all hands.
package ranking
