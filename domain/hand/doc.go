// Package hand implements the card and hand model of the camel-cards game:
// five-card hands without suits, classified into poker-style categories.
//
// # Core Types
//
// Card: One of the 13 ranks 2-9, T, J, Q, K, A.
//
// Rule: Plain treats J as a Jack; Wildcard treats it as a joker.
//
// Category: HighCard through FiveOfAKind. There are no straights or flushes.
//
// Hand: Five cards and a bid, with the category and tie-break score under
// both rules computed once at construction.
//
// # Ranking Keys
//
// Hands are ordered by category first and by Tiebreak second. Tiebreak reads
// the cards as a base-14 number, so the leftmost differing card decides. The
// joker counts as the best card for Classify and as the worst for Tiebreak.
package hand
