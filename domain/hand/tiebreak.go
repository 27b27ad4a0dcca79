package hand

// Tiebreak encodes the cards as a base-14 number, first card most
// significant, so that hands of equal category compare by their leftmost
// differing card.
func Tiebreak(cards [5]Card, rule Rule) uint32 {
	var score uint32
	for _, c := range cards {
		score = score*14 + c.Value(rule)
	}
	return score
}
