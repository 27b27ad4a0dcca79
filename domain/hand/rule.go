package hand

// Rule selects how the Jack is treated.
type Rule uint8

const (
	// Plain treats J as an ordinary card between T and Q.
	Plain Rule = iota
	// Wildcard makes J a joker: best possible rank for the category, worst
	// possible rank for tie-breaking.
	Wildcard
)

// Rules lists both rules in reporting order.
var Rules = [2]Rule{Plain, Wildcard}

func (r Rule) String() string {
	switch r {
	case Plain:
		return "plain"
	case Wildcard:
		return "wildcard"
	}
	return "unknown"
}
