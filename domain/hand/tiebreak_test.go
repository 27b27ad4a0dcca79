package hand

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTiebreakValues(t *testing.T) {
	tests := []struct {
		cards    string
		rule     Rule
		expected uint32
	}{
		{"22222", Plain, 2*14*14*14*14 + 2*14*14*14 + 2*14*14 + 2*14 + 2},
		{"AAAAA", Plain, 14*14*14*14*14 + 14*14*14*14 + 14*14*14 + 14*14 + 14},
		{"J2345", Plain, 11*14*14*14*14 + 2*14*14*14 + 3*14*14 + 4*14 + 5},
		{"J2345", Wildcard, 1*14*14*14*14 + 2*14*14*14 + 3*14*14 + 4*14 + 5},
	}
	for _, tt := range tests {
		require.Equal(t, tt.expected, Tiebreak(cardsOf(t, tt.cards), tt.rule), "%s %v", tt.cards, tt.rule)
	}
}

func TestTiebreakJokerIsWeakest(t *testing.T) {
	joker := Tiebreak(cardsOf(t, "JKKK2"), Wildcard)
	two := Tiebreak(cardsOf(t, "2KKK2"), Wildcard)
	if joker >= two {
		t.Fatalf("expected JKKK2 (%d) below 2KKK2 (%d)", joker, two)
	}
	if Tiebreak(cardsOf(t, "JKKK2"), Plain) <= Tiebreak(cardsOf(t, "TKKK2"), Plain) {
		t.Fatal("expected J above T under the plain rule")
	}
}

// The leftmost differing card decides, whatever follows it.
func TestTiebreakLeftmostDifferenceDecides(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 2000; i++ {
		a, b := randomCards(rng), randomCards(rng)
		for _, rule := range Rules {
			first := -1
			for k := range a {
				if a[k].Value(rule) != b[k].Value(rule) {
					first = k
					break
				}
			}
			ta, tb := Tiebreak(a, rule), Tiebreak(b, rule)
			switch {
			case first < 0:
				require.Equal(t, ta, tb)
			case a[first].Value(rule) > b[first].Value(rule):
				require.Greater(t, ta, tb, "%v vs %v under %v", a, b, rule)
			default:
				require.Less(t, ta, tb, "%v vs %v under %v", a, b, rule)
			}
		}
	}
}
