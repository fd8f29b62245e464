package handanalyzer

import (
	"fmt"
	"strings"

	"holdem-stepper-server/pkg/deck"
)

// HandRank is a totally ordered hand value
// Hands of the same category are ordered by Tiebreak, compared element by element.
type HandRank struct {
	Hand     Hand  `json:"hand"`
	Tiebreak []int `json:"tiebreak"`
}

// Compare returns -1 if r is weaker than o, 1 if r is stronger, and 0 if the hands tie
func (r HandRank) Compare(o HandRank) int {
	if r.Hand != o.Hand {
		if r.Hand < o.Hand {
			return -1
		}

		return 1
	}

	for i := 0; i < len(r.Tiebreak) && i < len(o.Tiebreak); i++ {
		if r.Tiebreak[i] < o.Tiebreak[i] {
			return -1
		} else if r.Tiebreak[i] > o.Tiebreak[i] {
			return 1
		}
	}

	return 0
}

// Equal returns true if both hands would split a pot
func (r HandRank) Equal(o HandRank) bool {
	return r.Compare(o) == 0
}

// Strength packs the rank into a single integer
// Comparing strengths gives the same answer as Compare.
func (r HandRank) Strength() int {
	strength := int(r.Hand)
	for i := 0; i < 5; i++ {
		strength *= 15
		if i < len(r.Tiebreak) {
			strength += r.Tiebreak[i]
		}
	}

	return strength
}

// Describe returns a human-readable description, i.e., "Two pair, kings and nines"
func (r HandRank) Describe() string {
	tb := func(i int) int {
		if i < len(r.Tiebreak) {
			return r.Tiebreak[i]
		}

		return 0
	}

	switch r.Hand {
	case HighCard:
		return fmt.Sprintf("High card, %s", rankName(tb(0), false))
	case OnePair:
		return fmt.Sprintf("Pair of %s", rankName(tb(0), true))
	case TwoPair:
		return fmt.Sprintf("Two pair, %s and %s", rankName(tb(0), true), rankName(tb(1), true))
	case ThreeOfAKind:
		return fmt.Sprintf("Three of a kind, %s", rankName(tb(0), true))
	case Straight:
		return fmt.Sprintf("Straight, %s high", rankName(tb(0), false))
	case Flush:
		return fmt.Sprintf("Flush, %s high", rankName(tb(0), false))
	case FullHouse:
		return fmt.Sprintf("Full house, %s full of %s", rankName(tb(0), true), rankName(tb(1), true))
	case FourOfAKind:
		return fmt.Sprintf("Four of a kind, %s", rankName(tb(0), true))
	case StraightFlush:
		return fmt.Sprintf("Straight flush, %s high", rankName(tb(0), false))
	}

	return r.Hand.String()
}

func (r HandRank) String() string {
	parts := make([]string, len(r.Tiebreak))
	for i, v := range r.Tiebreak {
		parts[i] = fmt.Sprint(v)
	}

	return fmt.Sprintf("%s [%s]", r.Hand, strings.Join(parts, " "))
}

func rankName(rank int, plural bool) string {
	var name string
	switch rank {
	case 2:
		name = "two"
	case 3:
		name = "three"
	case 4:
		name = "four"
	case 5:
		name = "five"
	case 6:
		if plural {
			return "sixes"
		}
		name = "six"
	case 7:
		name = "seven"
	case 8:
		name = "eight"
	case 9:
		name = "nine"
	case 10:
		name = "ten"
	case deck.Jack:
		name = "jack"
	case deck.Queen:
		name = "queen"
	case deck.King:
		name = "king"
	case deck.Ace:
		name = "ace"
	default:
		return "?"
	}

	if plural {
		return name + "s"
	}

	return name
}
