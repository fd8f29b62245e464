package handanalyzer

import "fmt"

// Hand is a poker hand category, i.e., royal flush
type Hand int

// Constants for hand, weakest to strongest
const (
	HighCard Hand = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// String returns the string representation of a hand
func (h Hand) String() string {
	switch h {
	case HighCard:
		return "High card"
	case OnePair:
		return "Pair"
	case TwoPair:
		return "Two pair"
	case ThreeOfAKind:
		return "Three of a kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full house"
	case FourOfAKind:
		return "Four of a kind"
	case StraightFlush:
		return "Straight flush"
	case RoyalFlush:
		return "Royal flush"
	default:
		panic(fmt.Sprintf("unknown hand: %d", h))
	}
}

// MarshalText encodes the hand as its display name
func (h Hand) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// Rank returns the category as 1 (high card) to 10 (royal flush)
func (h Hand) Rank() int {
	return int(h) + 1
}
