package texasholdem

import "fmt"

// Street is a stage of the hand
type Street int

// Street constants
const (
	PreFlop Street = iota
	Flop
	Turn
	River
	Showdown
	HandOver
)

func (s Street) String() string {
	switch s {
	case PreFlop:
		return "preflop"
	case Flop:
		return "flop"
	case Turn:
		return "turn"
	case River:
		return "river"
	case Showdown:
		return "showdown"
	case HandOver:
		return "hand_over"
	}

	panic(fmt.Sprintf("unknown street: %d", s))
}

// MarshalText encodes the street by name
func (s Street) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// IsTerminal returns true if no further action can happen
func (s Street) IsTerminal() bool {
	return s == Showdown || s == HandOver
}

// nextDeal returns the deal that ends the street and how many community cards it draws
func (s Street) nextDeal() (ActionKind, int) {
	switch s {
	case PreFlop:
		return KindDealFlop, 3
	case Flop:
		return KindDealTurn, 1
	case Turn:
		return KindDealRiver, 1
	}

	panic(fmt.Sprintf("nothing to deal after %s", s))
}
