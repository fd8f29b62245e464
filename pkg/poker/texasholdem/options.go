package texasholdem

import "errors"

// Options configures how a hand is played
type Options struct {
	SmallBlind int `json:"smallBlind"`
	BigBlind   int `json:"bigBlind"`
	MinBet     int `json:"minBet"`

	// AutoDeal deals the next street as soon as betting closes
	// When false, the hand waits for a deal_flop, deal_turn or deal_river action.
	AutoDeal bool `json:"autoDeal"`

	// RevealHoleCards shows every seat's hole cards in the public state
	RevealHoleCards bool `json:"revealHoleCards"`
}

// DefaultOptions returns the default options for Texas Hold'em
func DefaultOptions() Options {
	return Options{
		SmallBlind:      20,
		BigBlind:        40,
		MinBet:          40,
		AutoDeal:        true,
		RevealHoleCards: true,
	}
}

func validateOptions(opts Options) error {
	if opts.SmallBlind <= 0 {
		return errors.New("small blind must be > 0")
	}

	if opts.BigBlind < opts.SmallBlind {
		return errors.New("big blind must be >= the small blind")
	}

	if opts.MinBet <= 0 {
		return errors.New("minimum bet must be > 0")
	}

	return nil
}
