package texasholdem

import (
	"holdem-stepper-server/pkg/deck"
	"holdem-stepper-server/pkg/poker/potmanager"
)

// SeatResult is how a seat finished the hand
type SeatResult struct {
	Seat        int    `json:"seat"`
	Contributed int    `json:"contributed"`
	Won         int    `json:"won"`
	Net         int    `json:"net"`
	Hand        string `json:"hand,omitempty"`
}

// Result is the settled outcome of a hand
type Result struct {
	Showdown bool            `json:"showdown"`
	Pots     potmanager.Pots `json:"pots"`
	Seats    []SeatResult    `json:"seats"`
}

// Net returns every seat's chip delta, indexed by seat
func (r *Result) Net() []int {
	net := make([]int, len(r.Seats))
	for i, s := range r.Seats {
		net[i] = s.Net
	}

	return net
}

// Winners returns the seats that won chips
func (r *Result) Winners() []int {
	winners := make([]int, 0)
	for _, s := range r.Seats {
		if s.Won > 0 {
			winners = append(winners, s.Seat)
		}
	}

	return winners
}

// Positions are the seats holding the button and the blinds
type Positions struct {
	Dealer     int `json:"dealer"`
	SmallBlind int `json:"smallBlind"`
	BigBlind   int `json:"bigBlind"`
}

// HandHistory is the immutable record of a finished hand
type HandHistory struct {
	ID            string       `json:"id"`
	InitialStacks []int        `json:"initialStacks"`
	Positions     Positions    `json:"positions"`
	HoleCards     []deck.Hand  `json:"holeCards"`
	BoardCards    deck.Hand    `json:"boardCards"`
	Actions       []Action     `json:"actions"`
	Results       []SeatResult `json:"results"`
	SmallBlind    int          `json:"smallBlind"`
	BigBlind      int          `json:"bigBlind"`
}
