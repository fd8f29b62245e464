package texasholdem

import (
	"fmt"

	"holdem-stepper-server/pkg/deck"
)

// SeatStatus is whether a seat is still in the hand
type SeatStatus int

// SeatStatus constants
const (
	StatusActive SeatStatus = iota
	StatusFolded
	StatusAllIn
)

func (s SeatStatus) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusFolded:
		return "folded"
	case StatusAllIn:
		return "allin"
	}

	panic(fmt.Sprintf("unknown seat status: %d", s))
}

// MarshalText encodes the status by name
func (s SeatStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Seat is one position at the table for the length of a hand
type Seat struct {
	index         int
	startingStack int
	stack         int
	// streetBet is what the seat put in on the current street
	streetBet int
	// totalBet is what the seat put in over the whole hand
	totalBet int
	cards    deck.Hand
	status   SeatStatus
}

func newSeat(index, stack int) *Seat {
	return &Seat{
		index:         index,
		startingStack: stack,
		stack:         stack,
		cards:         make(deck.Hand, 0, 2),
		status:        StatusActive,
	}
}

// pay moves chips from the stack into the pot and returns what was paid
// A seat that runs out of chips is all-in.
func (s *Seat) pay(amount int) int {
	if amount > s.stack {
		amount = s.stack
	}

	s.stack -= amount
	s.streetBet += amount
	s.totalBet += amount

	if s.stack == 0 && s.status == StatusActive {
		s.status = StatusAllIn
	}

	return amount
}

// canAct returns true if the seat can still make decisions
func (s *Seat) canAct() bool {
	return s.status == StatusActive
}

// inHand returns true if the seat can still win chips
func (s *Seat) inHand() bool {
	return s.status != StatusFolded
}

// allInTotal is the street total the seat would reach by putting in every chip
func (s *Seat) allInTotal() int {
	return s.streetBet + s.stack
}

// Index returns the seat number
func (s *Seat) Index() int {
	return s.index
}

// Stack returns the chips the seat has behind
func (s *Seat) Stack() int {
	return s.stack
}

// StreetBet returns what the seat put in on the current street
func (s *Seat) StreetBet() int {
	return s.streetBet
}

// TotalBet returns what the seat put in over the hand
func (s *Seat) TotalBet() int {
	return s.totalBet
}

// Status returns the seat status
func (s *Seat) Status() SeatStatus {
	return s.status
}

// Cards returns a copy of the hole cards
func (s *Seat) Cards() deck.Hand {
	return s.cards.Clone()
}
