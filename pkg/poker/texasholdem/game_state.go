package texasholdem

import (
	"fmt"

	"holdem-stepper-server/pkg/deck"
	"holdem-stepper-server/pkg/poker/handanalyzer"
	"holdem-stepper-server/pkg/poker/potmanager"
)

// LegalAction is an action the acting seat may take
// For bet, raise and allin, Min and Max bound the street total.
type LegalAction struct {
	Kind ActionKind `json:"kind"`
	Min  int        `json:"min,omitempty"`
	Max  int        `json:"max,omitempty"`
}

// SeatState is the public view of a seat
type SeatState struct {
	Seat      int        `json:"seat"`
	Stack     int        `json:"stack"`
	StreetBet int        `json:"streetBet"`
	TotalBet  int        `json:"totalBet"`
	Status    SeatStatus `json:"status"`
	Cards     deck.Hand  `json:"cards"`
	Hand      string     `json:"hand,omitempty"`
}

// GameState is the public view of the hand
type GameState struct {
	ID           string          `json:"id"`
	Street       Street          `json:"street"`
	AwaitingDeal bool            `json:"awaitingDeal"`
	ActingSeat   *int            `json:"actingSeat"`
	CurrentBet   int             `json:"currentBet"`
	MinRaiseTo   int             `json:"minRaiseTo"`
	Pot          int             `json:"pot"`
	Pots         potmanager.Pots `json:"pots"`
	Positions    Positions       `json:"positions"`
	Seats        []*SeatState    `json:"seats"`
	BoardCards   deck.Hand       `json:"boardCards"`
	Actions      []Action        `json:"actions"`
	LegalActions []LegalAction   `json:"legalActions"`
	Result       *Result         `json:"result"`
}

// State returns the public view of the hand
func (g *Game) State() *GameState {
	seats := make([]*SeatState, len(g.seats))
	for i, s := range g.seats {
		seats[i] = g.seatState(s)
	}

	var actingSeat *int
	if seat, ok := g.ActingSeat(); ok {
		actingSeat = &seat
	}

	minRaiseTo := 0
	if !g.IsOver() {
		minRaiseTo = g.minBetTo()
	}

	pots := potmanager.BuildPots(g.contributions())
	if g.result != nil {
		pots = g.result.Pots
	}

	return &GameState{
		ID:           g.id,
		Street:       g.street,
		AwaitingDeal: g.awaitingDeal,
		ActingSeat:   actingSeat,
		CurrentBet:   g.currentBet,
		MinRaiseTo:   minRaiseTo,
		Pot:          pots.Total(),
		Pots:         pots,
		Positions:    g.positions,
		Seats:        seats,
		BoardCards:   g.board.Clone(),
		Actions:      g.Actions(),
		LegalActions: g.LegalActions(),
		Result:       g.result,
	}
}

// cardsVisible returns true if the seat's hole cards are shown
// Without full transparency, only seats that reached showdown are shown.
func (g *Game) cardsVisible(s *Seat) bool {
	if g.options.RevealHoleCards {
		return true
	}

	return g.street == Showdown && s.inHand()
}

func (g *Game) seatState(s *Seat) *SeatState {
	state := &SeatState{
		Seat:      s.index,
		Stack:     s.stack,
		StreetBet: s.streetBet,
		TotalBet:  s.totalBet,
		Status:    s.status,
	}

	if !g.cardsVisible(s) {
		return state
	}

	state.Cards = s.cards.Clone()
	if len(g.board) >= 3 {
		rank, err := handanalyzer.Evaluate(append(s.cards.Clone(), g.board...))
		if err != nil {
			panic(fmt.Sprintf("hand %s: seat %d: %v", g.id, s.index, err))
		}

		state.Hand = rank.Describe()
	}

	return state
}

// LegalActions returns what can be done next
// While betting is closed in manual dealing, the only legal action is the next deal.
func (g *Game) LegalActions() []LegalAction {
	if g.IsOver() {
		return nil
	}

	if g.awaitingDeal {
		kind, _ := g.street.nextDeal()
		return []LegalAction{{Kind: kind}}
	}

	s, ok := g.Seat(g.actingSeat)
	if !ok {
		return nil
	}

	allIn := s.allInTotal()
	actions := []LegalAction{{Kind: KindFold}}
	if g.currentBet == s.streetBet {
		actions = append(actions, LegalAction{Kind: KindCheck})
	} else {
		call := g.currentBet
		if allIn < call {
			call = allIn
		}

		actions = append(actions, LegalAction{Kind: KindCall, Min: call, Max: call})
	}

	if allIn > g.currentBet && g.canRaise(s) {
		kind := KindBet
		if g.currentBet > s.streetBet {
			kind = KindRaise
		}

		min := g.minBetTo()
		if min > allIn {
			min = allIn
		}

		actions = append(actions, LegalAction{Kind: kind, Min: min, Max: allIn})
	}

	if allIn <= g.currentBet || g.canRaise(s) {
		actions = append(actions, LegalAction{Kind: KindAllIn, Min: allIn, Max: allIn})
	}

	return actions
}
