package texasholdem

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ActionKind is the kind of action
type ActionKind string

// ActionKind constants, as they appear on the wire
const (
	KindFold      ActionKind = "fold"
	KindCheck     ActionKind = "check"
	KindCall      ActionKind = "call"
	KindBet       ActionKind = "bet"
	KindRaise     ActionKind = "raise"
	KindAllIn     ActionKind = "allin"
	KindDealFlop  ActionKind = "deal_flop"
	KindDealTurn  ActionKind = "deal_turn"
	KindDealRiver ActionKind = "deal_river"
)

var validKinds = map[ActionKind]bool{
	KindFold:      true,
	KindCheck:     true,
	KindCall:      true,
	KindBet:       true,
	KindRaise:     true,
	KindAllIn:     true,
	KindDealFlop:  true,
	KindDealTurn:  true,
	KindDealRiver: true,
}

// IsDeal returns true for the actions that deal community cards
func (k ActionKind) IsDeal() bool {
	return k == KindDealFlop || k == KindDealTurn || k == KindDealRiver
}

// needsAmount returns true if the action cannot be made without an amount
func (k ActionKind) needsAmount() bool {
	return k == KindBet || k == KindRaise
}

// Action is an entry in the hand's action log
// Bet and Raise amounts are the seat's new total for the street. An AllIn in the log carries the street total
// it reached. Deal actions have no seat.
type Action struct {
	kind   ActionKind
	seat   int
	amount int
}

// Fold returns a fold for the seat
func Fold(seat int) Action {
	return Action{kind: KindFold, seat: seat}
}

// Check returns a check for the seat
func Check(seat int) Action {
	return Action{kind: KindCheck, seat: seat}
}

// Call returns a call for the seat
func Call(seat int) Action {
	return Action{kind: KindCall, seat: seat}
}

// Bet returns a bet that brings the seat's street total to amount
func Bet(seat, amount int) Action {
	return Action{kind: KindBet, seat: seat, amount: amount}
}

// Raise returns a raise that brings the seat's street total to amount
func Raise(seat, amount int) Action {
	return Action{kind: KindRaise, seat: seat, amount: amount}
}

// AllIn returns an all-in for the seat
func AllIn(seat int) Action {
	return Action{kind: KindAllIn, seat: seat}
}

// DealFlop returns the action that deals the flop
func DealFlop() Action {
	return Action{kind: KindDealFlop, seat: -1}
}

// DealTurn returns the action that deals the turn
func DealTurn() Action {
	return Action{kind: KindDealTurn, seat: -1}
}

// DealRiver returns the action that deals the river
func DealRiver() Action {
	return Action{kind: KindDealRiver, seat: -1}
}

func dealAction(kind ActionKind) Action {
	return Action{kind: kind, seat: -1}
}

// ParseAction builds an action from its wire form
// The amount is required for bet and raise, kept for allin, and ignored otherwise.
func ParseAction(kind string, seat *int, amount *int) (Action, error) {
	k := ActionKind(strings.ToLower(strings.TrimSpace(kind)))
	if !validKinds[k] {
		return Action{}, fmt.Errorf("%q is not a valid action", kind)
	}

	if k.IsDeal() {
		return dealAction(k), nil
	}

	if seat == nil {
		return Action{}, fmt.Errorf("%s requires a seat", k)
	}

	if *seat < 0 {
		return Action{}, fmt.Errorf("seat %d is not valid", *seat)
	}

	a := Action{kind: k, seat: *seat}
	switch {
	case k.needsAmount():
		if amount == nil {
			return Action{}, fmt.Errorf("%s requires an amount", k)
		}

		if *amount <= 0 {
			return Action{}, fmt.Errorf("%s amount must be > 0", k)
		}

		a.amount = *amount
	case k == KindAllIn && amount != nil:
		a.amount = *amount
	}

	return a, nil
}

// Kind returns the kind of action
func (a Action) Kind() ActionKind {
	return a.kind
}

// Seat returns the seat that acted, or false for a deal
func (a Action) Seat() (int, bool) {
	if a.kind.IsDeal() {
		return 0, false
	}

	return a.seat, true
}

// Amount returns the street total for a bet, raise or all-in
func (a Action) Amount() int {
	return a.amount
}

func (a Action) String() string {
	switch {
	case a.kind.IsDeal():
		return string(a.kind)
	case a.kind.needsAmount() || (a.kind == KindAllIn && a.amount > 0):
		return fmt.Sprintf("seat %d %s %d", a.seat, a.kind, a.amount)
	}

	return fmt.Sprintf("seat %d %s", a.seat, a.kind)
}

type actionJSON struct {
	Kind   string `json:"kind"`
	Seat   *int   `json:"seat,omitempty"`
	Amount *int   `json:"amount,omitempty"`
}

// MarshalJSON encodes the action in its wire form
func (a Action) MarshalJSON() ([]byte, error) {
	out := actionJSON{Kind: string(a.kind)}
	if seat, ok := a.Seat(); ok {
		out.Seat = &seat
	}

	if a.kind.needsAmount() || (a.kind == KindAllIn && a.amount > 0) {
		amount := a.amount
		out.Amount = &amount
	}

	return json.Marshal(out)
}

// UnmarshalJSON decodes an action from its wire form
func (a *Action) UnmarshalJSON(b []byte) error {
	var in actionJSON
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}

	action, err := ParseAction(in.Kind, in.Seat, in.Amount)
	if err != nil {
		return err
	}

	*a = action
	return nil
}
