package texasholdem

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"holdem-stepper-server/pkg/deck"
)

// ErrInvalidReplay is an error when a recorded hand cannot be played back
var ErrInvalidReplay = errors.New("invalid replay")

// ReplaySetup is a hand as it was recorded: the table, every seat's hole cards, the board and the actions
type ReplaySetup struct {
	Stacks     []int
	Dealer     int
	Options    Options
	HoleCards  []deck.Hand
	BoardCards deck.Hand
	Actions    []Action
}

// Replay plays a recorded hand to the end
// The deck is stacked so each seat receives its recorded hole cards and the board comes out in order.
// Deals left out of the actions are made when the next player action needs them, and a hand that
// ends with all seats all-in is run out. A hand that is not over after the last action returns
// ErrHandNotOver.
func Replay(logger logrus.FieldLogger, id string, r ReplaySetup) (*Game, error) {
	if err := validateSetup(r.Stacks, r.Dealer, r.Options); err != nil {
		return nil, err
	}

	cards, err := replayCards(r)
	if err != nil {
		return nil, err
	}

	opts := r.Options
	opts.AutoDeal = false
	g := newGame(logger, id, r.Stacks, r.Dealer, opts, deck.NewStacked(cards))

	for i, a := range r.Actions {
		if g.awaitingDeal && !a.kind.IsDeal() {
			g.dealNext()
		}

		if err := g.Apply(a); err != nil {
			return nil, fmt.Errorf("action %d (%s): %w", i, a, err)
		}
	}

	for g.awaitingDeal {
		g.dealNext()
	}

	if !g.IsOver() {
		return nil, fmt.Errorf("%w: seat %d is still to act", ErrHandNotOver, g.actingSeat)
	}

	if len(g.board) > len(r.BoardCards) {
		return nil, fmt.Errorf("%w: the hand needs %d board cards, %d given", ErrInvalidReplay, len(g.board), len(r.BoardCards))
	}

	return g, nil
}

// replayCards returns the cards in the order the hand deals them
func replayCards(r ReplaySetup) (deck.Hand, error) {
	n := len(r.Stacks)
	if len(r.HoleCards) != n {
		return nil, fmt.Errorf("%w: %d seats but %d sets of hole cards", ErrInvalidReplay, n, len(r.HoleCards))
	}

	if len(r.BoardCards) > 5 {
		return nil, fmt.Errorf("%w: %d board cards", ErrInvalidReplay, len(r.BoardCards))
	}

	all := make(deck.Hand, 0, 2*n+len(r.BoardCards))
	for seat, cards := range r.HoleCards {
		if len(cards) != 2 {
			return nil, fmt.Errorf("%w: seat %d must have 2 hole cards", ErrInvalidReplay, seat)
		}

		all = append(all, cards...)
	}
	all = append(all, r.BoardCards...)

	for _, c := range all {
		if !c.IsValid() {
			return nil, fmt.Errorf("%w: %q is not a card", ErrInvalidReplay, c.String())
		}
	}

	if all.HasDuplicates() {
		return nil, fmt.Errorf("%w: duplicate cards in %s", ErrInvalidReplay, all.String())
	}

	order := make(deck.Hand, 0, len(all))
	for pass := 0; pass < 2; pass++ {
		for i := 1; i <= n; i++ {
			order = append(order, r.HoleCards[(r.Dealer+i)%n][pass])
		}
	}

	return append(order, r.BoardCards...), nil
}

// dealNext deals the street the hand is waiting for
func (g *Game) dealNext() {
	kind, _ := g.street.nextDeal()
	g.deal(kind)
	g.advance()
}
