package texasholdem

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"holdem-stepper-server/pkg/deck"
)

func sixStacks() []int {
	return []int{1000, 1000, 1000, 1000, 1000, 1000}
}

func setupNewGame(t *testing.T, opts Options, stacks ...int) *Game {
	t.Helper()

	game, err := NewGame(logrus.StandardLogger(), "test-hand", stacks, 0, opts, 42)
	require.NoError(t, err)

	return game
}

// setCards gives the seat a known pair of hole cards
func setCards(game *Game, seat int, cards string) {
	game.seats[seat].cards = deck.CardsFromString(cards)
}

// setBoard stacks the deck so the next community cards are known
func setBoard(game *Game, cards string) {
	game.deck.Cards = deck.CardsFromString(cards)
}

func stateJSON(t *testing.T, game *Game) string {
	t.Helper()

	b, err := json.Marshal(game.State())
	require.NoError(t, err)

	return string(b)
}

func assertApply(t *testing.T, game *Game, a Action, msgAndArgs ...interface{}) {
	t.Helper()
	assert.NoError(t, game.Apply(a), msgAndArgs...)
}

func assertApplyAll(t *testing.T, game *Game, actions ...Action) {
	t.Helper()
	for _, a := range actions {
		require.NoError(t, game.Apply(a), a.String())
	}
}

// assertIllegal checks the action fails on the rule and the hand did not change
func assertIllegal(t *testing.T, game *Game, a Action, rule Rule, msgAndArgs ...interface{}) {
	t.Helper()

	before := stateJSON(t, game)
	cardsLeft := game.deck.CardsLeft()

	err := game.Apply(a)

	var illegalErr *IllegalActionError
	if assert.True(t, errors.As(err, &illegalErr), msgAndArgs...) {
		assert.Equal(t, rule, illegalErr.Rule, msgAndArgs...)
	}

	assert.Equal(t, before, stateJSON(t, game), msgAndArgs...)
	assert.Equal(t, cardsLeft, game.deck.CardsLeft(), msgAndArgs...)
}

func legalToAction(seat int, la LegalAction) Action {
	switch la.Kind {
	case KindFold:
		return Fold(seat)
	case KindCheck:
		return Check(seat)
	case KindCall:
		return Call(seat)
	case KindBet:
		return Bet(seat, la.Min)
	case KindRaise:
		return Raise(seat, la.Min)
	case KindAllIn:
		return AllIn(seat)
	}

	return dealAction(la.Kind)
}

func netSum(r *Result) int {
	sum := 0
	for _, net := range r.Net() {
		sum += net
	}

	return sum
}

func stackSum(game *Game) int {
	sum := 0
	for _, s := range game.seats {
		sum += s.stack
	}

	return sum
}

// allInTo is an all-in as it appears in the log
func allInTo(seat, amount int) Action {
	return Action{kind: KindAllIn, seat: seat, amount: amount}
}

// setupDeck returns the order a deck shuffled with seed deals in
func setupDeck(seed int64) deck.Hand {
	return deck.Hand(deck.NewShuffled(seed).Cards)
}
